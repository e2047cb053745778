package domain

import (
	"slices"
	"sync"

	"go.trai.ch/zerr"
)

// Configuration defaults.
const (
	DefaultDeviceID    = "local"
	DefaultRuntimeID   = "host"
	DefaultParallelism = -1
)

// Property names reported to configuration observers.
const (
	PropertyDisplayName = "display-name"
	PropertyDeviceID    = "device-id"
	PropertyRuntimeID   = "runtime-id"
	PropertyPrefix      = "prefix"
	PropertyDebug       = "debug"
	PropertyConfigOpts  = "config-opts"
	PropertyParallelism = "parallelism"
	PropertyEnvironment = "environment"
	PropertyFlatpak     = "flatpak"
	PropertyPrebuild    = "prebuild"
	PropertyPostbuild   = "postbuild"
	PropertyDirty       = "dirty"
)

// ConfigurationObserver is called after a property of cfg changed.
type ConfigurationObserver func(cfg *Configuration, property string)

// Configuration is a named set of build parameters for one project.
//
// Changing a build-affecting field (device, runtime, prefix, debug, configure
// options, environment, Flatpak options) marks the configuration dirty and
// increments its sequence. Assigning the current value changes nothing.
type Configuration struct {
	mu sync.Mutex

	id          string
	displayName string
	deviceID    string
	runtimeID   string
	prefix      string
	configOpts  string
	debug       bool
	parallelism int

	env       *Environment
	prebuild  *CommandQueue
	postbuild *CommandQueue
	flatpak   *FlatpakOptions

	dirty    bool
	sequence uint64

	observers    map[int]ConfigurationObserver
	nextObserver int
}

// NewConfiguration returns a configuration with default parameters.
func NewConfiguration(id string) *Configuration {
	c := &Configuration{
		id:          id,
		displayName: id,
		deviceID:    DefaultDeviceID,
		runtimeID:   DefaultRuntimeID,
		debug:       true,
		parallelism: DefaultParallelism,
		observers:   make(map[int]ConfigurationObserver),
	}
	c.adoptEnvironment(NewEnvironment())
	return c
}

// ID returns the immutable identifier.
func (c *Configuration) ID() string {
	return c.id
}

// DisplayName returns the human readable name.
func (c *Configuration) DisplayName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayName
}

// SetDisplayName renames the configuration. Renaming does not dirty it.
func (c *Configuration) SetDisplayName(name string) {
	c.setString(&c.displayName, name, PropertyDisplayName, false)
}

// DeviceID returns the target device id.
func (c *Configuration) DeviceID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deviceID
}

// SetDeviceID sets the target device id.
func (c *Configuration) SetDeviceID(id string) {
	c.setString(&c.deviceID, id, PropertyDeviceID, true)
}

// RuntimeID returns the runtime id.
func (c *Configuration) RuntimeID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runtimeID
}

// SetRuntimeID sets the runtime id.
func (c *Configuration) SetRuntimeID(id string) {
	c.setString(&c.runtimeID, id, PropertyRuntimeID, true)
}

// Prefix returns the installation prefix, empty when unset.
func (c *Configuration) Prefix() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefix
}

// SetPrefix sets the installation prefix.
func (c *Configuration) SetPrefix(prefix string) {
	c.setString(&c.prefix, prefix, PropertyPrefix, true)
}

// ConfigOpts returns the raw options appended to the configure invocation.
func (c *Configuration) ConfigOpts() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.configOpts
}

// SetConfigOpts sets the raw configure options.
func (c *Configuration) SetConfigOpts(opts string) {
	c.setString(&c.configOpts, opts, PropertyConfigOpts, true)
}

// Debug reports whether this is a debug configuration.
func (c *Configuration) Debug() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.debug
}

// SetDebug toggles the debug flag.
func (c *Configuration) SetDebug(debug bool) {
	c.mu.Lock()
	if c.debug == debug {
		c.mu.Unlock()
		return
	}
	c.debug = debug
	c.markDirtyLocked()
	c.mu.Unlock()

	c.notify(PropertyDebug)
}

// Parallelism returns the requested job count.
// -1 means one more than the number of CPUs and 0 means the number of CPUs.
func (c *Configuration) Parallelism() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.parallelism
}

// SetParallelism sets the requested job count. It does not dirty the configuration.
func (c *Configuration) SetParallelism(parallelism int) error {
	if parallelism < -1 {
		return zerr.With(zerr.Wrap(ErrInvalidParallelism, "cannot set parallelism"), "parallelism", parallelism)
	}

	c.mu.Lock()
	if c.parallelism == parallelism {
		c.mu.Unlock()
		return nil
	}
	c.parallelism = parallelism
	c.mu.Unlock()

	c.notify(PropertyParallelism)
	return nil
}

// Environment returns the owned environment. Mutating it dirties the configuration.
func (c *Configuration) Environment() *Environment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.env
}

// SetEnvironment replaces the owned environment with a copy of env. An
// environment holding the same pairs in the same order changes nothing.
func (c *Configuration) SetEnvironment(env *Environment) {
	c.mu.Lock()
	if c.env != nil && slices.Equal(c.env.Pairs(), env.Pairs()) {
		c.mu.Unlock()
		return
	}
	c.adoptEnvironment(env.Copy())
	c.markDirtyLocked()
	c.mu.Unlock()

	c.notify(PropertyEnvironment)
}

// Prebuild returns a copy of the commands run before the pipeline.
func (c *Configuration) Prebuild() *CommandQueue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prebuild.Copy()
}

// SetPrebuild replaces the pre-build queue.
func (c *Configuration) SetPrebuild(q *CommandQueue) {
	c.mu.Lock()
	c.prebuild = q.Copy()
	c.mu.Unlock()

	c.notify(PropertyPrebuild)
}

// Postbuild returns a copy of the commands run after a successful pipeline.
func (c *Configuration) Postbuild() *CommandQueue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.postbuild.Copy()
}

// SetPostbuild replaces the post-build queue.
func (c *Configuration) SetPostbuild(q *CommandQueue) {
	c.mu.Lock()
	c.postbuild = q.Copy()
	c.mu.Unlock()

	c.notify(PropertyPostbuild)
}

// Flatpak returns the Flatpak options, if the configuration has them.
func (c *Configuration) Flatpak() (FlatpakOptions, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.flatpak == nil {
		return FlatpakOptions{}, false
	}
	return *c.flatpak, true
}

// SetFlatpak attaches Flatpak options to the configuration.
func (c *Configuration) SetFlatpak(opts FlatpakOptions) {
	opts = opts.WithDefaults()

	c.mu.Lock()
	if c.flatpak != nil && *c.flatpak == opts {
		c.mu.Unlock()
		return
	}
	c.flatpak = &opts
	c.markDirtyLocked()
	c.mu.Unlock()

	c.notify(PropertyFlatpak)
}

// Dirty reports whether a build-affecting field changed since the flag was last cleared.
func (c *Configuration) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// SetDirty sets the dirty flag. Setting it to true always increments the sequence.
func (c *Configuration) SetDirty(dirty bool) {
	c.mu.Lock()
	if dirty {
		c.markDirtyLocked()
	} else {
		if !c.dirty {
			c.mu.Unlock()
			return
		}
		c.dirty = false
	}
	c.mu.Unlock()

	c.notify(PropertyDirty)
}

// Sequence returns the number of times the configuration has been dirtied.
func (c *Configuration) Sequence() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sequence
}

// OnChanged registers an observer and returns a function that removes it.
func (c *Configuration) OnChanged(fn ConfigurationObserver) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextObserver
	c.nextObserver++
	c.observers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

// Snapshot captures the current parameters.
// The snapshot does not change when the configuration is mutated afterwards.
func (c *Configuration) Snapshot() ConfigurationSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := ConfigurationSnapshot{
		ID:          c.id,
		DisplayName: c.displayName,
		DeviceID:    c.deviceID,
		RuntimeID:   c.runtimeID,
		Prefix:      c.prefix,
		ConfigOpts:  c.configOpts,
		Debug:       c.debug,
		Parallelism: c.parallelism,
		Environment: c.env.Copy(),
		Prebuild:    c.prebuild.Copy(),
		Postbuild:   c.postbuild.Copy(),
		Sequence:    c.sequence,
	}
	if c.flatpak != nil {
		opts := *c.flatpak
		s.Flatpak = &opts
	}
	return s
}

// Duplicate returns a copy with a new id from ids and a " Copy" suffixed name.
// The copy starts clean with a zero sequence.
func (c *Configuration) Duplicate(ids IDGenerator) *Configuration {
	s := c.Snapshot()

	dup := NewConfiguration(ids.NextID(s.ID))
	dup.displayName = s.DisplayName + " Copy"
	dup.deviceID = s.DeviceID
	dup.runtimeID = s.RuntimeID
	dup.prefix = s.Prefix
	dup.configOpts = s.ConfigOpts
	dup.debug = s.Debug
	dup.parallelism = s.Parallelism
	dup.adoptEnvironment(s.Environment)
	dup.prebuild = s.Prebuild
	dup.postbuild = s.Postbuild
	dup.flatpak = s.Flatpak
	return dup
}

func (c *Configuration) setString(field *string, value, property string, dirties bool) {
	c.mu.Lock()
	if *field == value {
		c.mu.Unlock()
		return
	}
	*field = value
	if dirties {
		c.markDirtyLocked()
	}
	c.mu.Unlock()

	c.notify(property)
}

func (c *Configuration) markDirtyLocked() {
	c.dirty = true
	c.sequence++
}

func (c *Configuration) adoptEnvironment(env *Environment) {
	if c.env != nil {
		c.env.onChange = nil
	}
	env.onChange = func() {
		c.mu.Lock()
		c.markDirtyLocked()
		c.mu.Unlock()
		c.notify(PropertyEnvironment)
	}
	c.env = env
}

func (c *Configuration) notify(property string) {
	c.mu.Lock()
	observers := make([]ConfigurationObserver, 0, len(c.observers))
	for i := 0; i < c.nextObserver; i++ {
		if fn, ok := c.observers[i]; ok {
			observers = append(observers, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(c, property)
	}
}

// ConfigurationSnapshot is an immutable copy of a configuration's parameters.
type ConfigurationSnapshot struct {
	ID          string
	DisplayName string
	DeviceID    string
	RuntimeID   string
	Prefix      string
	ConfigOpts  string
	Debug       bool
	Parallelism int
	Environment *Environment
	Prebuild    *CommandQueue
	Postbuild   *CommandQueue
	Flatpak     *FlatpakOptions
	Sequence    uint64
}
