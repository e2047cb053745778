package app

import (
	"strconv"
	"strings"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"go.trai.ch/zerr"
)

// envKeyPrefix selects an environment variable in SetOption keys.
const envKeyPrefix = "env."

// Option keys accepted by SetOption, besides env.<KEY>.
const (
	OptionName        = "name"
	OptionDevice      = "device"
	OptionRuntime     = "runtime"
	OptionPrefix      = "prefix"
	OptionParallelism = "parallelism"
	OptionDebug       = "debug"
	OptionConfigOpts  = "config-opts"
)

// OptionKeys lists the keys accepted by SetOption.
func OptionKeys() []string {
	return []string{
		OptionName,
		OptionDevice,
		OptionRuntime,
		OptionPrefix,
		OptionParallelism,
		OptionDebug,
		OptionConfigOpts,
		envKeyPrefix + "<KEY>",
	}
}

// applyOption sets key to value on cfg. An empty value for env.<KEY> unsets the variable.
func applyOption(cfg *domain.Configuration, key, value string) error {
	invalid := func(cause error) error {
		err := zerr.Wrap(domain.ErrInvalidOptionValue, "cannot set "+key)
		if cause != nil {
			err = zerr.Wrap(errorsJoin(domain.ErrInvalidOptionValue, cause), "cannot set "+key)
		}
		return zerr.With(zerr.With(err, "key", key), "value", value)
	}

	switch key {
	case OptionName:
		cfg.SetDisplayName(value)
	case OptionDevice:
		if value == "" {
			return invalid(nil)
		}
		cfg.SetDeviceID(value)
	case OptionRuntime:
		if value == "" {
			return invalid(nil)
		}
		cfg.SetRuntimeID(value)
	case OptionPrefix:
		cfg.SetPrefix(value)
	case OptionParallelism:
		n, err := strconv.Atoi(value)
		if err != nil {
			return invalid(err)
		}
		if err := cfg.SetParallelism(n); err != nil {
			return invalid(err)
		}
	case OptionDebug:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(err)
		}
		cfg.SetDebug(b)
	case OptionConfigOpts:
		if _, err := domain.SplitShellWords(value); err != nil {
			return invalid(err)
		}
		cfg.SetConfigOpts(value)
	default:
		name, ok := strings.CutPrefix(key, envKeyPrefix)
		if !ok || name == "" || strings.ContainsRune(name, '=') {
			return zerr.With(zerr.Wrap(domain.ErrUnknownOption, "cannot set option"), "key", key)
		}
		if value == "" {
			cfg.Environment().Unset(name)
		} else {
			cfg.Environment().Set(name, value)
		}
	}
	return nil
}
