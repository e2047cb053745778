package domain

// DefaultFlatpakRepoName is the repository name used when none is configured.
const DefaultFlatpakRepoName = "gnome-builder-builds"

// FlatpakOptions carries the Flatpak-specific parameters of a configuration.
type FlatpakOptions struct {
	Manifest      string
	PrimaryModule string
	RepoDir       string
	RepoName      string
}

// WithDefaults returns a copy with empty fields filled in.
func (o FlatpakOptions) WithDefaults() FlatpakOptions {
	if o.RepoName == "" {
		o.RepoName = DefaultFlatpakRepoName
	}
	return o
}
