package model

// Template represents a template selected from the repository.
type Template struct {
	// Name is the directory name under templates/.
	Name string
	// RootPath is the local path to the template root directory.
	RootPath string
	// RepositoryRoot is the templates repository root that holds the shared
	// files and resources.
	RepositoryRoot string
	// Descriptor is the parsed template.toml, empty when the file is absent.
	Descriptor Descriptor
}
