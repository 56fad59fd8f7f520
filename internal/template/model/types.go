package model

import "os"

// Special file and directory names used in a templates repository.
const (
	// DescriptorFile is the template descriptor file name in the template root.
	DescriptorFile = "template.toml"
	// TemplatesSubdir is the directory under the repository root holding one
	// directory per template.
	TemplatesSubdir = "templates"
	// SharedFilesDir is the directory, relative to the repository root, that
	// include_file reads from.
	SharedFilesDir = "internal/files"
	// ResourcesDir is the directory, relative to the repository root, that
	// include_resource reads from.
	ResourcesDir = "internal/resources"
)

// Names of the bindings that every application injects.
const (
	VarProjectName = "project_name"
	VarFullName    = "full_name"
	VarLicense     = "license"
)

// VarType represents the advisory type of a descriptor variable.
type VarType string

const (
	// VarTypeString represents a string variable type.
	VarTypeString VarType = "string"
	// VarTypeBool represents a boolean variable type.
	VarTypeBool VarType = "boolean"
)

// Valid reports whether t is a known variable type.
func (t VarType) Valid() bool {
	return t == VarTypeString || t == VarTypeBool
}

// SourceEntry represents a single file of the template tree.
type SourceEntry struct {
	// Path is the slash-separated path relative to the template root. It may
	// contain placeholders.
	Path string
	// Content is the raw file content.
	Content []byte
	// Mode is the file mode of the source file.
	Mode os.FileMode
	// IsBinary indicates whether the file is binary (should not be template-processed).
	IsBinary bool
}

// RenderedOutput is a SourceEntry after path and content rendering.
type RenderedOutput struct {
	// Path is the rendered path relative to the target root.
	Path string
	// Content is the rendered content.
	Content []byte
	// Mode is carried over from the source entry.
	Mode os.FileMode
}
