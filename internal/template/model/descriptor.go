package model

// VariableKind tags the two forms a descriptor variable can take.
type VariableKind int

const (
	// VariableLiteral is a variable declared as a bare string.
	VariableLiteral VariableKind = iota
	// VariableSpec is a variable declared as a table with optional
	// default, type and prompt.
	VariableSpec
)

// String returns the kind name.
func (k VariableKind) String() string {
	switch k {
	case VariableLiteral:
		return "literal"
	case VariableSpec:
		return "spec"
	default:
		return "unknown"
	}
}

// Variable represents one entry of the descriptor's variables table.
type Variable struct {
	// Name is the binding name.
	Name string
	// Kind selects which of the remaining fields apply.
	Kind VariableKind
	// Literal is the value of a VariableLiteral.
	Literal string
	// Default is the default of a VariableSpec. Only meaningful when HasDefault is set.
	Default string
	// HasDefault reports whether the spec declares a default.
	HasDefault bool
	// Type is the advisory type of a VariableSpec. Empty when undeclared.
	Type VarType
	// Prompt is the optional prompt label of a VariableSpec.
	Prompt string
}

// Label returns the text shown when prompting for the variable.
func (v Variable) Label() string {
	if v.Prompt != "" {
		return v.Prompt
	}
	return v.Name
}

// NeedsPrompt reports whether the value must be asked from the user.
func (v Variable) NeedsPrompt() bool {
	return v.Kind == VariableSpec && !v.HasDefault
}

// Descriptor is the parsed template.toml of a template. The zero value is
// the empty descriptor used when the file is absent.
type Descriptor struct {
	// Variables in declaration order.
	Variables []Variable
}

// Lookup returns the variable with the given name.
func (d Descriptor) Lookup(name string) (Variable, bool) {
	for _, v := range d.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Names returns the variable names in declaration order.
func (d Descriptor) Names() []string {
	names := make([]string, 0, len(d.Variables))
	for _, v := range d.Variables {
		names = append(names, v.Name)
	}
	return names
}
