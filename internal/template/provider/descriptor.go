package provider

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/model"
)

const variablesKey = "variables"

// LoadDescriptor reads template.toml from the template root.
// A missing file yields the empty descriptor.
func LoadDescriptor(templateRoot string) (model.Descriptor, error) {
	path := filepath.Join(templateRoot, model.DescriptorFile)
	logger := logging.GetLogger("provider")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("No descriptor, using empty variable set")
			return model.Descriptor{}, nil
		}
		return model.Descriptor{}, &DescriptorError{File: path, Message: "failed to read descriptor", Cause: err}
	}

	desc, err := ParseDescriptor(path, data)
	if err != nil {
		return model.Descriptor{}, err
	}
	logger.Debug().
		Str("path", path).
		Strs("variables", desc.Names()).
		Msg("Descriptor loaded")
	return desc, nil
}

// ParseDescriptor decodes descriptor bytes. file is only used in errors.
func ParseDescriptor(file string, data []byte) (model.Descriptor, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		derr := &DescriptorError{File: file, Message: "invalid TOML", Cause: err}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			derr.Line, derr.Column = decodeErr.Position()
		}
		return model.Descriptor{}, derr
	}

	raw, ok := doc[variablesKey]
	if !ok {
		return model.Descriptor{}, nil
	}
	table, ok := raw.(map[string]interface{})
	if !ok {
		return model.Descriptor{}, &DescriptorError{
			File:    file,
			Message: fmt.Sprintf("%q must be a table, got %s", variablesKey, tomlTypeName(raw)),
		}
	}

	var desc model.Descriptor
	for _, name := range declarationOrder(data, table) {
		v, err := decodeVariable(file, name, table[name])
		if err != nil {
			return model.Descriptor{}, err
		}
		desc.Variables = append(desc.Variables, v)
	}
	return desc, nil
}

func decodeVariable(file, name string, raw interface{}) (model.Variable, error) {
	switch val := raw.(type) {
	case string:
		return model.Variable{Name: name, Kind: model.VariableLiteral, Literal: val}, nil
	case map[string]interface{}:
		v := model.Variable{Name: name, Kind: model.VariableSpec}
		for key, field := range val {
			switch key {
			case "default":
				s, ok := field.(string)
				if !ok {
					return model.Variable{}, newVariableError(file, name, "default must be a string, got %s", tomlTypeName(field))
				}
				v.Default = s
				v.HasDefault = true
			case "type":
				s, ok := field.(string)
				if !ok || !model.VarType(s).Valid() {
					return model.Variable{}, newVariableError(file, name, "type must be %q or %q, got %v",
						model.VarTypeString, model.VarTypeBool, field)
				}
				v.Type = model.VarType(s)
			case "prompt":
				s, ok := field.(string)
				if !ok {
					return model.Variable{}, newVariableError(file, name, "prompt must be a string, got %s", tomlTypeName(field))
				}
				v.Prompt = s
			default:
				logger := logging.GetLogger("provider")
				logger.Debug().
					Str("variable", name).
					Str("key", key).
					Msg("Ignoring unknown variable key")
			}
		}
		return v, nil
	default:
		return model.Variable{}, newVariableError(file, name, "must be a string or a table, got %s", tomlTypeName(raw))
	}
}

// declarationOrder returns the keys of the variables table in the order they
// first appear in the document. Keys the scan misses are appended last.
func declarationOrder(data []byte, table map[string]interface{}) []string {
	seen := make(map[string]bool, len(table))
	order := make([]string, 0, len(table))
	record := func(path []string) {
		if len(path) < 2 || path[0] != variablesKey || seen[path[1]] {
			return
		}
		if _, ok := table[path[1]]; !ok {
			return
		}
		seen[path[1]] = true
		order = append(order, path[1])
	}

	p := unstable.Parser{}
	p.Reset(data)
	var current []string
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			current = keyParts(expr.Key())
			record(current)
		case unstable.KeyValue:
			path := append(append([]string{}, current...), keyParts(expr.Key())...)
			record(path)
			if len(path) == 1 && path[0] == variablesKey && expr.Value().Kind == unstable.InlineTable {
				children := expr.Value().Children()
				for children.Next() {
					kv := children.Node()
					if kv.Kind == unstable.KeyValue {
						record(append([]string{variablesKey}, keyParts(kv.Key())...))
					}
				}
			}
		}
	}

	var rest []string
	for name := range table {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

func tomlTypeName(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "float"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
