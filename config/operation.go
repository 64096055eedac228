package config

import (
	"fmt"

	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// resolve fills Method, Vars and Args from the query document when they are not set
func (o *OperationConfig) resolve() error {
	if o.Query == "" {
		if o.Method == "" {
			return fmt.Errorf("either method or query is required")
		}

		return nil
	}

	if o.Method == "" || o.Vars == nil || o.Args == nil {
		def, err := parseOperation(o.Query)
		if err != nil {
			return err
		}

		if o.Method == "" {
			if def.Name == "" {
				return fmt.Errorf("method is required for anonymous operations")
			}
			o.Method = templates.ToGo(def.Name)
		}

		if o.Vars == nil {
			for _, vd := range def.VariableDefinitions {
				o.Vars = append(o.Vars, vd.Variable)
			}
		}

		if o.Args == nil {
			for _, name := range o.Vars {
				o.Args = append(o.Args, argType(variable(def, name)))
			}
		}
	}

	if len(o.Args) != len(o.Vars) {
		return fmt.Errorf("%s: %d vars but %d args", o.Method, len(o.Vars), len(o.Args))
	}

	return nil
}

func parseOperation(query string) (*ast.OperationDefinition, error) {
	doc, gerr := parser.ParseQuery(&ast.Source{Input: query})
	if gerr != nil {
		return nil, fmt.Errorf("unable to parse query: %w", gerr)
	}

	if len(doc.Operations) != 1 {
		return nil, fmt.Errorf("query must hold exactly one operation, got %d", len(doc.Operations))
	}

	return doc.Operations[0], nil
}

func variable(def *ast.OperationDefinition, name string) *ast.VariableDefinition {
	for _, vd := range def.VariableDefinitions {
		if vd.Variable == name {
			return vd
		}
	}

	return nil
}

func argType(vd *ast.VariableDefinition) string {
	if vd == nil {
		return "interface{}"
	}

	return goType(vd.Type)
}

func goType(t *ast.Type) string {
	if t.Elem != nil {
		return "[]" + goType(t.Elem)
	}

	var name string
	switch t.NamedType {
	case "String", "ID":
		name = "string"
	case "Int":
		name = "int"
	case "Float":
		name = "float64"
	case "Boolean":
		name = "bool"
	default:
		return "interface{}"
	}

	if !t.NonNull {
		return "*" + name
	}

	return name
}
