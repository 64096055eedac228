package client

import (
	"fmt"
)

// Var binds the GraphQL variable Name to the method argument at Index
type Var struct {
	Name  string
	Index int
}

// Operation describes the GraphQL query behind one method
type Operation struct {
	Method string
	Query  string
	Vars   []Var
}

func (o Operation) validate() error {
	if o.Method == "" {
		return fmt.Errorf("operation without method name")
	}

	if IsObjectMethod(o.Method) {
		return fmt.Errorf("operation %s: method name is reserved", o.Method)
	}

	if o.Query == "" {
		return fmt.Errorf("operation %s: empty query", o.Method)
	}

	seen := make(map[string]struct{}, len(o.Vars))
	for _, v := range o.Vars {
		if v.Index < 0 {
			return fmt.Errorf("operation %s: variable %s has negative index %d", o.Method, v.Name, v.Index)
		}

		if _, ok := seen[v.Name]; ok {
			return fmt.Errorf("operation %s: duplicate variable %s", o.Method, v.Name)
		}
		seen[v.Name] = struct{}{}
	}

	return nil
}

func (o *Operation) variables(args []interface{}) (map[string]interface{}, error) {
	if len(o.Vars) == 0 {
		return nil, nil
	}

	vars := make(map[string]interface{}, len(o.Vars))
	for _, v := range o.Vars {
		if v.Index >= len(args) {
			return nil, &ArgumentError{
				Method:   o.Method,
				Variable: v.Name,
				Index:    v.Index,
				Args:     len(args),
			}
		}

		vars[v.Name] = args[v.Index]
	}

	return vars, nil
}
