package idl

import (
	"sort"

	"github.com/badgerodon/collections/stack"
)

// ReferencedTypes returns the sorted names of every defined type referenced
// from instructions, accounts, types, events and constants. Names that no
// type definition declares are included as well.
func (idl *Idl) ReferencedTypes() []string {
	s := stack.New()
	push := func(t *Type) {
		if t != nil {
			s.Push(t)
		}
	}
	pushFields := func(fields []*Field) {
		for _, f := range fields {
			push(f.Type)
		}
	}
	pushDefinitions := func(defs []*TypeDefinition) {
		for _, def := range defs {
			if def.Type == nil {
				continue
			}
			pushFields(def.Type.Fields)
			for _, variant := range def.Type.Variants {
				pushFields(variant.Fields)
				for _, t := range variant.Tuple {
					push(t)
				}
			}
		}
	}

	for _, c := range idl.Constants {
		push(c.Type)
	}
	for _, ix := range idl.Instructions {
		pushFields(ix.Args)
		push(ix.Returns)
	}
	pushDefinitions(idl.Accounts)
	pushDefinitions(idl.Types)
	for _, event := range idl.Events {
		for _, f := range event.Fields {
			push(f.Type)
		}
	}

	seen := make(map[string]bool)
	for s.Len() > 0 {
		t := s.Pop().(*Type)
		switch t.Kind {
		case KindDefined:
			seen[t.Name] = true
		case KindOption, KindCOption, KindVec, KindArray:
			push(t.Inner)
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Undefined returns the referenced type names that have no definition in
// either the accounts or the types section.
func (idl *Idl) Undefined() []string {
	declared := make(map[string]bool)
	for _, def := range idl.Accounts {
		declared[def.Name] = true
	}
	for _, def := range idl.Types {
		declared[def.Name] = true
	}
	missing := make([]string, 0)
	for _, name := range idl.ReferencedTypes() {
		if !declared[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
