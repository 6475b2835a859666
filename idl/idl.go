package idl

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type Idl struct {
	Version      string                 `json:"version"`
	Name         string                 `json:"name"`
	Docs         []string               `json:"docs,omitempty"`
	Constants    []*Const               `json:"constants,omitempty"`
	Instructions []*Instruction         `json:"instructions"`
	Accounts     []*TypeDefinition      `json:"accounts,omitempty"`
	Types        []*TypeDefinition      `json:"types,omitempty"`
	Events       []*Event               `json:"events,omitempty"`
	Errors       []*ErrorCode           `json:"errors,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

type Const struct {
	Name  string `json:"name"`
	Type  *Type  `json:"type"`
	Value string `json:"value"`
}

type Instruction struct {
	Name     string         `json:"name"`
	Docs     []string       `json:"docs,omitempty"`
	Accounts []*AccountItem `json:"accounts"`
	Args     []*Field       `json:"args"`
	Returns  *Type          `json:"returns,omitempty"`
}

type Field struct {
	Name string   `json:"name"`
	Docs []string `json:"docs,omitempty"`
	Type *Type    `json:"type"`
}

type Event struct {
	Name   string        `json:"name"`
	Fields []*EventField `json:"fields"`
}

type EventField struct {
	Name  string `json:"name"`
	Type  *Type  `json:"type"`
	Index bool   `json:"index"`
}

type ErrorCode struct {
	Code uint32 `json:"code"`
	Name string `json:"name"`
	Msg  string `json:"msg,omitempty"`
}

// Parse decodes an IDL document. Only the structure is checked: unknown type
// names and dangling defined references are accepted.
func Parse(text string) (*Idl, error) {
	idl := new(Idl)
	if err := json.Unmarshal([]byte(text), idl); err != nil {
		return nil, errors.Wrap(err, "decode idl")
	}
	if idl.Instructions == nil {
		return nil, errors.New("decode idl: missing instructions")
	}
	idl.normalize()
	return idl, nil
}

// normalize drops empty optional collections so a decoded document matches
// what Marshal emits for it.
func (idl *Idl) normalize() {
	idl.Docs = nilIfEmpty(idl.Docs)
	if len(idl.Constants) == 0 {
		idl.Constants = nil
	}
	if len(idl.Accounts) == 0 {
		idl.Accounts = nil
	}
	if len(idl.Types) == 0 {
		idl.Types = nil
	}
	if len(idl.Events) == 0 {
		idl.Events = nil
	}
	if len(idl.Errors) == 0 {
		idl.Errors = nil
	}
	if len(idl.Metadata) == 0 {
		idl.Metadata = nil
	}
	for _, ix := range idl.Instructions {
		ix.Docs = nilIfEmpty(ix.Docs)
		normalizeFields(ix.Args)
	}
	for _, defs := range [][]*TypeDefinition{idl.Accounts, idl.Types} {
		for _, def := range defs {
			def.Docs = nilIfEmpty(def.Docs)
			if def.Type == nil {
				continue
			}
			normalizeFields(def.Type.Fields)
			for _, variant := range def.Type.Variants {
				normalizeFields(variant.Fields)
			}
		}
	}
}

func normalizeFields(fields []*Field) {
	for _, f := range fields {
		f.Docs = nilIfEmpty(f.Docs)
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func (idl *Idl) Marshal() ([]byte, error) {
	return json.Marshal(idl)
}

func (idl *Idl) Instruction(name string) *Instruction {
	for _, ix := range idl.Instructions {
		if ix.Name == name {
			return ix
		}
	}
	return nil
}
