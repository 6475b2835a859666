package idl

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	KindStruct = "struct"
	KindEnum   = "enum"
)

// AccountItem is either a single instruction account or, when Accounts is
// non-nil, a named group of nested accounts.
type AccountItem struct {
	Name       string
	IsMut      bool
	IsSigner   bool
	IsOptional *bool
	Docs       []string
	Pda        *Pda
	Relations  []string
	Accounts   []*AccountItem
}

func (a *AccountItem) IsGroup() bool {
	return a.Accounts != nil
}

type account struct {
	Name       string   `json:"name"`
	IsMut      bool     `json:"isMut"`
	IsSigner   bool     `json:"isSigner"`
	IsOptional *bool    `json:"isOptional,omitempty"`
	Docs       []string `json:"docs,omitempty"`
	Pda        *Pda     `json:"pda,omitempty"`
	Relations  []string `json:"relations,omitempty"`
}

type accountGroup struct {
	Name     string         `json:"name"`
	Accounts []*AccountItem `json:"accounts"`
}

func (a *AccountItem) MarshalJSON() ([]byte, error) {
	if a.IsGroup() {
		return json.Marshal(&accountGroup{Name: a.Name, Accounts: a.Accounts})
	}
	return json.Marshal(&account{
		Name:       a.Name,
		IsMut:      a.IsMut,
		IsSigner:   a.IsSigner,
		IsOptional: a.IsOptional,
		Docs:       a.Docs,
		Pda:        a.Pda,
		Relations:  a.Relations,
	})
}

func (a *AccountItem) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	if _, ok := keys["accounts"]; ok {
		group := new(accountGroup)
		if err := json.Unmarshal(data, group); err != nil {
			return errors.Wrap(err, "account group")
		}
		if group.Accounts == nil {
			group.Accounts = []*AccountItem{}
		}
		*a = AccountItem{Name: group.Name, Accounts: group.Accounts}
		return nil
	}
	acc := new(account)
	if err := json.Unmarshal(data, acc); err != nil {
		return errors.Wrap(err, "account")
	}
	*a = AccountItem{
		Name:       acc.Name,
		IsMut:      acc.IsMut,
		IsSigner:   acc.IsSigner,
		IsOptional: acc.IsOptional,
		Docs:       nilIfEmpty(acc.Docs),
		Pda:        acc.Pda,
		Relations:  nilIfEmpty(acc.Relations),
	}
	return nil
}

type Pda struct {
	Seeds     []*Seed `json:"seeds"`
	ProgramId *Seed   `json:"programId,omitempty"`
}

// Seed kinds are "const", "arg" and "account".
type Seed struct {
	Kind    string      `json:"kind"`
	Type    *Type       `json:"type"`
	Value   interface{} `json:"value,omitempty"`
	Account string      `json:"account,omitempty"`
	Path    string      `json:"path,omitempty"`
}

type TypeDefinition struct {
	Name string              `json:"name"`
	Docs []string            `json:"docs,omitempty"`
	Type *TypeDefinitionBody `json:"type"`
}

type TypeDefinitionBody struct {
	Kind     string
	Fields   []*Field
	Variants []*EnumVariant
}

type structBody struct {
	Kind   string   `json:"kind"`
	Fields []*Field `json:"fields"`
}

type enumBody struct {
	Kind     string         `json:"kind"`
	Variants []*EnumVariant `json:"variants"`
}

func (b *TypeDefinitionBody) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case KindStruct:
		fields := b.Fields
		if fields == nil {
			fields = []*Field{}
		}
		return json.Marshal(&structBody{Kind: KindStruct, Fields: fields})
	case KindEnum:
		variants := b.Variants
		if variants == nil {
			variants = []*EnumVariant{}
		}
		return json.Marshal(&enumBody{Kind: KindEnum, Variants: variants})
	}
	return nil, errors.Errorf("unknown type definition kind %q", b.Kind)
}

func (b *TypeDefinitionBody) UnmarshalJSON(data []byte) error {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	switch head.Kind {
	case KindStruct:
		body := new(structBody)
		if err := json.Unmarshal(data, body); err != nil {
			return errors.Wrap(err, "struct")
		}
		if body.Fields == nil {
			body.Fields = []*Field{}
		}
		*b = TypeDefinitionBody{Kind: KindStruct, Fields: body.Fields}
	case KindEnum:
		body := new(enumBody)
		if err := json.Unmarshal(data, body); err != nil {
			return errors.Wrap(err, "enum")
		}
		if body.Variants == nil {
			body.Variants = []*EnumVariant{}
		}
		*b = TypeDefinitionBody{Kind: KindEnum, Variants: body.Variants}
	default:
		return errors.Errorf("unknown type definition kind %q", head.Kind)
	}
	return nil
}

// EnumVariant carries either named Fields or Tuple element types. A variant
// without data has neither.
type EnumVariant struct {
	Name   string
	Fields []*Field
	Tuple  []*Type
}

type enumVariant struct {
	Name   string      `json:"name"`
	Fields interface{} `json:"fields,omitempty"`
}

func (v *EnumVariant) MarshalJSON() ([]byte, error) {
	out := &enumVariant{Name: v.Name}
	if v.Fields != nil {
		out.Fields = v.Fields
	} else if v.Tuple != nil {
		out.Fields = v.Tuple
	}
	return json.Marshal(out)
}

func (v *EnumVariant) UnmarshalJSON(data []byte) error {
	var in struct {
		Name   string            `json:"name"`
		Fields []json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*v = EnumVariant{Name: in.Name}
	if in.Fields == nil {
		return nil
	}
	if len(in.Fields) == 0 || isNamedField(in.Fields[0]) {
		v.Fields = make([]*Field, 0, len(in.Fields))
		for _, raw := range in.Fields {
			field := new(Field)
			if err := json.Unmarshal(raw, field); err != nil {
				return errors.Wrapf(err, "variant %s", in.Name)
			}
			v.Fields = append(v.Fields, field)
		}
		return nil
	}
	v.Tuple = make([]*Type, 0, len(in.Fields))
	for _, raw := range in.Fields {
		t := new(Type)
		if err := json.Unmarshal(raw, t); err != nil {
			return errors.Wrapf(err, "variant %s", in.Name)
		}
		v.Tuple = append(v.Tuple, t)
	}
	return nil
}

func isNamedField(raw json.RawMessage) bool {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return false
	}
	_, hasName := keys["name"]
	_, hasType := keys["type"]
	return hasName && hasType
}
