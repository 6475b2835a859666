package idl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindDefined
	KindOption
	KindCOption
	KindVec
	KindArray
)

var primitives = map[string]bool{
	"bool":      true,
	"u8":        true,
	"i8":        true,
	"u16":       true,
	"i16":       true,
	"u32":       true,
	"i32":       true,
	"f32":       true,
	"u64":       true,
	"i64":       true,
	"f64":       true,
	"u128":      true,
	"i128":      true,
	"u256":      true,
	"i256":      true,
	"bytes":     true,
	"string":    true,
	"publicKey": true,
}

// Type is an IDL field type. Name holds the primitive or defined type name,
// Inner the element type of option, coption, vec and array, and Len the array
// length.
type Type struct {
	Kind  TypeKind
	Name  string
	Inner *Type
	Len   int
}

func Primitive(name string) *Type {
	return &Type{Kind: KindPrimitive, Name: name}
}

func Defined(name string) *Type {
	return &Type{Kind: KindDefined, Name: name}
}

func Option(inner *Type) *Type {
	return &Type{Kind: KindOption, Inner: inner}
}

func Vec(inner *Type) *Type {
	return &Type{Kind: KindVec, Inner: inner}
}

func Array(inner *Type, n int) *Type {
	return &Type{Kind: KindArray, Inner: inner, Len: n}
}

func (t *Type) String() string {
	switch t.Kind {
	case KindDefined:
		return t.Name
	case KindOption:
		return fmt.Sprintf("Option<%s>", t.Inner)
	case KindCOption:
		return fmt.Sprintf("COption<%s>", t.Inner)
	case KindVec:
		return fmt.Sprintf("Vec<%s>", t.Inner)
	case KindArray:
		return fmt.Sprintf("[%s; %d]", t.Inner, t.Len)
	default:
		return t.Name
	}
}

func (t *Type) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case KindPrimitive:
		return json.Marshal(t.Name)
	case KindDefined:
		return json.Marshal(map[string]string{"defined": t.Name})
	case KindOption:
		return json.Marshal(map[string]*Type{"option": t.Inner})
	case KindCOption:
		return json.Marshal(map[string]*Type{"coption": t.Inner})
	case KindVec:
		return json.Marshal(map[string]*Type{"vec": t.Inner})
	case KindArray:
		return json.Marshal(map[string][]interface{}{"array": {t.Inner, t.Len}})
	}
	return nil, errors.Errorf("unknown type kind %d", t.Kind)
}

func (t *Type) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		if !primitives[name] {
			return errors.Errorf("unknown primitive type %q", name)
		}
		*t = Type{Kind: KindPrimitive, Name: name}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "type must be a string or an object")
	}
	if len(obj) != 1 {
		return errors.Errorf("type object must have exactly one key, got %d", len(obj))
	}
	for key, raw := range obj {
		switch key {
		case "defined":
			var name string
			if err := json.Unmarshal(raw, &name); err != nil {
				return errors.Wrap(err, "defined")
			}
			*t = Type{Kind: KindDefined, Name: name}
		case "option", "coption", "vec":
			inner := new(Type)
			if err := json.Unmarshal(raw, inner); err != nil {
				return errors.Wrap(err, key)
			}
			kind := KindOption
			if key == "coption" {
				kind = KindCOption
			} else if key == "vec" {
				kind = KindVec
			}
			*t = Type{Kind: kind, Inner: inner}
		case "array":
			var pair []json.RawMessage
			if err := json.Unmarshal(raw, &pair); err != nil {
				return errors.Wrap(err, "array")
			}
			if len(pair) != 2 {
				return errors.Errorf("array must be [type, length], got %d elements", len(pair))
			}
			inner := new(Type)
			if err := json.Unmarshal(pair[0], inner); err != nil {
				return errors.Wrap(err, "array")
			}
			var n int
			if err := json.Unmarshal(pair[1], &n); err != nil {
				return errors.Wrap(err, "array length")
			}
			if n < 0 {
				return errors.Errorf("array length must not be negative, got %d", n)
			}
			*t = Type{Kind: KindArray, Inner: inner, Len: n}
		default:
			return errors.Errorf("unknown type %q", key)
		}
	}
	return nil
}
