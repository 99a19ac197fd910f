package program

import (
	"fmt"

	"github.com/vovakirdan/astro-sim/internal/world"
)

// ValueKind enumerates the runtime kinds a program value may hold.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindBoolean
	KindEntity
)

// String returns a human-readable name for the kind.
func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// Value is the tagged runtime carrier for program variables and
// expression results. The kind determines which accessor is valid. An
// entity value may hold a nil reference.
type Value struct {
	kind ValueKind
	num  float64
	b    bool
	ent  world.Entity
}

// NumberValue wraps a float64.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: KindBoolean, b: b} }

// EntityValue wraps an entity reference, possibly nil.
func EntityValue(e world.Entity) Value { return Value{kind: KindEntity, ent: e} }

// Kind returns the value's runtime kind.
func (v Value) Kind() ValueKind { return v.kind }

// Number returns the numeric payload; ok is false for other kinds.
func (v Value) Number() (f float64, ok bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload; ok is false for other kinds.
func (v Value) Bool() (b bool, ok bool) { return v.b, v.kind == KindBoolean }

// Entity returns the entity payload; ok is false for other kinds. The
// entity itself may be nil.
func (v Value) Entity() (e world.Entity, ok bool) { return v.ent, v.kind == KindEntity }

// Equal compares two values of the same kind. Entities compare by
// identity.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindBoolean:
		return v.b == o.b
	default:
		return v.ent == o.ent
	}
}

// String renders the value for print traces.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindBoolean:
		return fmt.Sprintf("%t", v.b)
	default:
		if v.ent == nil {
			return "null"
		}
		return v.ent.Kind().String()
	}
}
