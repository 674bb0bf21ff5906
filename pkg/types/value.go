package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the semantic type held by a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindDate
	KindBool
	KindSeq
)

// Value is the tagged variant stored in a CatalogItem field. A Value is
// immutable after construction. The zero Value is Absent.
type Value struct {
	kind    Kind
	str     string // KindString and KindDate (ISO YYYY-MM-DD)
	num     float64
	boolean bool
	seq     []Value
}

// Absent returns the absent-field sentinel.
func Absent() Value { return Value{} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric Value. NaN is a legal payload; it marks a
// value that failed numeric coercion and is skipped by aggregates.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Date returns a date Value holding an ISO YYYY-MM-DD string.
func Date(iso string) Value { return Value{kind: KindDate, str: iso} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Seq returns a sequence Value over the given elements.
func Seq(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindSeq, seq: elems}
}

// Kind returns the semantic type tag.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is the absent-field sentinel.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsNumeric reports whether the value holds a usable number. A Number
// carrying the NaN sentinel is not numeric for aggregation purposes.
func (v Value) IsNumeric() bool {
	return v.kind == KindNumber && !math.IsNaN(v.num)
}

// Float returns the numeric payload. ok is false for non-numeric values
// and for the NaN sentinel.
func (v Value) Float() (float64, bool) {
	if !v.IsNumeric() {
		return 0, false
	}
	return v.num, true
}

// Bool returns the boolean payload, or false for non-boolean values.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.boolean
}

// Elems returns the sequence elements, or nil for non-sequence values.
func (v Value) Elems() []Value {
	if v.kind != KindSeq {
		return nil
	}
	return v.seq
}

// String returns the canonical text rendering of the value. Absent
// renders as the empty string, sequences as comma-separated elements.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return ""
	case KindString, KindDate:
		return v.str
	case KindNumber:
		if math.IsNaN(v.num) {
			return ""
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindSeq:
		parts := make([]string, len(v.seq))
		for i, e := range v.seq {
			parts[i] = e.String()
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// Equal reports whether two values are equal. Numbers compare
// numerically (NaN is never equal, itself included); strings and dates
// compare by text, interchangeably. Sequences compare element-wise.
func (v Value) Equal(o Value) bool {
	if isTextKind(v.kind) && isTextKind(o.kind) {
		return v.str == o.str
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.boolean == o.boolean
	case KindSeq:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func isTextKind(k Kind) bool { return k == KindString || k == KindDate }

// Contains reports whether the value matches want: sequences match when
// any element equals want, scalars match when they equal want directly.
// Absent values never contain a non-absent want.
func (v Value) Contains(want Value) bool {
	if v.kind == KindSeq {
		for _, e := range v.seq {
			if e.Equal(want) {
				return true
			}
		}
		return false
	}
	if v.kind == KindAbsent {
		return want.kind == KindAbsent
	}
	return v.Equal(want)
}

// dateLayouts are the accepted input formats for date coercion, tried
// in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Coerce converts a raw frontmatter value into the semantic type
// declared for a field. Coerce is pure and never panics; input that
// cannot be parsed degrades per type: numbers take the NaN sentinel,
// dates become Absent, sequences drop to empty, and everything else
// stringifies. A nil raw value yields Absent for scalar types and an
// empty sequence for array types.
func Coerce(raw any, t FieldType) Value {
	switch t {
	case FieldTypeNumber:
		return coerceNumber(raw)
	case FieldTypeBoolean:
		return coerceBool(raw)
	case FieldTypeDate:
		return coerceDate(raw)
	case FieldTypeArray, FieldTypeReferenceArray:
		return coerceSeq(raw, "")
	default:
		return coerceString(raw)
	}
}

// CoerceField is Coerce with the full field declaration, so sequence
// fields can apply their declared ArrayItemType to each element.
func CoerceField(raw any, f SchemaField) Value {
	if IsSequenceType(f.Type) {
		return coerceSeq(raw, f.ArrayItemType)
	}
	return Coerce(raw, f.Type)
}

func coerceNumber(raw any) Value {
	switch n := raw.(type) {
	case float64:
		return Number(n)
	case float32:
		return Number(float64(n))
	case int:
		return Number(float64(n))
	case int64:
		return Number(float64(n))
	case uint64:
		return Number(float64(n))
	case bool:
		if n {
			return Number(1)
		}
		return Number(0)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return Number(math.NaN())
		}
		return Number(f)
	default:
		return Number(math.NaN())
	}
}

func coerceBool(raw any) Value {
	switch b := raw.(type) {
	case bool:
		return Bool(b)
	case string:
		return Bool(b == "true")
	case int:
		return Bool(b == 1)
	case int64:
		return Bool(b == 1)
	case float64:
		return Bool(b == 1)
	default:
		return Bool(false)
	}
}

func coerceDate(raw any) Value {
	switch d := raw.(type) {
	case time.Time:
		return Date(d.Format("2006-01-02"))
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return Date(t.Format("2006-01-02"))
			}
		}
		return Absent()
	default:
		return Absent()
	}
}

func coerceSeq(raw any, itemType FieldType) Value {
	if raw == nil {
		return Seq(nil)
	}
	elems, ok := raw.([]any)
	if !ok {
		// A scalar raw value wraps into a single-element sequence.
		return Seq([]Value{coerceElem(raw, itemType)})
	}
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		out = append(out, coerceElem(e, itemType))
	}
	return Seq(out)
}

// coerceElem coerces one sequence element. Without a declared item type
// the element keeps the semantic type suggested by its raw form.
func coerceElem(raw any, itemType FieldType) Value {
	if itemType != "" {
		return Coerce(raw, itemType)
	}
	switch e := raw.(type) {
	case string:
		return String(e)
	case bool:
		return Bool(e)
	case int, int64, uint64, float32, float64:
		return coerceNumber(e)
	case time.Time:
		return Date(e.Format("2006-01-02"))
	default:
		return coerceString(raw)
	}
}

func coerceString(raw any) Value {
	if raw == nil {
		return Absent()
	}
	switch s := raw.(type) {
	case string:
		return String(s)
	case time.Time:
		return String(s.Format("2006-01-02"))
	case map[string]any, []any:
		// Structured values render as JSON text in string context.
		b, err := json.Marshal(s)
		if err != nil {
			return Absent()
		}
		return String(string(b))
	default:
		return String(fmt.Sprintf("%v", s))
	}
}
