package types

import (
	"math"
	"testing"
	"time"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
		nan  bool
	}{
		{"float", 12.5, 12.5, false},
		{"int", 42, 42, false},
		{"numeric string", "1928", 1928, false},
		{"padded numeric string", " 3.14 ", 3.14, false},
		{"non-numeric string", "unknown", 0, true},
		{"nil", nil, 0, true},
		{"bool true", true, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw, FieldTypeNumber)
			if v.Kind() != KindNumber {
				t.Fatalf("Coerce(%v) kind = %v, want KindNumber", tt.raw, v.Kind())
			}
			if tt.nan {
				if v.IsNumeric() {
					t.Errorf("Coerce(%v) = numeric %v, want NaN sentinel", tt.raw, v)
				}
				return
			}
			got, ok := v.Float()
			if !ok || got != tt.want {
				t.Errorf("Coerce(%v) = %v (ok=%v), want %v", tt.raw, got, ok, tt.want)
			}
		})
	}
}

func TestCoerceBoolean(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"string true", "true", true},
		{"string TRUE", "TRUE", false},
		{"string yes", "yes", false},
		{"int one", 1, true},
		{"int zero", 0, false},
		{"float one", 1.0, true},
		{"nil", nil, false},
		{"unrelated string", "false-ish", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw, FieldTypeBoolean)
			if v.Kind() != KindBool || v.Bool() != tt.want {
				t.Errorf("Coerce(%v) = %v, want Bool(%v)", tt.raw, v, tt.want)
			}
		})
	}
}

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string // "" means Absent
	}{
		{"iso date", "1894-07-02", "1894-07-02"},
		{"rfc3339", "1928-02-01T10:30:00Z", "1928-02-01"},
		{"slash date", "1942/08/15", "1942-08-15"},
		{"long form", "July 2, 1894", "1894-07-02"},
		{"time.Time", time.Date(1839, 9, 1, 0, 0, 0, 0, time.UTC), "1839-09-01"},
		{"garbage", "not a date", ""},
		{"nil", nil, ""},
		{"number", 1894, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw, FieldTypeDate)
			if tt.want == "" {
				if !v.IsAbsent() {
					t.Errorf("Coerce(%v) = %v, want Absent", tt.raw, v)
				}
				return
			}
			if v.Kind() != KindDate || v.String() != tt.want {
				t.Errorf("Coerce(%v) = %v, want Date(%q)", tt.raw, v, tt.want)
			}
		})
	}
}

func TestCoerceArray(t *testing.T) {
	t.Run("array preserved", func(t *testing.T) {
		v := Coerce([]any{"gothic", "horror"}, FieldTypeArray)
		elems := v.Elems()
		if len(elems) != 2 || elems[0].String() != "gothic" || elems[1].String() != "horror" {
			t.Errorf("Coerce(array) = %v, want 2-element sequence", v)
		}
	})
	t.Run("scalar wraps into single element", func(t *testing.T) {
		v := Coerce("gothic", FieldTypeReferenceArray)
		if len(v.Elems()) != 1 || v.Elems()[0].String() != "gothic" {
			t.Errorf("Coerce(scalar) = %v, want one-element sequence", v)
		}
	})
	t.Run("nil becomes empty sequence", func(t *testing.T) {
		v := Coerce(nil, FieldTypeArray)
		if v.Kind() != KindSeq || len(v.Elems()) != 0 {
			t.Errorf("Coerce(nil) = %v, want empty sequence", v)
		}
	})
	t.Run("mixed element types keep their kinds", func(t *testing.T) {
		v := Coerce([]any{"a", 2, true}, FieldTypeArray)
		elems := v.Elems()
		if elems[0].Kind() != KindString || elems[1].Kind() != KindNumber || elems[2].Kind() != KindBool {
			t.Errorf("Coerce(mixed) kinds = %v %v %v", elems[0].Kind(), elems[1].Kind(), elems[2].Kind())
		}
	})
}

func TestCoerceFieldArrayItemType(t *testing.T) {
	f := SchemaField{Key: "years", Type: FieldTypeArray, ArrayItemType: FieldTypeNumber}
	v := CoerceField([]any{"1800", "1900"}, f)
	for i, e := range v.Elems() {
		if got, ok := e.Float(); !ok {
			t.Errorf("element %d = %v, want number", i, e)
		} else if got != float64(1800+i*100) {
			t.Errorf("element %d = %v", i, got)
		}
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   string
		absent bool
	}{
		{"string", "The Raven", "The Raven", false},
		{"number", 13, "13", false},
		{"bool", true, "true", false},
		{"nil is absent not the string null", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw, FieldTypeString)
			if tt.absent {
				if !v.IsAbsent() {
					t.Errorf("Coerce(nil) = %v, want Absent", v)
				}
				return
			}
			if v.String() != tt.want {
				t.Errorf("Coerce(%v) = %q, want %q", tt.raw, v.String(), tt.want)
			}
		})
	}
}

func TestValueEqualAndContains(t *testing.T) {
	if !String("draft").Equal(String("draft")) {
		t.Error("identical strings must be equal")
	}
	if Number(math.NaN()).Equal(Number(math.NaN())) {
		t.Error("NaN sentinel must not equal itself")
	}
	if !Date("1894-07-02").Equal(String("1894-07-02")) {
		t.Error("date and string with equal text must be interchangeable")
	}
	seq := Seq([]Value{String("gothic"), String("horror")})
	if !seq.Contains(String("horror")) {
		t.Error("sequence must contain its element")
	}
	if seq.Contains(String("romance")) {
		t.Error("sequence must not contain a missing element")
	}
	if Absent().Contains(String("x")) {
		t.Error("absent must not contain a non-absent value")
	}
}

func TestValueStringRendering(t *testing.T) {
	if got := Number(1928).String(); got != "1928" {
		t.Errorf("Number(1928).String() = %q", got)
	}
	if got := Number(math.NaN()).String(); got != "" {
		t.Errorf("NaN String() = %q, want empty", got)
	}
	if got := Seq([]Value{String("a"), String("b")}).String(); got != "a, b" {
		t.Errorf("Seq String() = %q", got)
	}
	if got := Absent().String(); got != "" {
		t.Errorf("Absent String() = %q, want empty", got)
	}
}
