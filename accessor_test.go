package bitfield

import (
	"errors"
	"testing"

	bferr "github.com/wippyai/bitfield/errors"
)

func TestMaskCorrectness(t *testing.T) {
	s, err := Compile(Storage8, []FieldSpec{
		{Name: "lo", Offset: 0, Width: 4, Type: U8()},
		{Name: "hi", Offset: 4, Width: 4, Type: U8()},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	enc := NewEncoder(s)

	v, err := enc.SetUint(ValueOf(0), "hi", 0xF)
	if err != nil {
		t.Fatalf("set hi: %v", err)
	}
	if v != ValueOf(0b1111_0000) {
		t.Fatalf("after hi: got %s, want 240", v)
	}

	v, err = enc.SetUint(v, "lo", 0x3)
	if err != nil {
		t.Fatalf("set lo: %v", err)
	}
	if v != ValueOf(0b1111_0011) {
		t.Fatalf("after lo: got %s, want 243", v)
	}
}

func TestRoundTripUnsigned(t *testing.T) {
	s, err := Compile(Storage16, []FieldSpec{
		{Name: "nibble", Offset: 3, Width: 4, Type: U8()},
		{Name: "rest", Offset: 8, Width: 8, Type: U8()},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	enc, dec := NewEncoder(s), NewDecoder(s)

	for want := uint64(0); want < 16; want++ {
		v, err := enc.SetUint(ValueOf(0xFFFF), "nibble", want)
		if err != nil {
			t.Fatalf("set %d: %v", want, err)
		}
		got, err := dec.Uint(v, "nibble")
		if err != nil {
			t.Fatalf("get %d: %v", want, err)
		}
		if got != want {
			t.Errorf("round trip %d: got %d", want, got)
		}
	}
}

func TestRoundTripSigned(t *testing.T) {
	s, err := Compile(Storage32, []FieldSpec{
		{Name: "delta", Offset: 5, Width: 8, Type: S8()},
		{Name: "wide", Offset: 16, Width: 16, Type: S16()},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	enc, dec := NewEncoder(s), NewDecoder(s)

	t.Run("s8", func(t *testing.T) {
		for _, want := range []int64{0, 1, -1, 127, -128, -5} {
			v, err := enc.SetInt(ValueOf(0), "delta", want)
			if err != nil {
				t.Fatalf("set %d: %v", want, err)
			}
			got, err := dec.Int(v, "delta")
			if err != nil {
				t.Fatalf("get %d: %v", want, err)
			}
			if got != want {
				t.Errorf("round trip %d: got %d", want, got)
			}
		}
	})

	t.Run("s16", func(t *testing.T) {
		for _, want := range []int64{0, -1, 32767, -32768, 12345, -12345} {
			v, err := enc.SetInt(ValueOf(0), "wide", want)
			if err != nil {
				t.Fatalf("set %d: %v", want, err)
			}
			got, err := dec.Int(v, "wide")
			if err != nil {
				t.Fatalf("get %d: %v", want, err)
			}
			if got != want {
				t.Errorf("round trip %d: got %d", want, got)
			}
		}
	})

	t.Run("sign_bit_reinterpretation", func(t *testing.T) {
		// 0xFF in the field's bits is -1, not 255.
		v, err := enc.SetInt(ValueOf(0), "delta", -1)
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		d, err := dec.Decode(v, "delta")
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if d.Int != -1 || d.Uint != ValueOf(0xFF) {
			t.Errorf("got int %d, raw %s", d.Int, d.Uint)
		}
	})
}

func TestRoundTrip64And128(t *testing.T) {
	t.Run("full_width_u64", func(t *testing.T) {
		s, err := Compile(Storage64, []FieldSpec{
			{Name: "all", Offset: 0, Width: 64, Type: U64()},
		})
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		enc, dec := NewEncoder(s), NewDecoder(s)

		want := ^uint64(0)
		v, err := enc.SetUint(ValueOf(0), "all", want)
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := dec.Uint(v, "all")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != want {
			t.Errorf("round trip: got %d", got)
		}
	})

	t.Run("u128_field", func(t *testing.T) {
		s, err := Compile(Storage128, []FieldSpec{
			{Name: "all", Offset: 0, Width: 128, Type: U128()},
		})
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		enc, dec := NewEncoder(s), NewDecoder(s)

		want := Value{Hi: 0xDEAD_BEEF, Lo: 0xCAFE_F00D}
		v, err := enc.SetUint128(ValueOf(0), "all", want)
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := dec.Uint128(v, "all")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != want {
			t.Errorf("round trip: got %s", got)
		}
	})

	t.Run("s128_field", func(t *testing.T) {
		s, err := Compile(Storage128, []FieldSpec{
			{Name: "all", Offset: 0, Width: 128, Type: S128()},
		})
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		enc, dec := NewEncoder(s), NewDecoder(s)

		v, err := enc.SetInt(ValueOf(0), "all", -5)
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		d, err := dec.Decode(v, "all")
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		wantPattern := Value{Hi: ^uint64(0), Lo: ^uint64(4)}
		if d.Uint != wantPattern {
			t.Errorf("pattern: got %+v, want %+v", d.Uint, wantPattern)
		}
		if d.Int != -5 {
			t.Errorf("low word: got %d", d.Int)
		}
	})

	t.Run("u128_mid_field", func(t *testing.T) {
		// A 64-bit field straddling the hi/lo boundary.
		s, err := Compile(Storage128, []FieldSpec{
			{Name: "mid", Offset: 32, Width: 64, Type: U64()},
		})
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		enc, dec := NewEncoder(s), NewDecoder(s)

		want := uint64(0x0123_4567_89AB_CDEF)
		v, err := enc.SetUint(ValueOf(0), "mid", want)
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := dec.Uint(v, "mid")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != want {
			t.Errorf("round trip: got %#x", got)
		}
	})
}

func TestNonInterference(t *testing.T) {
	s := vgaSchema(t)
	enc, dec := NewEncoder(s), NewDecoder(s)

	v, err := enc.SetEnum(ValueOf(0), "background", "red")
	if err != nil {
		t.Fatalf("set background: %v", err)
	}
	v, err = enc.SetBool(v, "blink", true)
	if err != nil {
		t.Fatalf("set blink: %v", err)
	}

	before := make(map[string]Decoded)
	for _, f := range s.Fields() {
		d, _ := dec.Decode(v, f.Name)
		before[f.Name] = d
	}

	v2, err := enc.SetEnum(v, "foreground", "cyan")
	if err != nil {
		t.Fatalf("set foreground: %v", err)
	}

	for _, f := range s.Fields() {
		if f.Name == "foreground" {
			continue
		}
		after, _ := dec.Decode(v2, f.Name)
		prev := before[f.Name]
		if after.Bool != prev.Bool || after.Uint != prev.Uint || after.Variant != prev.Variant {
			t.Errorf("field %s changed: %+v -> %+v", f.Name, prev, after)
		}
	}
}

func TestOverlapAliasing(t *testing.T) {
	s, err := Compile(Storage32, []FieldSpec{
		{Name: "a", Offset: 30, Width: 1, Type: Bool(), Overlaps: []string{"b"}},
		{Name: "b", Offset: 30, Width: 1, Type: Bool(), Overlaps: []string{"a"}},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	enc, dec := NewEncoder(s), NewDecoder(s)

	// Both fields alias bit 30; the last encode wins for both.
	v, _ := enc.SetBool(ValueOf(0), "a", true)
	aSet, _ := dec.Bool(v, "a")
	bSet, _ := dec.Bool(v, "b")
	if !aSet || !bSet {
		t.Errorf("after set a: a=%v b=%v", aSet, bSet)
	}
	if v != ValueOf(1<<30) {
		t.Errorf("storage: got %s", v)
	}

	v, _ = enc.SetBool(v, "b", false)
	aSet, _ = dec.Bool(v, "a")
	if aSet {
		t.Error("clearing b left a set")
	}
}

func TestEnumDecode(t *testing.T) {
	// 3-bit field with only 5 of 8 raw values mapped.
	mode := EnumOf("mode", 3, V("a", 0), V("b", 1), V("c", 2), V("d", 3), V("e", 4))
	s, err := Compile(Storage8, []FieldSpec{
		{Name: "mode", Offset: 2, Width: 3, Type: mode},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	enc, dec := NewEncoder(s), NewDecoder(s)

	t.Run("recognized", func(t *testing.T) {
		v, err := enc.SetEnum(ValueOf(0), "mode", "d")
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		ev, err := dec.Enum(v, "mode")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !ev.Known || ev.Name != "d" || ev.Raw != 3 {
			t.Errorf("got %+v", ev)
		}
	})

	t.Run("unrecognized_is_not_an_error", func(t *testing.T) {
		v, err := enc.SetEnumRaw(ValueOf(0), "mode", 6)
		if err != nil {
			t.Fatalf("set raw: %v", err)
		}
		ev, err := dec.Enum(v, "mode")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if ev.Known || ev.Raw != 6 {
			t.Errorf("got %+v", ev)
		}

		d, err := dec.Decode(v, "mode")
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if d.Known || d.Uint != ValueOf(6) {
			t.Errorf("decoded: %+v", d)
		}
	})

	t.Run("unknown_variant_name", func(t *testing.T) {
		_, err := enc.SetEnum(ValueOf(0), "mode", "warp")
		var e *bferr.Error
		if !errors.As(err, &e) || e.Kind != bferr.KindUnknownVariant {
			t.Errorf("got %v", err)
		}
	})
}

func TestValueMasking(t *testing.T) {
	s, err := Compile(Storage8, []FieldSpec{
		{Name: "lo", Offset: 0, Width: 4, Type: U8()},
		{Name: "hi", Offset: 4, Width: 4, Type: U8()},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	enc, dec := NewEncoder(s), NewDecoder(s)

	// Bits of the new value beyond the field width never leak into
	// neighboring bits.
	v, err := enc.SetUint(ValueOf(0), "lo", 0x1F)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ := dec.Uint(v, "lo")
	if got != 0xF {
		t.Errorf("lo: got %#x", got)
	}
	hi, _ := dec.Uint(v, "hi")
	if hi != 0 {
		t.Errorf("hi leaked: %#x", hi)
	}
}

func TestAccessorErrors(t *testing.T) {
	s := vgaSchema(t)
	enc, dec := NewEncoder(s), NewDecoder(s)

	t.Run("decode_unknown_field", func(t *testing.T) {
		_, err := dec.Decode(ValueOf(0), "ghost")
		var e *bferr.Error
		if !errors.As(err, &e) || e.Kind != bferr.KindNotFound || e.Phase != bferr.PhaseDecode {
			t.Errorf("got %v", err)
		}
	})

	t.Run("encode_unknown_field", func(t *testing.T) {
		_, err := enc.SetBool(ValueOf(0), "ghost", true)
		var e *bferr.Error
		if !errors.As(err, &e) || e.Kind != bferr.KindNotFound || e.Phase != bferr.PhaseEncode {
			t.Errorf("got %v", err)
		}
	})

	t.Run("typed_accessor_kind_mismatch", func(t *testing.T) {
		_, err := dec.Bool(ValueOf(0), "foreground")
		var e *bferr.Error
		if !errors.As(err, &e) || e.Kind != bferr.KindTypeMismatch {
			t.Errorf("got %v", err)
		}

		_, err = enc.SetUint(ValueOf(0), "blink", 1)
		if !errors.As(err, &e) || e.Kind != bferr.KindTypeMismatch {
			t.Errorf("got %v", err)
		}
	})
}
