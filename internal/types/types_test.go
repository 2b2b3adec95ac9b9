package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinder/internal/token"
)

func u(size int32) *Integer { return &Integer{Signed: false, Size: size} }
func i(size int32) *Integer { return &Integer{Signed: true, Size: size} }
func f(size int32) *Float   { return &Float{Size: size} }

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same integer", u(4), u(4), true},
		{"signedness differs", u(4), i(4), false},
		{"size differs", i(4), i(8), false},
		{"float sizes", f(4), f(4), true},
		{"float vs integer", f(8), u(8), false},
		{"bool", &Boolean{}, &Boolean{}, true},
		{"string", &StringLiteral{}, &StringLiteral{}, true},
		{"bool vs string", &Boolean{}, &StringLiteral{}, false},
		{"pointer targets equal", &Pointer{Target: i(4)}, &Pointer{Target: i(4)}, true},
		{"pointer targets differ", &Pointer{Target: i(4)}, &Pointer{Target: u(4)}, false},
		{"array length ignored", &Array{Target: u(4), Length: 3}, &Array{Target: u(4), Length: 7}, true},
		{"array target differs", &Array{Target: u(4), Length: 3}, &Array{Target: i(4), Length: 3}, false},
		{"array vs pointer", &Array{Target: u(4), Length: 3}, &Pointer{Target: u(4)}, false},
		{"named", &Named{Name: "Point"}, &Named{Name: "Point"}, true},
		{"named differs", &Named{Name: "Point"}, &Named{Name: "Line"}, false},
		{"procedure", &Procedure{}, &Procedure{}, true},
		{"nil both", nil, nil, true},
		{"nil one", nil, u(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "equality must be symmetric")
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := &Pointer{Target: &Array{Target: i(2), Length: 5}}
	cp := orig.Clone().(*Pointer)

	require.True(t, Equal(orig, cp))
	assert.NotSame(t, orig, cp)
	assert.NotSame(t, orig.Target, cp.Target)

	cp.Target.(*Array).Target.(*Integer).Size = 8
	assert.Equal(t, int32(2), orig.Target.(*Array).Target.(*Integer).Size)

	assert.Nil(t, Clone(nil))
}

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want Type
	}{
		{"unsigned with unsigned", u(4), u(2), u(4)},
		{"unsigned with signed", u(4), i(8), i(8)},
		{"signed with unsigned", i(1), u(8), i(8)},
		{"signed with signed", i(2), i(4), i(4)},
		{"integer with float", u(4), f(4), f(8)},
		{"float with integer", f(4), i(1), f(8)},
		{"float with float", f(4), f(8), f(8)},
		{"float32 with float32", f(4), f(4), f(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coalesce(tt.a, tt.b)
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCoalesceIncompatible(t *testing.T) {
	others := []Type{
		&Boolean{},
		&StringLiteral{},
		&Pointer{Target: u(1)},
		&Array{Target: u(1), Length: 2},
		&Named{Name: "T"},
		&Procedure{},
	}
	numeric := []Type{u(4), i(8), f(4)}

	for _, o := range others {
		for _, n := range numeric {
			_, err := Coalesce(o, n)
			assert.ErrorIs(t, err, ErrIncompatible, "%s with %s", o, n)
			_, err = Coalesce(n, o)
			assert.ErrorIs(t, err, ErrIncompatible, "%s with %s", n, o)
		}
		_, err := Coalesce(o, o)
		assert.ErrorIs(t, err, ErrIncompatible, "%s with itself", o)
	}

	_, err := Coalesce(&Boolean{}, i(4))
	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "incompatible types 'bool' and 'i32'", typeErr.Error())
}

func TestString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{i(4), "i32"},
		{u(8), "u64"},
		{u(1), "u8"},
		{i(3), "int<true,3>"},
		{f(4), "f32"},
		{f(8), "f64"},
		{f(2), "float<2>"},
		{&Boolean{}, "bool"},
		{&StringLiteral{}, "string"},
		{&Pointer{Target: i(2)}, "*i16"},
		{&Array{Target: &Pointer{Target: u(1)}, Length: 4}, "*u8[4]"},
		{&Named{Name: "Point"}, "Point"},
		{&Procedure{}, "proc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

func TestFromKeyword(t *testing.T) {
	want := map[token.Symbol]Type{
		token.KwU8:  u(1),
		token.KwU16: u(2),
		token.KwU32: u(4),
		token.KwU64: u(8),
		token.KwI8:  i(1),
		token.KwI16: i(2),
		token.KwI32: i(4),
		token.KwI64: i(8),
		token.KwF32: f(4),
		token.KwF64: f(8),
	}
	for sym, expected := range want {
		got, ok := FromKeyword(sym)
		require.True(t, ok, sym.String())
		assert.True(t, Equal(expected, got), sym.String())
		assert.Equal(t, sym.String(), got.String())
	}

	_, ok := FromKeyword(token.KwLet)
	assert.False(t, ok)
}

func TestLiteralTypes(t *testing.T) {
	assert.True(t, Equal(u(8), IntegerLiteral()))
	assert.True(t, Equal(f(8), FloatLiteral()))
	assert.NotSame(t, IntegerLiteral(), IntegerLiteral())
	assert.True(t, IsNumeric(IntegerLiteral()))
	assert.False(t, IsNumeric(Bool()))
}
