package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"int", Int(4096), "4096"},
		{"negative int", Int(-3), "-3"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"float fractional", Float(0.995), "0.995"},
		{"float whole keeps point", Float(48.0), "48.0"},
		{"float small", Float(0.001), "0.001"},
		{"string quoted", String("hop"), `"hop"`},
		{"string escaped", String(`a"b`), `"a\"b"`},
		{"string backslash", String(`C:\runs`), `"C:\\runs"`},
		{"string newline", String("line1\nline2"), `"line1\nline2"`},
		{"string tab", String("a\tb"), `"a\tb"`},
		{"string control", String("a\x01b"), `"a\u0001b"`},
		{"string delete", String("a\x7fb"), `"a\u007Fb"`},
		{"string unicode kept", String("réplica"), `"réplica"`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.v.Encode())
		})
	}
}

func TestValue_EncodeSectionPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { Section(Layer{}).Encode() })
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	require.True(t, Int(5).Equal(Int(5)))
	require.False(t, Int(5).Equal(Float(5)))
	require.True(t, Section(Layer{"a": Int(1)}).Equal(Section(Layer{"a": Int(1)})))
	require.False(t, Section(Layer{"a": Int(1)}).Equal(Section(Layer{"a": Int(2)})))
}
