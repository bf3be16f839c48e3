package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// catalogOrder is a minimal KeyOrder for writer tests.
type catalogOrder struct{}

func (catalogOrder) TopLevelKeys() []string { return []string{"target_chromatic", "seed", "use_tda"} }
func (catalogOrder) Sections() []string     { return []string{"gpu", "thermo"} }
func (catalogOrder) SectionKeys(section string) []string {
	switch section {
	case "gpu":
		return []string{"device_id", "streams", "batch_size"}
	case "thermo":
		return []string{"replicas", "num_temps"}
	default:
		return nil
	}
}

func TestEncode_CatalogOrderThenLexicographic(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	layer := Layer{
		"zeta": String("extra"),
		"seed": Int(1337),
		"gpu": Section(Layer{
			"batch_size": Int(4096),
			"aux_flag":   Bool(true),
			"device_id":  Int(1),
		}),
		"aaa_custom": Section(Layer{
			"knob": Float(0.5),
		}),
	}

	// --- Act ---
	got := string(Encode(layer, catalogOrder{}, []string{"Test Header"}))

	// --- Assert ---
	want := strings.Join([]string{
		"# Test Header",
		"",
		"seed = 1337",
		`zeta = "extra"`,
		"",
		"[gpu]",
		"device_id = 1",
		"batch_size = 4096",
		"aux_flag = true",
		"",
		"[aaa_custom]",
		"knob = 0.5",
		"",
	}, "\n")
	require.Equal(t, want, got, cmp.Diff(want, got))
}

func TestEncode_StableAcrossWrites(t *testing.T) {
	t.Parallel()

	layer := Layer{
		"seed":    Int(9001),
		"use_tda": Bool(false),
		"thermo":  Section(Layer{"num_temps": Int(48), "replicas": Int(48)}),
	}

	first := Encode(layer, catalogOrder{}, nil)
	for i := 0; i < 16; i++ {
		require.Equal(t, string(first), string(Encode(layer, catalogOrder{}, nil)))
	}
}

func TestEncode_RoundTripFixedPoint(t *testing.T) {
	t.Parallel()

	// Serialization is a fixed point after one pass: write, read, write
	// again, and the bytes match.
	layer := Layer{
		"max_runtime_hours": Float(72.0),
		"deterministic":     Bool(true),
		"note":              String("wr attempt"),
		"gpu":               Section(Layer{"batch_size": Int(4096), "streams": Int(4)}),
	}

	first := Encode(layer, catalogOrder{}, []string{"hdr"})
	parsed, err := Parse(first)
	require.NoError(t, err)
	second := Encode(parsed, catalogOrder{}, []string{"hdr"})

	require.Equal(t, string(first), string(second))
}

func TestEncode_EmptyLayer(t *testing.T) {
	t.Parallel()
	got := string(Encode(Layer{}, nil, []string{"only header"}))
	require.Equal(t, "# only header\n", got)
}
