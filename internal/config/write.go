package config

import (
	"sort"
	"strings"
)

// KeyOrder supplies the catalog-declared emission order for the writer.
// Keys and sections unknown to the catalog fall back to lexicographic
// order after the known ones. The parameter schema implements this.
type KeyOrder interface {
	// TopLevelKeys lists unsectioned parameter names in catalog order.
	TopLevelKeys() []string
	// Sections lists section names in catalog order, excluding "".
	Sections() []string
	// SectionKeys lists the named section's parameter names in catalog order.
	SectionKeys(section string) []string
}

// noOrder is the fallback when no catalog is wired in: pure lexicographic.
type noOrder struct{}

func (noOrder) TopLevelKeys() []string      { return nil }
func (noOrder) Sections() []string          { return nil }
func (noOrder) SectionKeys(string) []string { return nil }

// Encode serializes a layer deterministically: the comment header, then
// top-level scalars, then each section under its [name] header. Within
// every group, catalog-declared keys come first in declaration order and
// stragglers follow lexicographically. The ordering is cosmetic but stable,
// so diffs between successive overrides stay minimal.
func Encode(layer Layer, order KeyOrder, header []string) []byte {
	if order == nil {
		order = noOrder{}
	}
	var b strings.Builder
	for _, h := range header {
		b.WriteString("# ")
		b.WriteString(h)
		b.WriteString("\n")
	}
	if len(header) > 0 {
		b.WriteString("\n")
	}

	scalars, sections := splitLayer(layer)

	if len(scalars) > 0 {
		for _, key := range orderedKeys(scalars, order.TopLevelKeys()) {
			writeAssign(&b, key, layer[key])
		}
		b.WriteString("\n")
	}

	for _, name := range orderedKeys(sections, order.Sections()) {
		sec := layer[name].AsSection()
		if len(sec) == 0 {
			continue
		}
		b.WriteString("[")
		b.WriteString(name)
		b.WriteString("]\n")
		secSet := make(map[string]bool, len(sec))
		for k := range sec {
			secSet[k] = true
		}
		for _, key := range orderedKeys(secSet, order.SectionKeys(name)) {
			writeAssign(&b, key, sec[key])
		}
		b.WriteString("\n")
	}

	out := strings.TrimRight(b.String(), "\n") + "\n"
	return []byte(out)
}

func writeAssign(b *strings.Builder, key string, v Value) {
	b.WriteString(key)
	b.WriteString(" = ")
	b.WriteString(v.Encode())
	b.WriteString("\n")
}

// splitLayer partitions keys into scalar and section sets.
func splitLayer(layer Layer) (scalars, sections map[string]bool) {
	scalars = map[string]bool{}
	sections = map[string]bool{}
	for k, v := range layer {
		if v.IsSection() {
			sections[k] = true
		} else {
			scalars[k] = true
		}
	}
	return scalars, sections
}

// orderedKeys returns the members of present, first in declared order,
// then any leftovers sorted lexicographically.
func orderedKeys(present map[string]bool, declared []string) []string {
	out := make([]string, 0, len(present))
	seen := make(map[string]bool, len(present))
	for _, k := range declared {
		if present[k] && !seen[k] {
			out = append(out, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(present))
	for k := range present {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
