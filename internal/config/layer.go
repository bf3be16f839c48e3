package config

// Layer is one configuration tree: top-level scalars plus one level of
// named sections. Two layers exist at runtime, the read-only base and the
// persisted override; their deep merge is the active configuration.
type Layer map[string]Value

// Edit is one batch of parameter assignments targeting a single section.
// Section "" targets the top level.
type Edit struct {
	Section string
	Params  map[string]Value
}

// Clone returns a deep copy of the layer.
func (l Layer) Clone() Layer {
	out := make(Layer, len(l))
	for k, v := range l {
		out[k] = v.clone()
	}
	return out
}

// Merge deep-merges over into the receiver. Section values merge key by
// key; everything else replaces. Keys absent from over are untouched; keys
// absent from the receiver are added. The operation is idempotent and
// last-write-wins on key collisions across successive calls.
func (l Layer) Merge(over Layer) {
	for k, v := range over {
		if v.IsSection() {
			if cur, ok := l[k]; ok && cur.IsSection() {
				cur.AsSection().Merge(v.AsSection())
				continue
			}
			l[k] = v.clone()
			continue
		}
		l[k] = v
	}
}

// Apply shallow-merges each edit batch into the layer in order, creating
// target sections as needed. A later batch wins over an earlier one for
// the same (section, key).
func (l Layer) Apply(edits []Edit) {
	for _, e := range edits {
		target := l
		if e.Section != "" {
			cur, ok := l[e.Section]
			if !ok || !cur.IsSection() {
				sec := Layer{}
				l[e.Section] = Section(sec)
				target = sec
			} else {
				target = cur.AsSection()
			}
		}
		for k, v := range e.Params {
			target[k] = v.clone()
		}
	}
}

// Get looks up a key inside the named section, or at the top level when
// section is empty.
func (l Layer) Get(section, key string) (Value, bool) {
	if section == "" {
		v, ok := l[key]
		return v, ok
	}
	sec, ok := l[section]
	if !ok || !sec.IsSection() {
		return Value{}, false
	}
	v, ok := sec.AsSection()[key]
	return v, ok
}

// Equal reports deep equality between two layers.
func (l Layer) Equal(o Layer) bool {
	if len(l) != len(o) {
		return false
	}
	for k, v := range l {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
