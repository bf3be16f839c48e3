package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Parse decodes layered config text into a Layer. The accepted grammar is
// the TOML subset the writer emits: the four scalar forms plus one level of
// [section] headers. Anything else a TOML document can hold (arrays,
// datetimes, tables below one level) is rejected, matching the writer.
func Parse(data []byte) (Layer, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	layer := make(Layer, len(raw))
	for key, v := range raw {
		val, err := fromTOML(key, v, true)
		if err != nil {
			return nil, err
		}
		layer[key] = val
	}
	return layer, nil
}

// fromTOML converts one decoded TOML value into the tagged union.
// topLevel gates whether a table is still acceptable.
func fromTOML(key string, v any, topLevel bool) (Value, error) {
	switch t := v.(type) {
	case int64:
		return Int(t), nil
	case float64:
		return Float(t), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case map[string]any:
		if !topLevel {
			return Value{}, fmt.Errorf("key %q: sections nest at most one level", key)
		}
		sec := make(Layer, len(t))
		for k, sv := range t {
			val, err := fromTOML(key+"."+k, sv, false)
			if err != nil {
				return Value{}, err
			}
			sec[k] = val
		}
		return Section(sec), nil
	default:
		return Value{}, fmt.Errorf("key %q: unsupported value of type %T", key, v)
	}
}
