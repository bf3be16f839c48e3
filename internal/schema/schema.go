// Package schema holds the static catalog of tunable solver parameters.
// The catalog ships as an embedded YAML document and is decoded once into
// an immutable Schema; nothing mutates it after startup. It also supplies
// the key emission order the config writer follows.
package schema

import (
	_ "embed"
	"fmt"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Delfictus/Prism-Tuning/internal/config"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Type is the declared primitive type of a parameter.
type Type string

const (
	TypeInt   Type = "int"
	TypeFloat Type = "float"
	TypeBool  Type = "bool"
	TypeEnum  Type = "enum"
)

// Param describes one tunable parameter. (Section, Name) is unique across
// the catalog; Category is display-only grouping.
type Param struct {
	Category string
	Section  string
	Name     string
	Type     Type
	Default  config.Value
	Choices  []string
	Desc     string
	Hint     string
}

// Category is a display group of parameters sharing one serialization
// section.
type Category struct {
	Name    string
	Section string
	Params  []Param
}

// Schema is the immutable parameter catalog.
type Schema struct {
	categories []Category
	sections   []string
	keyOrder   map[string][]string
	lookup     map[[2]string]*Param
}

type rawCatalog struct {
	Categories []struct {
		Name    string     `yaml:"name"`
		Section string     `yaml:"section"`
		Params  []rawParam `yaml:"params"`
	} `yaml:"categories"`
}

type rawParam struct {
	Name    string   `yaml:"name"`
	Type    Type     `yaml:"type"`
	Default any      `yaml:"default"`
	Choices []string `yaml:"choices"`
	Desc    string   `yaml:"desc"`
	Hint    string   `yaml:"hint"`
}

// Load decodes and validates a catalog document.
func Load(data []byte) (*Schema, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: decode catalog: %w", err)
	}
	s := &Schema{
		keyOrder: map[string][]string{},
		lookup:   map[[2]string]*Param{},
	}
	seenSection := map[string]bool{}
	for _, rc := range raw.Categories {
		cat := Category{
			Name:    rc.Name,
			Section: rc.Section,
			Params:  make([]Param, 0, len(rc.Params)),
		}
		for _, rp := range rc.Params {
			def, err := defaultValue(rp)
			if err != nil {
				return nil, fmt.Errorf("schema: %s.%s: %w", rc.Section, rp.Name, err)
			}
			cat.Params = append(cat.Params, Param{
				Category: rc.Name,
				Section:  rc.Section,
				Name:     rp.Name,
				Type:     rp.Type,
				Default:  def,
				Choices:  rp.Choices,
				Desc:     rp.Desc,
				Hint:     rp.Hint,
			})
		}
		// Index only after the slice is final; pointers must stay valid.
		for i := range cat.Params {
			p := &cat.Params[i]
			key := [2]string{p.Section, p.Name}
			if _, dup := s.lookup[key]; dup {
				return nil, fmt.Errorf("schema: duplicate parameter %s.%s", p.Section, p.Name)
			}
			s.lookup[key] = p
			s.keyOrder[p.Section] = append(s.keyOrder[p.Section], p.Name)
		}
		s.categories = append(s.categories, cat)
		if rc.Section != "" && !seenSection[rc.Section] {
			seenSection[rc.Section] = true
			s.sections = append(s.sections, rc.Section)
		}
	}
	return s, nil
}

var defaultSchema = sync.OnceValue(func() *Schema {
	s, err := Load(catalogYAML)
	if err != nil {
		panic(err)
	}
	return s
})

// Default returns the process-wide catalog built from the embedded
// document. A malformed embed is a programmer error and panics.
func Default() *Schema { return defaultSchema() }

// Categories returns the catalog's display groups in declaration order.
func (s *Schema) Categories() []Category { return s.categories }

// Lookup finds a parameter by its (section, name) pair.
func (s *Schema) Lookup(section, name string) (*Param, bool) {
	p, ok := s.lookup[[2]string{section, name}]
	return p, ok
}

// TopLevelKeys implements config.KeyOrder.
func (s *Schema) TopLevelKeys() []string { return s.keyOrder[""] }

// Sections implements config.KeyOrder.
func (s *Schema) Sections() []string { return s.sections }

// SectionKeys implements config.KeyOrder.
func (s *Schema) SectionKeys(section string) []string { return s.keyOrder[section] }

// Coerce converts raw text into a typed value for the named parameter.
// Unknown parameters fall back to lexical typing so keys outside the
// catalog survive editing, the way the original tool preserved them.
func (s *Schema) Coerce(section, name, raw string) (config.Value, error) {
	p, ok := s.Lookup(section, name)
	if !ok {
		return Lexical(raw), nil
	}
	switch p.Type {
	case TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return config.Value{}, fmt.Errorf("%s.%s: %q is not an integer", section, name, raw)
		}
		return config.Int(n), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return config.Value{}, fmt.Errorf("%s.%s: %q is not a number", section, name, raw)
		}
		return config.Float(f), nil
	case TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return config.Value{}, fmt.Errorf("%s.%s: %q is not true/false", section, name, raw)
		}
		return config.Bool(b), nil
	case TypeEnum:
		for _, c := range p.Choices {
			if raw == c {
				return config.String(raw), nil
			}
		}
		return config.Value{}, fmt.Errorf("%s.%s: %q is not one of %v", section, name, raw, p.Choices)
	default:
		return config.Value{}, fmt.Errorf("%s.%s: unknown type %q", section, name, p.Type)
	}
}

// Lexical types raw text by its form: bool literal, then integer, then
// float, else string.
func Lexical(raw string) config.Value {
	if raw == "true" {
		return config.Bool(true)
	}
	if raw == "false" {
		return config.Bool(false)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return config.Int(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return config.Float(f)
	}
	return config.String(raw)
}

// defaultValue converts the YAML default through the declared type.
func defaultValue(rp rawParam) (config.Value, error) {
	switch rp.Type {
	case TypeInt:
		n, ok := rp.Default.(int)
		if !ok {
			return config.Value{}, fmt.Errorf("default %v is not an int", rp.Default)
		}
		return config.Int(int64(n)), nil
	case TypeFloat:
		switch d := rp.Default.(type) {
		case float64:
			return config.Float(d), nil
		case int:
			return config.Float(float64(d)), nil
		}
		return config.Value{}, fmt.Errorf("default %v is not a float", rp.Default)
	case TypeBool:
		b, ok := rp.Default.(bool)
		if !ok {
			return config.Value{}, fmt.Errorf("default %v is not a bool", rp.Default)
		}
		return config.Bool(b), nil
	case TypeEnum:
		str, ok := rp.Default.(string)
		if !ok {
			return config.Value{}, fmt.Errorf("default %v is not a string", rp.Default)
		}
		if len(rp.Choices) == 0 {
			return config.Value{}, fmt.Errorf("enum has no choices")
		}
		for _, c := range rp.Choices {
			if str == c {
				return config.String(str), nil
			}
		}
		return config.Value{}, fmt.Errorf("default %q is not one of %v", str, rp.Choices)
	default:
		return config.Value{}, fmt.Errorf("unknown type %q", rp.Type)
	}
}
