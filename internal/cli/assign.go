package cli

import (
	"fmt"
	"strings"

	"github.com/Delfictus/Prism-Tuning/internal/config"
	"github.com/Delfictus/Prism-Tuning/internal/schema"
)

// parseAssignments turns section.key=value tokens into ordered edit
// batches, one per token so later assignments win over earlier ones for
// the same key. A token without a dot targets the top level. Values are
// coerced through the catalog's declared type; keys outside the catalog
// get lexical typing.
func parseAssignments(sch *schema.Schema, args []string) ([]config.Edit, error) {
	edits := make([]config.Edit, 0, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected section.key=value, got %q", arg)
		}
		section, name := "", key
		if s, n, dotted := strings.Cut(key, "."); dotted {
			section, name = s, n
		}
		v, err := sch.Coerce(section, name, raw)
		if err != nil {
			return nil, err
		}
		edits = append(edits, config.Edit{
			Section: section,
			Params:  map[string]config.Value{name: v},
		})
	}
	return edits, nil
}
