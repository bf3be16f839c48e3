// Package report renders a log summary as a human-readable block, an
// append-only CSV row, or a full JSON document, together with the run
// metadata inferred from the base-config filename.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Delfictus/Prism-Tuning/internal/wrlog"
)

// Meta is the run metadata attached to every exported summary.
type Meta struct {
	LogFile    string  `json:"log_file"`
	BaseConfig string  `json:"base_config"`
	Seed       *int    `json:"seed"`
	Profile    *string `json:"profile"`
}

var reSeed = regexp.MustCompile(`seed_(\d+)`)

// NewMeta infers seed and profile from the base-config filename: an
// integer after the literal seed_ marker, and profile "aggr" when the
// basename contains that substring, "regular" otherwise. An empty
// base-config path leaves both unknown.
func NewMeta(logFile, baseConfig string) Meta {
	m := Meta{LogFile: logFile, BaseConfig: baseConfig}
	if baseConfig == "" {
		return m
	}
	base := filepath.Base(baseConfig)
	if sm := reSeed.FindStringSubmatch(base); sm != nil {
		if n, err := strconv.Atoi(sm[1]); err == nil {
			m.Seed = &n
		}
	}
	profile := "regular"
	if strings.Contains(base, "aggr") {
		profile = "aggr"
	}
	m.Profile = &profile
	return m
}

// Header is the fixed CSV column schema, in order.
var Header = []string{
	"seed", "profile", "base_config", "log_file",
	"first_colors", "first_time_s", "best_colors", "best_time_s",
	"improve_events", "last_improve_time_s", "tda", "tda_gpu",
	"interim_count", "final_colors", "final_conflicts", "final_time_s",
}

// ToCSVRow maps a summary onto the column schema. Unknown values become
// empty cells, never a null word.
func ToCSVRow(sum *wrlog.Summary, meta Meta) []string {
	row := make([]string, 0, len(Header))

	row = append(row, intCell(meta.Seed), strCell(meta.Profile), meta.BaseConfig, meta.LogFile)

	if f := sum.FirstInterim; f != nil {
		row = append(row, strconv.Itoa(f.Colors), ftoa(f.TimeS))
	} else {
		row = append(row, "", "")
	}
	if b := sum.Best; b != nil {
		row = append(row, strconv.Itoa(b.Colors), floatCell(b.TimeS))
	} else {
		row = append(row, "", "")
	}

	row = append(row,
		strconv.Itoa(sum.ImproveCount),
		floatCell(sum.LastImproveTime),
		boolCell(sum.TDA),
		boolCell(sum.TDAGPU),
		strconv.Itoa(sum.InterimCount),
	)

	if f := sum.Final; f != nil {
		row = append(row, strconv.Itoa(f.Colors), strconv.Itoa(f.Conflicts), ftoa(f.TimeS))
	} else {
		row = append(row, "", "", "")
	}
	return row
}

// AppendCSV appends one data row, creating parent directories and writing
// the header first when the file is absent or empty. Existing rows are
// never rewritten or reordered.
func AppendCSV(path string, row []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	needHeader := true
	if st, err := os.Stat(path); err == nil && st.Size() > 0 {
		needHeader = false
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(Header); err != nil {
			return err
		}
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// jsonDoc is the on-disk shape of the full dump.
type jsonDoc struct {
	Meta    Meta           `json:"meta"`
	Summary *wrlog.Summary `json:"summary"`
}

// WriteJSON writes the self-contained summary document, overwriting any
// existing file at path.
func WriteJSON(path string, sum *wrlog.Summary, meta Meta) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(jsonDoc{Meta: meta, Summary: sum}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Render produces the deterministic human-readable block. A line is
// omitted entirely when none of its fields is known.
func Render(sum *wrlog.Summary, meta Meta) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== WR Log Summary ===\n")
	fmt.Fprintf(&b, "log: %s\n", meta.LogFile)
	if meta.BaseConfig != "" {
		fmt.Fprintf(&b, "base_config: %s\n", meta.BaseConfig)
	}
	if meta.Seed != nil || meta.Profile != nil {
		seed := "unknown"
		if meta.Seed != nil {
			seed = strconv.Itoa(*meta.Seed)
		}
		profile := "unknown"
		if meta.Profile != nil {
			profile = *meta.Profile
		}
		fmt.Fprintf(&b, "seed: %s | profile: %s\n", seed, profile)
	}
	fmt.Fprintf(&b, "interim_count: %d\n", sum.InterimCount)
	if f := sum.FirstInterim; f != nil {
		fmt.Fprintf(&b, "first_interim: colors=%d time=%ss\n", f.Colors, ftoa(f.TimeS))
	}
	if bst := sum.Best; bst != nil {
		if bst.TimeS != nil {
			fmt.Fprintf(&b, "best: colors=%d time=%ss\n", bst.Colors, ftoa(*bst.TimeS))
		} else {
			fmt.Fprintf(&b, "best: colors=%d\n", bst.Colors)
		}
	}
	if sum.LastImproveTime != nil {
		fmt.Fprintf(&b, "improve_events: %d (last at %ss)\n", sum.ImproveCount, ftoa(*sum.LastImproveTime))
	} else {
		fmt.Fprintf(&b, "improve_events: %d\n", sum.ImproveCount)
	}
	if sum.TDA != nil || sum.TDAGPU != nil {
		fmt.Fprintf(&b, "tda: %s | tda_gpu: %s\n", boolCell(sum.TDA), boolCell(sum.TDAGPU))
	}
	if f := sum.Final; f != nil {
		fmt.Fprintf(&b, "final: colors=%d conflicts=%d time=%ss\n", f.Colors, f.Conflicts, ftoa(f.TimeS))
	}
	return b.String()
}

// ftoa renders a float with an explicit fractional part, matching the
// layer format's lexical convention for reals.
func ftoa(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return ftoa(*v)
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func boolCell(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "true"
	}
	return "false"
}
