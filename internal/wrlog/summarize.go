// Package wrlog turns the solver's free-text progress log into a
// structured summary. The scan is a single forward pass; every line is
// tested against each pattern independently because one line may
// legitimately match several (an interim line also carries a bare time,
// for example). No combined grammar, no per-line state machine.
package wrlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	reTime    = regexp.MustCompile(`(?i)time\s*=\s*([\d.]+)\s*s`)
	reInterim = regexp.MustCompile(`(?i)INTERIM RESULT:\s*colors\s*=\s*(\d+)\s*time\s*=\s*([\d.]+)\s*s`)
	reImprove = regexp.MustCompile(`\[IMPROVE\].*?(\S+)\s*(?:→|->)\s*(\d+)`)
	reFinal   = regexp.MustCompile(`(?i)FINAL RESULT:\s*colors\s*=\s*(\d+).*?conflicts\s*=\s*(\d+).*?time\s*=\s*([\d.]+)\s*s`)
	reTDA     = regexp.MustCompile(`(?i)\bTDA\s*=\s*(true|false)\b`)
	reTDAGPU  = regexp.MustCompile(`(?i)\bTDA\s*GPU\s*=\s*(true|false)\b`)
	reAccel   = regexp.MustCompile(`(?i)GPU-accelerated TDA`)
)

// ReadError reports a log file that could not be opened or read. The
// standalone summarizer maps it to exit code 2.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("wrlog: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// SummarizeFile opens the log and summarizes it. A missing or unreadable
// file is a *ReadError; no partial summary is produced.
func SummarizeFile(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()
	sum, err := Summarize(f)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return sum, nil
}

// Summarize scans the log top to bottom exactly once and folds every
// matched event into the summary. Lines matching no pattern are skipped;
// a matched group that fails to parse leaves its field absent rather than
// failing the line.
func Summarize(r io.Reader) (*Summary, error) {
	sum := &Summary{}
	var lastTimeSeen *float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	// Line numbers are zero-based, matching the positions the JSON dump
	// reports.
	lineNo := -1
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		// Bare time marks backfill improve events with no time of their own.
		if m := reTime.FindStringSubmatch(line); m != nil {
			if t, err := strconv.ParseFloat(m[1], 64); err == nil {
				lastTimeSeen = &t
			}
		}

		if m := reInterim.FindStringSubmatch(line); m != nil {
			colors, cErr := strconv.Atoi(m[1])
			t, tErr := strconv.ParseFloat(m[2], 64)
			if cErr == nil && tErr == nil {
				sum.InterimCount++
				tv := t
				lastTimeSeen = &tv
				ev := InterimEvent{Colors: colors, TimeS: t, LineNo: lineNo}
				if sum.FirstInterim == nil {
					first := ev
					sum.FirstInterim = &first
				}
				// Strict less-than: ties keep the earliest-seen best.
				if sum.Best == nil || colors < sum.Best.Colors {
					bt := t
					sum.Best = &Best{Colors: colors, TimeS: &bt}
				}
			}
		}

		if m := reImprove.FindStringSubmatch(line); m != nil {
			ev := ImproveEvent{
				Old:    atoiPtr(m[1]),
				New:    atoiPtr(m[2]),
				LineNo: lineNo,
				Text:   strings.TrimSpace(line),
			}
			if tm := reTime.FindStringSubmatch(line); tm != nil {
				if t, err := strconv.ParseFloat(tm[1], 64); err == nil {
					tv := t
					ev.TimeS = &tv
				}
			}
			if ev.TimeS == nil && lastTimeSeen != nil {
				tv := *lastTimeSeen
				ev.TimeS = &tv
			}
			sum.ImproveEvents = append(sum.ImproveEvents, ev)
			if ev.New != nil && (sum.Best == nil || *ev.New < sum.Best.Colors) {
				sum.Best = &Best{Colors: *ev.New, TimeS: copyFloat(ev.TimeS)}
			}
		}

		if m := reFinal.FindStringSubmatch(line); m != nil {
			colors, cErr := strconv.Atoi(m[1])
			conflicts, fErr := strconv.Atoi(m[2])
			t, tErr := strconv.ParseFloat(m[3], 64)
			// Last full match wins; a match with unparsable groups is
			// ignored and never clears an earlier final.
			if cErr == nil && fErr == nil && tErr == nil {
				sum.Final = &FinalEvent{Colors: colors, Conflicts: conflicts, TimeS: t, LineNo: lineNo}
			}
		}

		if m := reTDA.FindStringSubmatch(line); m != nil {
			v := strings.EqualFold(m[1], "true")
			sum.TDA = &v
		}
		if m := reTDAGPU.FindStringSubmatch(line); m != nil {
			v := strings.EqualFold(m[1], "true")
			sum.TDAGPU = &v
		}
		// The accelerated-TDA marker outranks any plain flag on the same
		// line, so it is tested last; plain markers on later lines still
		// apply normally.
		if reAccel.MatchString(line) {
			t1, t2 := true, true
			sum.TDA = &t1
			sum.TDAGPU = &t2
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for _, ev := range sum.ImproveEvents {
		if ev.Genuine() {
			sum.ImproveCount++
		}
	}
	for i := len(sum.ImproveEvents) - 1; i >= 0; i-- {
		if t := sum.ImproveEvents[i].TimeS; t != nil {
			sum.LastImproveTime = copyFloat(t)
			break
		}
	}
	return sum, nil
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
