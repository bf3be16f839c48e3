package wrlog

// InterimEvent is an in-progress candidate solution reported by the solver.
type InterimEvent struct {
	Colors int     `json:"colors"`
	TimeS  float64 `json:"time_s"`
	LineNo int     `json:"line_no"`
}

// ImproveEvent is a reported transition between candidate qualities. Old,
// New and TimeS are nil when the matched line did not yield a parsable
// value for them.
type ImproveEvent struct {
	Old    *int     `json:"old"`
	New    *int     `json:"new"`
	TimeS  *float64 `json:"time_s"`
	LineNo int      `json:"line_no"`
	Text   string   `json:"text"`
}

// Genuine reports whether the event records a strict quality improvement.
func (e ImproveEvent) Genuine() bool {
	return e.Old != nil && e.New != nil && *e.New < *e.Old
}

// FinalEvent is the solver's final result line.
type FinalEvent struct {
	Colors    int     `json:"colors"`
	Conflicts int     `json:"conflicts"`
	TimeS     float64 `json:"time_s"`
	LineNo    int     `json:"line_no"`
}

// Best is the minimal color count observed across interim and improve
// events, with the time it was first reached. TimeS is nil when the best
// came from an improve line with no recoverable time.
type Best struct {
	Colors int      `json:"colors"`
	TimeS  *float64 `json:"time_s"`
}

// Summary is the fixed-shape record produced by one pass over a log.
// Pointer fields are nil when the log never produced the value; they
// serialize as JSON null and as empty CSV cells.
type Summary struct {
	FirstInterim    *InterimEvent  `json:"first_interim"`
	Best            *Best          `json:"best"`
	InterimCount    int            `json:"interim_count"`
	ImproveEvents   []ImproveEvent `json:"improve_events"`
	ImproveCount    int            `json:"improve_count"`
	LastImproveTime *float64       `json:"last_improve_time_s"`
	Final           *FinalEvent    `json:"final"`
	TDA             *bool          `json:"tda"`
	TDAGPU          *bool          `json:"tda_gpu"`
}
