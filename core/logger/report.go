package logger

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/josephlewis42/vsh/core/parser"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries int        `json:"log_entries"`
	Statements int        `json:"statements"`
	Sessions   StrCounter `json:"sessions"`

	// Names of builtins and programs invoked, including those inside pipes
	// and redirects.
	CommandNames StrCounter   `json:"command_names"`
	ResultKinds  StrCounter   `json:"result_kinds"`
	Errors       *PathCounter `json:"errors"`
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		Errors: NewPathCounter("code", "line"),
	}
}

// Update adds an entry to the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	r.Sessions.Increment(le.SessionID)

	for _, cmd := range parser.ParseLine(le.Line) {
		countCommandNames(&r.CommandNames, cmd)
	}

	for _, res := range le.Results {
		r.Statements++
		r.ResultKinds.Increment(res.Kind)
		if res.Kind == "error" {
			r.Errors.Increment(strconv.Itoa(res.Code), le.Line)
		}
	}
}

func countCommandNames(ctr *StrCounter, cmd parser.Command) {
	switch cmd := cmd.(type) {
	case parser.Builtin:
		ctr.Increment(cmd.Kind.String())
	case parser.External:
		ctr.Increment(cmd.Name.Value)
	case parser.Pipe:
		countCommandNames(ctr, cmd.Source)
		countCommandNames(ctr, cmd.Destination)
	case parser.Redirect:
		countCommandNames(ctr, cmd.Source)
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for the given key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts tuples of strings.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given tuple.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Get returns the count for the given tuple.
func (ctr *PathCounter) Get(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implements a custom JSON marshaler, tuples are sorted by
// descending count.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
