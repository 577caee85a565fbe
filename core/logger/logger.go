package logger

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/josephlewis42/vsh/core/value"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// LogEntry is a single evaluated line.
type LogEntry struct {
	TimestampMicros int64    `json:"timestamp_micros"`
	SessionID       string   `json:"session_id"`
	Line            string   `json:"line"`
	Results         []Result `json:"results"`
}

// Result summarizes the value one statement produced.
type Result struct {
	Kind string `json:"kind"`
	// Code is the error code for errors, the exit status for process output
	// and zero for everything else.
	Code int `json:"code"`
}

// NewResult summarizes v.
func NewResult(v value.Value) Result {
	out := Result{Kind: v.Kind().String()}
	switch v := v.(type) {
	case value.Error:
		out.Code = int(v.Code)
	case value.ProcessOutput:
		out.Code = v.Status
	}
	return out
}

func (le *LogEntry) toStruct() (*structpb.Struct, error) {
	results := make([]interface{}, 0, len(le.Results))
	for _, r := range le.Results {
		results = append(results, map[string]interface{}{
			"kind": r.Kind,
			"code": r.Code,
		})
	}

	return structpb.NewStruct(map[string]interface{}{
		"timestamp_micros": le.TimestampMicros,
		"session_id":       le.SessionID,
		"line":             le.Line,
		"results":          results,
	})
}

func fromStruct(s *structpb.Struct) *LogEntry {
	fields := s.GetFields()
	le := &LogEntry{
		TimestampMicros: int64(fields["timestamp_micros"].GetNumberValue()),
		SessionID:       fields["session_id"].GetStringValue(),
		Line:            fields["line"].GetStringValue(),
	}

	for _, r := range fields["results"].GetListValue().GetValues() {
		result := r.GetStructValue().GetFields()
		le.Results = append(le.Results, Result{
			Kind: result["kind"].GetStringValue(),
			Code: int(result["code"].GetNumberValue()),
		})
	}
	return le
}

// MarshalJSON implements json.Marshaler using the protobuf JSON encoding.
func (le *LogEntry) MarshalJSON() ([]byte, error) {
	s, err := le.toStruct()
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler using the protobuf JSON encoding.
func (le *LogEntry) UnmarshalJSON(data []byte) error {
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return err
	}
	*le = *fromStruct(&s)
	return nil
}

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures evaluated lines.
type Logger struct {
	Record LogRecorder
}

// NewJSONLinesRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJSONLinesRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := le.MarshalJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// Discard creates a Logger that drops every event.
func Discard() *Logger {
	return &Logger{
		Record: func(*LogEntry) error { return nil },
	}
}

// NewSession creates a logger with attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger logs messages with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// SessionID gets the ID attached to every entry.
func (l *SessionLogger) SessionID() string {
	return l.sessionID
}

// RecordLine logs a line and the values it evaluated to.
func (l *SessionLogger) RecordLine(line string, values []value.Value) error {
	le := &LogEntry{
		TimestampMicros: time.Now().UnixNano() / int64(time.Microsecond),
		SessionID:       l.sessionID,
		Line:            line,
		Results:         []Result{},
	}
	for _, v := range values {
		le.Results = append(le.Results, NewResult(v))
	}

	return l.Record(le)
}
