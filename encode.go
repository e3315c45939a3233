package acctreports

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format is the closed set of output formats.
type Format int

const (
	CSV Format = iota
	JSON
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat resolves an output format name. It fails with ErrUnknownFormat.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	default:
		return CSV, fmt.Errorf("%w %q (want csv or json)", ErrUnknownFormat, s)
	}
}

// Sink consumes report records.
type Sink interface {
	// Emit writes one record.
	Emit(Record) error
	// Flush writes any buffered data.
	Flush() error
}

// NewSink returns the Sink writing records to w in format f.
func NewSink(f Format, w io.Writer) Sink {
	switch f {
	case JSON:
		return &jsonSink{enc: json.NewEncoder(w)}
	default:
		return &csvSink{w: csv.NewWriter(w)}
	}
}

// csvSink writes a header row, taken from the first record, then one row per record.
type csvSink struct {
	w      *csv.Writer
	header bool
}

func (s *csvSink) Emit(r Record) error {
	if !s.header {
		s.header = true
		if err := s.w.Write(r.Keys()); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}
	if err := s.w.Write(r.Strings()); err != nil {
		return fmt.Errorf("write csv record: %w", err)
	}
	return nil
}

func (s *csvSink) Flush() error {
	s.w.Flush()
	return s.w.Error()
}

// jsonSink writes one JSON object per line.
type jsonSink struct {
	enc *json.Encoder
}

func (s *jsonSink) Emit(r Record) error {
	if err := s.enc.Encode(r); err != nil {
		return fmt.Errorf("write json record: %w", err)
	}
	return nil
}

func (s *jsonSink) Flush() error { return nil }

// Collector is a Sink keeping records in memory.
type Collector struct {
	Records []Record
}

func (c *Collector) Emit(r Record) error {
	c.Records = append(c.Records, r)
	return nil
}

func (c *Collector) Flush() error { return nil }
