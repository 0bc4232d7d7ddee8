package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
)

// Header is the first CSV row.
var Header = []string{"container", "operation", "size", "run", "time_us"}

// Record is one timed measurement.
type Record struct {
	Container string
	Operation string
	Size      int
	Run       int
	Elapsed   time.Duration
}

func (r Record) row() []string {
	return []string{
		r.Container,
		r.Operation,
		strconv.Itoa(r.Size),
		strconv.Itoa(r.Run),
		strconv.FormatInt(r.Elapsed.Microseconds(), 10),
	}
}

// Sink receives records in the order they are measured.
type Sink interface {
	Write(Record) error
}

// CSVSink writes records as CSV rows, header first.
type CSVSink struct {
	w      *csv.Writer
	closer io.Closer
	header bool
}

// NewCSVSink writes to w. Close flushes and does not close w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

// CreateCSV truncates or creates the file at path. Close flushes and closes it.
func CreateCSV(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("bench: create %s: %w", path, err)
	}
	s := NewCSVSink(f)
	s.closer = f
	return s, nil
}

func (s *CSVSink) Write(r Record) error {
	if !s.header {
		if err := s.w.Write(Header); err != nil {
			return err
		}
		s.header = true
	}
	return s.w.Write(r.row())
}

// Close writes the header if nothing was written yet, flushes, and closes
// the underlying file if the sink owns one.
func (s *CSVSink) Close() (err error) {
	if !s.header {
		err = s.w.Write(Header)
		s.header = true
	}
	s.w.Flush()
	err = multierr.Append(err, s.w.Error())
	if s.closer != nil {
		err = multierr.Append(err, s.closer.Close())
		s.closer = nil
	}
	return err
}
