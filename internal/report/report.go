// Package report writes the tab-separated per-pair results log.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// Header is the column row written first.
var Header = []string{
	"nodes", "edges", "initialState", "matchTime",
	"numberOfStates", "numberOfExploredNodes", "flag",
}

// Row is one match attempt. Times are written in milliseconds.
type Row struct {
	Nodes    int
	Edges    int
	Init     time.Duration
	Match    time.Duration
	States   int64
	Explored int64
	Found    bool
}

// Writer appends rows to a TSV stream.
type Writer struct {
	w *csv.Writer
}

// NewWriter writes Header to w and returns a row writer.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(Header); err != nil {
		return nil, err
	}
	return &Writer{w: cw}, nil
}

// Write appends r and flushes.
func (w *Writer) Write(r Row) error {
	flag := "0"
	if r.Found {
		flag = "1"
	}
	rec := []string{
		strconv.Itoa(r.Nodes),
		strconv.Itoa(r.Edges),
		millis(r.Init),
		millis(r.Match),
		strconv.FormatInt(r.States, 10),
		strconv.FormatInt(r.Explored, 10),
		flag,
	}
	if err := w.w.Write(rec); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}
