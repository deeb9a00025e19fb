// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Record describes one validation command for the summary report.
type Record struct {
	Index        int
	Command      string
	ChainLen     int
	Outcome      Outcome
	Measurements []time.Duration
}

// Stats returns the minimum, median and maximum measurement.
func (r Record) Stats() (minimum, median, maximum time.Duration) {
	if len(r.Measurements) == 0 {
		return 0, 0, 0
	}

	sorted := slices.Clone(r.Measurements)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	median = sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[0], median, sorted[len(sorted)-1]
}

// Summary collects every validation of a run for an end-of-input report.
type Summary struct {
	RunID   string
	records []Record
}

// NewSummary returns an empty Summary tagged with a fresh run identifier.
func NewSummary() *Summary {
	return &Summary{RunID: uuid.NewString()}
}

// Add appends a record.
func (s *Summary) Add(r Record) { s.records = append(s.records, r) }

// Records returns the recorded validations in order.
func (s *Summary) Records() []Record { return slices.Clone(s.records) }

// Render writes the summary as a markdown table.
func (s *Summary) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run %s: %d validation(s)\n", s.RunID, len(s.records)); err != nil {
		return err
	}
	if len(s.records) == 0 {
		return nil
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"#", "Command", "Chain", "Result", "Trials", "Min (us)", "Median (us)", "Max (us)"})

	rows := make([][]string, 0, len(s.records))
	for _, r := range s.records {
		minimum, median, maximum := r.Stats()
		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			commandLabel(r.Command),
			strconv.Itoa(r.ChainLen),
			r.Outcome.String(),
			strconv.Itoa(len(r.Measurements)),
			strconv.FormatInt(minimum.Microseconds(), 10),
			strconv.FormatInt(median.Microseconds(), 10),
			strconv.FormatInt(maximum.Microseconds(), 10),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// commandLabel shortens very long hostnames so the table stays readable.
// The cut is made on a rune boundary, and pipes are escaped so they cannot
// split a markdown cell.
func commandLabel(cmd string) string {
	const limit = 40
	if utf8.RuneCountInString(cmd) > limit {
		cmd = string([]rune(cmd)[:limit]) + "..."
	}
	return strings.ReplaceAll(cmd, "|", `\|`)
}
