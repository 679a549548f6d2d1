// Package diag holds the parse report and the diagnostic taxonomy.
// Every problem short of a fatal one is accumulated here; the parse
// itself never stops for them.
package diag

import (
	"fmt"

	"github.com/google/uuid"
)

// Warning kinds.
const (
	KindAggregation = "aggregation"
	KindReference   = "reference"
	KindAnnotation  = "annotation"
	KindConsistency = "consistency"
)

// LineRange is a 1-based inclusive range of physical lines.
type LineRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

func (r LineRange) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("line %d", r.Start)
	}
	return fmt.Sprintf("lines %d-%d", r.Start, r.End)
}

// StructuralError is a tokenization-level problem: the offending line
// was skipped and tokenization continued.
type StructuralError struct {
	Line   int    `yaml:"line"`
	Reason string `yaml:"reason"`
}

// DecodeError records one record whose fields failed type, range, or
// requiredness checks. The record is omitted from its collection.
type DecodeError struct {
	Keyword string    `yaml:"keyword"`
	Reason  string    `yaml:"reason"`
	Lines   LineRange `yaml:"lines"`
}

// Warning is a non-fatal condition (duplicate fragment overwrite,
// dangling reference, orphan annotation, count mismatch).
type Warning struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
}

// Observed counts mesh lines that are tallied but not decoded, the way
// the exporter's own summary counts them.
type Observed struct {
	Grids       int `yaml:"grids"`
	Elements    int `yaml:"elements"`
	Constraints int `yaml:"constraints"`
}

// Report accumulates every diagnostic of one parse run. It belongs to
// exactly one Model and is read-only once Parse returns.
type Report struct {
	RunID      string            `yaml:"run_id"`
	Records    map[string]int    `yaml:"records"`
	Unparsed   map[string]int    `yaml:"unparsed,omitempty"`
	Observed   Observed          `yaml:"observed"`
	Structural []StructuralError `yaml:"structural_errors,omitempty"`
	Decode     []DecodeError     `yaml:"decode_errors,omitempty"`
	Warnings   []Warning         `yaml:"warnings,omitempty"`
}

// NewReport returns an empty report with a fresh run id.
func NewReport() *Report {
	return &Report{
		RunID:    uuid.NewString(),
		Records:  make(map[string]int),
		Unparsed: make(map[string]int),
	}
}

// CountRecord increments the decoded-record counter for a keyword.
func (r *Report) CountRecord(keyword string) {
	r.Records[keyword]++
}

// CountUnparsed increments the unparsed counter for an unknown keyword.
func (r *Report) CountUnparsed(keyword string) {
	r.Unparsed[keyword]++
}

// Structuralf records a structural error at the given line.
func (r *Report) Structuralf(line int, format string, args ...any) {
	r.Structural = append(r.Structural, StructuralError{Line: line, Reason: fmt.Sprintf(format, args...)})
}

// Decodef records a decode error for one record.
func (r *Report) Decodef(keyword string, lines LineRange, format string, args ...any) {
	r.Decode = append(r.Decode, DecodeError{Keyword: keyword, Reason: fmt.Sprintf(format, args...), Lines: lines})
}

// Warnf records a warning of the given kind.
func (r *Report) Warnf(kind, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// ErrorCount returns the number of structural plus decode errors.
func (r *Report) ErrorCount() int {
	return len(r.Structural) + len(r.Decode)
}

// WarningCount returns the number of accumulated warnings.
func (r *Report) WarningCount() int {
	return len(r.Warnings)
}

// UnparsedTotal returns the total count of unparsed records across all
// unknown keywords.
func (r *Report) UnparsedTotal() int {
	total := 0
	for _, n := range r.Unparsed {
		total += n
	}
	return total
}
