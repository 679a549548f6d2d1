// Package mec parses the FEANX MEC bulk-data format into the typed
// model. Parsing is single-pass and best-effort: everything short of
// an empty or recordless file degrades to diagnostics in the report.
package mec

import (
	"strings"

	"github.com/fea-tools/mecheck/internal/diag"
)

// RawRecord is one logical record: a keyword plus the ordered fields
// gathered from its opening line and any continuation lines. Never
// mutated after tokenization.
type RawRecord struct {
	Keyword string
	Fields  []string
	Lines   diag.LineRange
}

// tokenize splits the file into logical records. Comment and blank
// lines are skipped; continuation lines (leading whitespace, ',' or
// '+') append their fields to the open record. A continuation with no
// open record is a structural error and the line is dropped.
func tokenize(text string, rep *diag.Report) []RawRecord {
	var records []RawRecord
	var open *RawRecord

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "$") {
			continue
		}

		if isContinuation(line, trimmed) {
			if open == nil {
				rep.Structuralf(lineNo, "continuation line with no open record")
				continue
			}
			rest := trimmed
			switch rest[0] {
			case '+':
				// "+" marks the continuation; a comma right after it
				// is part of the marker, not a blank field.
				rest = strings.TrimSpace(rest[1:])
				rest = strings.TrimSpace(strings.TrimPrefix(rest, ","))
			case ',':
				rest = strings.TrimSpace(rest[1:])
			default:
				// An indented continuation is a case-control
				// directive line; the value after '=' is one field
				// even when it contains commas ("LABEL = Stage 1,
				// excavation").
				if k, v, ok := strings.Cut(rest, "="); ok {
					open.Fields = append(open.Fields, strings.TrimSpace(k), strings.TrimSpace(v))
					open.Lines.End = lineNo
					continue
				}
			}
			open.Fields = append(open.Fields, splitFields(rest)...)
			open.Lines.End = lineNo
			continue
		}

		if open != nil {
			records = append(records, *open)
		}
		fields := splitFields(trimmed)
		if len(fields) == 0 || fields[0] == "" {
			rep.Structuralf(lineNo, "record with empty keyword")
			open = nil
			continue
		}
		open = &RawRecord{
			Keyword: strings.ToUpper(fields[0]),
			Fields:  fields[1:],
			Lines:   diag.LineRange{Start: lineNo, End: lineNo},
		}
	}
	if open != nil {
		records = append(records, *open)
	}
	return records
}

// isContinuation reports whether a non-blank, non-comment physical
// line continues the open record. line is the raw line (leading
// whitespace intact), trimmed the space-trimmed form.
func isContinuation(line, trimmed string) bool {
	if trimmed[0] == ',' || trimmed[0] == '+' {
		return true
	}
	return line[0] == ' ' || line[0] == '\t'
}

// splitFields turns one physical line (or continuation remainder) into
// trimmed fields. Comma-delimited lines split on commas, preserving
// interior blanks so positions hold; a comma-free line with '=' splits
// once into key and value; otherwise fields are whitespace-separated.
func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		for len(parts) > 1 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		return parts
	}
	if k, v, ok := strings.Cut(s, "="); ok {
		return []string{strings.TrimSpace(k), strings.TrimSpace(v)}
	}
	return strings.Fields(s)
}
