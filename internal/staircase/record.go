package staircase

import (
	"cmp"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/staircase/pkg/monotonic"
)

const (
	ErrColumnMissing errorkit.Error = "ErrColumnMissing"
	ErrKeyParse      errorkit.Error = "ErrKeyParse"
	ErrInputOpen     errorkit.Error = "ErrInputOpen"
	ErrInvalidColumn errorkit.Error = "ErrInvalidColumn"
)

const (
	CompareNumeric = "numeric"
	CompareLexical = "lexical"
)

// Record is a single input line together with its sort key.
type Record struct {
	// LineNo is the 1-based line number in the input.
	LineNo int
	Line   string

	Text string
	Num  float64

	// Blank marks a line with nothing but whitespace, it has no key.
	Blank bool
}

type recordParser struct {
	Column  int
	Numeric bool

	lineNo int
}

func (p *recordParser) Parse(line string) (Record, error) {
	p.lineNo++
	r := Record{LineNo: p.lineNo, Line: line, Text: strings.TrimSpace(line)}
	if r.Text == "" {
		r.Blank = true
		return r, nil
	}
	if 0 < p.Column {
		fields := strings.Fields(line)
		if len(fields) < p.Column {
			return Record{}, ErrColumnMissing.F("line %d has %d fields, column %d was requested", r.LineNo, len(fields), p.Column)
		}
		r.Text = fields[p.Column-1]
	}
	if p.Numeric {
		n, err := strconv.ParseFloat(r.Text, 64)
		if err != nil {
			return Record{}, ErrKeyParse.F("line %d: %q is not a number: %s", r.LineNo, r.Text, err.Error())
		}
		r.Num = n
	}
	return r, nil
}

func relation[K cmp.Ordered](strict, desc bool) monotonic.KeepFunc[K] {
	switch {
	case strict && desc:
		return monotonic.Decreasing[K]
	case strict:
		return monotonic.Increasing[K]
	case desc:
		return monotonic.NonIncreasing[K]
	default:
		return monotonic.NonDecreasing[K]
	}
}

func keepFor(compare string, strict, desc bool) monotonic.KeepFunc[Record] {
	if compare == CompareLexical {
		return monotonic.By(func(r Record) string { return r.Text }, relation[string](strict, desc))
	}
	return monotonic.By(func(r Record) float64 { return r.Num }, relation[float64](strict, desc))
}
