// Package tablefile reads and writes period tables as YAML documents:
//
//	periods:
//	  - kind: term
//	    name: Autumn
//	    start: 2019-09-30
//	  - kind: holiday
//	    name: Christmas
//	    start: 2019-12-06
//	  - kind: semester
//	    start: 2023-09-25
//	    weeks: [Freshers Week, Teaching Week 1]
//
// Semester entries without weeks use the standard week names.
package tablefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/uoyweek/internal/academic"
)

// Document is the top-level YAML structure.
type Document struct {
	Periods []Entry `yaml:"periods"`
}

// Entry is one period as written in a table file.
type Entry struct {
	Kind  string   `yaml:"kind"`
	Name  string   `yaml:"name,omitempty"`
	Start string   `yaml:"start"`
	Weeks []string `yaml:"weeks,omitempty"`
}

// Period converts the entry to a Period.
func (e Entry) Period() (academic.Period, error) {
	kind, err := academic.ParseKind(e.Kind)
	if err != nil {
		return academic.Period{}, err
	}
	start, err := academic.ParseDate(e.Start)
	if err != nil {
		return academic.Period{}, err
	}

	switch kind {
	case academic.KindTerm:
		return academic.NewTerm(start, e.Name), nil
	case academic.KindHoliday:
		return academic.NewHoliday(start, e.Name), nil
	default:
		return academic.NewSemester(start, e.Weeks...), nil
	}
}

// EntryOf converts a Period to its file representation.
func EntryOf(p academic.Period) Entry {
	e := Entry{
		Kind:  p.Kind.String(),
		Name:  p.Name,
		Start: academic.FormatDate(p.Start),
	}
	if p.Kind == academic.KindSemester {
		e.Name = ""
		e.Weeks = p.Weeks()
	}
	return e
}

// Decode reads a YAML table document from r and builds a Table.
// Errors name the zero-based index of the offending entry.
func Decode(r io.Reader) (*academic.Table, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &academic.ConfigurationError{Reason: "table file is empty"}
		}
		return nil, fmt.Errorf("parse table YAML: %w", err)
	}

	periods := make([]academic.Period, 0, len(doc.Periods))
	for i, e := range doc.Periods {
		p, err := e.Period()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		periods = append(periods, p)
	}

	return academic.NewTable(periods...)
}

// Load reads the table file at path.
func Load(path string) (*academic.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table file: %w", err)
	}
	table, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Encode writes table to w as a YAML document.
func Encode(w io.Writer, table *academic.Table) error {
	doc := Document{Periods: make([]Entry, 0, table.Len())}
	for p := range table.All() {
		doc.Periods = append(doc.Periods, EntryOf(p))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode table YAML: %w", err)
	}
	return enc.Close()
}
