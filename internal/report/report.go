// Package report renders detection results for the filemagic command.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/gobeaver/filemagic"
)

// Entry is the outcome of detecting one input.
type Entry struct {
	Path      string             `json:"path" yaml:"path"`
	Matched   bool               `json:"matched" yaml:"matched"`
	Type      filemagic.FileType `json:"type" yaml:"type"`
	Extension string             `json:"extension,omitempty" yaml:"extension,omitempty"`
	MIME      string             `json:"mime" yaml:"mime"`
	Category  string             `json:"category" yaml:"category"`
	Size      int64              `json:"size" yaml:"size"`
	Checksum  string             `json:"xxh64,omitempty" yaml:"xxh64,omitempty"`
	Rejected  bool               `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	Error     string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewEntry fills the type metadata for a detection result.
func NewEntry(path string, t filemagic.FileType, matched bool, size int64) Entry {
	return Entry{
		Path:      path,
		Matched:   matched,
		Type:      t,
		Extension: t.Extension(),
		MIME:      t.MIME(),
		Category:  t.Category(),
		Size:      size,
	}
}

// ErrorEntry records an input that could not be read.
func ErrorEntry(path string, err error) Entry {
	e := NewEntry(path, filemagic.Unknown, false, 0)
	e.Error = err.Error()
	return e
}

// Checksum returns the hex xxh64 digest of everything read from r.
func Checksum(r io.Reader) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to calculate checksum: %w", err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// Summary counts entries by outcome.
type Summary struct {
	Total     int `json:"total" yaml:"total"`
	Matched   int `json:"matched" yaml:"matched"`
	Unmatched int `json:"unmatched" yaml:"unmatched"`
	Rejected  int `json:"rejected" yaml:"rejected"`
	Errors    int `json:"errors" yaml:"errors"`
}

// Summarize counts entries.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		switch {
		case e.Error != "":
			s.Errors++
		case e.Rejected:
			s.Rejected++
		case e.Matched:
			s.Matched++
		default:
			s.Unmatched++
		}
	}
	return s
}

type document struct {
	Entries []Entry `json:"entries" yaml:"entries"`
	Summary Summary `json:"summary" yaml:"summary"`
}

// Write renders entries in the given format, sorted by path.
func Write(w io.Writer, format string, entries []Entry) error {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	doc := document{Entries: sorted, Summary: Summarize(sorted)}
	if doc.Entries == nil {
		doc.Entries = []Entry{}
	}

	switch format {
	case filemagic.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case filemagic.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case filemagic.FormatText, "":
		return writeText(w, doc)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeText(w io.Writer, doc document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range doc.Entries {
		var line string
		switch {
		case e.Error != "":
			line = fmt.Sprintf("%s\terror: %s", e.Path, e.Error)
		case !e.Matched:
			line = fmt.Sprintf("%s\tunknown\t\t%s", e.Path, e.MIME)
		case e.Rejected:
			line = fmt.Sprintf("%s\t%s\t.%s\t%s\trejected", e.Path, e.Type, e.Extension, e.MIME)
		default:
			line = fmt.Sprintf("%s\t%s\t.%s\t%s", e.Path, e.Type, e.Extension, e.MIME)
		}
		if e.Checksum != "" {
			line += "\t" + e.Checksum
		}
		fmt.Fprintln(tw, line)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := doc.Summary
	_, err := fmt.Fprintf(w, "\nFiles: %d (matched: %d, unknown: %d, rejected: %d, errors: %d)\n",
		s.Total, s.Matched, s.Unmatched, s.Rejected, s.Errors)
	return err
}
