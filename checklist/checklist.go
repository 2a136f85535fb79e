// Package checklist reads, writes and verifies sha256sum style
// checksum lists: one "<hex digest>  <name>" entry per line.
package checklist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"massnet.org/mass-sha256/batch"
	"massnet.org/mass-sha256/hashutil"
)

const (
	textMarker   = ' '
	binaryMarker = '*'
)

// ErrMalformedLine is the cause of every line-level parse failure.
var ErrMalformedLine = errors.New("malformed checksum line")

// Entry is one line of a checksum list.
type Entry struct {
	Hash   hashutil.Hash
	Name   string
	Binary bool
	// Line is the 1-based line number the entry was read from.
	Line int
}

// String formats e the way Write does.
func (e *Entry) String() string {
	marker := textMarker
	if e.Binary {
		marker = binaryMarker
	}
	return fmt.Sprintf("%s %c%s", e.Hash, marker, e.Name)
}

// ParseLine parses a single entry without line bookkeeping.
func ParseLine(line string) (*Entry, error) {
	line = strings.TrimRight(line, "\r")
	sep := hashutil.HashSize * 2
	if len(line) < sep+3 || line[sep] != ' ' {
		return nil, ErrMalformedLine
	}
	h, err := hashutil.DecodeStringToHash(line[:sep])
	if err != nil {
		return nil, errors.Wrap(ErrMalformedLine, err.Error())
	}
	e := &Entry{Hash: h, Name: line[sep+2:]}
	switch line[sep+1] {
	case textMarker:
	case binaryMarker:
		e.Binary = true
	default:
		return nil, ErrMalformedLine
	}
	return e, nil
}

// Parse reads every entry from r. Blank lines and lines starting with
// '#' are skipped.
func Parse(r io.Reader) ([]*Entry, error) {
	var entries []*Entry
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		e.Line = n
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "fail on reading checksum list")
	}
	return entries, nil
}

// Write emits entries one per line.
func Write(w io.Writer, entries []*Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, e.String()); err != nil {
			return errors.Wrap(err, "fail on writing checksum list")
		}
	}
	return errors.Wrap(bw.Flush(), "fail on writing checksum list")
}

// FromResults converts successful batch results into entries, skipping
// failed ones.
func FromResults(results []*batch.Result) []*Entry {
	entries := make([]*Entry, 0, len(results))
	for _, r := range results {
		if r == nil || r.Err != nil {
			continue
		}
		entries = append(entries, &Entry{Hash: r.Hash, Name: r.Path})
	}
	return entries
}

// Status classifies one verified entry.
type Status int

const (
	StatusOK Status = iota
	StatusFailed
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusFailed:
		return "FAILED"
	case StatusMissing:
		return "MISSING"
	default:
		return "INVALID"
	}
}

// Outcome is the verification result of one entry.
type Outcome struct {
	Entry  *Entry
	Status Status
	Actual hashutil.Hash
	Err    error
}

// Verify hashes every listed file through h and compares it to the
// listed digest.
func Verify(ctx context.Context, h *batch.Hasher, entries []*Entry) ([]*Outcome, error) {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Name
	}
	results, err := h.SumFiles(ctx, paths)
	if err != nil {
		return nil, err
	}

	outcomes := make([]*Outcome, len(entries))
	for i, e := range entries {
		r := results[i]
		o := &Outcome{Entry: e, Actual: r.Hash, Err: r.Err}
		switch {
		case r.Err != nil:
			o.Status = StatusMissing
		case r.Hash.IsEqual(&e.Hash):
			o.Status = StatusOK
		default:
			o.Status = StatusFailed
		}
		outcomes[i] = o
	}
	return outcomes, nil
}

// Summarize counts outcomes per status.
func Summarize(outcomes []*Outcome) (ok, failed, missing int) {
	for _, o := range outcomes {
		switch o.Status {
		case StatusOK:
			ok++
		case StatusFailed:
			failed++
		case StatusMissing:
			missing++
		}
	}
	return
}
