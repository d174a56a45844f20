// Package history reads and writes raster map history records: a
// fixed set of newline-terminated text fields followed by a bounded
// free-text edit log. The record format is plain ASCII, one line per
// field, in a fixed order.
package history

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/gisforge/terracell/pkg/errors"
	"github.com/gisforge/terracell/pkg/metrics"
)

const (
	// MaxEditLines bounds the edit log.
	MaxEditLines = 50
	// RecordLen bounds every line of the record.
	RecordLen = 80

	// Command lines longer than wrapCol split into chunkLen-character
	// pieces with a trailing backslash continuation marker.
	wrapCol  = 70
	chunkLen = 68
)

// Sentinel outcomes of AppendCommand.
var (
	// ErrLogFull means the edit log had no room and nothing was added.
	ErrLogFull = errors.New(errors.ErrorTypeData, "history edit log full")
	// ErrLogTruncated means the command only partially fit; as many
	// lines as possible were added.
	ErrLogTruncated = errors.New(errors.ErrorTypeData, "history edit log full, command truncated")
)

// Record is one raster map's history: identification fields plus an
// ordered edit log.
type Record struct {
	MapID       string
	Title       string
	Mapset      string
	Creator     string
	MapType     string
	DataSource1 string
	DataSource2 string
	Keywords    string
	Edits       []string
}

// New initializes a short history record for a map: creation
// timestamp, owning mapset, creator and a generated keyword line. It
// does not write anything; use WriteFile for that.
func New(name, mapset, mapType string) *Record {
	return &Record{
		MapID:    time.Now().Format(time.ANSIC),
		Title:    clamp(name),
		Mapset:   clamp(mapset),
		Creator:  clamp(whoami()),
		MapType:  clamp(mapType),
		Keywords: clamp(fmt.Sprintf("generated by %s", filepath.Base(os.Args[0]))),
	}
}

// Read parses a history record. The eight fixed fields are required
// in order; whatever lines follow become the edit log, capped at
// MaxEditLines. Non-ASCII bytes are stripped per line.
func Read(r io.Reader) (*Record, error) {
	sc := bufio.NewScanner(r)

	fields := make([]string, 0, 8)
	for len(fields) < 8 {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read history record")
			}
			return nil, errors.New(errors.ErrorTypeFormat, "history record truncated").
				WithDetail("fields_read", len(fields))
		}
		fields = append(fields, asciiClean(sc.Text()))
	}

	rec := &Record{
		MapID:       fields[0],
		Title:       fields[1],
		Mapset:      fields[2],
		Creator:     fields[3],
		MapType:     fields[4],
		DataSource1: fields[5],
		DataSource2: fields[6],
		Keywords:    fields[7],
	}

	for len(rec.Edits) < MaxEditLines && sc.Scan() {
		rec.Edits = append(rec.Edits, asciiClean(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read history record")
	}

	return rec, nil
}

// ReadFile loads the history record at path.
func ReadFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open history file").
			WithDetail("path", path)
	}
	defer f.Close()

	rec, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read history file").
			WithDetail("path", path)
	}
	return rec, nil
}

// Write emits the record in its fixed field order followed by the
// edit log, one newline-terminated line each. Lines are clamped to
// RecordLen.
func (h *Record) Write(w io.Writer) error {
	lines := append([]string{
		h.MapID,
		h.Title,
		h.Mapset,
		h.Creator,
		h.MapType,
		h.DataSource1,
		h.DataSource2,
		h.Keywords,
	}, h.Edits...)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, clamp(line)); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to write history record")
		}
	}
	return nil
}

// WriteFile stores the record at path, replacing any previous record.
func (h *Record) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		metrics.HistoryWrites.WithLabelValues("failure").Inc()
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to create history file").
			WithDetail("path", path)
	}

	if err := h.Write(f); err != nil {
		f.Close()
		metrics.HistoryWrites.WithLabelValues("failure").Inc()
		return err
	}
	if err := f.Close(); err != nil {
		metrics.HistoryWrites.WithLabelValues("failure").Inc()
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to close history file").
			WithDetail("path", path)
	}

	metrics.HistoryWrites.WithLabelValues("success").Inc()
	return nil
}

// AppendCommand records a command-line invocation in the edit log. A
// blank line separates it from earlier entries. Commands shorter than
// wrapCol land on one line; longer ones wrap into chunkLen-character
// pieces, each ending in a backslash.
//
// Returns ErrLogFull when the log has no room at all (nothing added)
// and ErrLogTruncated when only part of the command fit.
func (h *Record) AppendCommand(cmdline string) error {
	if len(h.Edits) > MaxEditLines-2 {
		return ErrLogFull
	}

	if len(h.Edits) > 0 {
		h.Edits = append(h.Edits, "")
	}

	if len(cmdline) < wrapCol {
		h.Edits = append(h.Edits, cmdline)
		return nil
	}

	j := 0
	for len(cmdline)-j > wrapCol {
		h.Edits = append(h.Edits, cmdline[j:j+chunkLen]+`\`)
		j += chunkLen
		if len(h.Edits) > MaxEditLines-2 {
			return ErrLogTruncated
		}
	}
	if j < len(cmdline) {
		h.Edits = append(h.Edits, cmdline[j:])
	}
	return nil
}

// clamp bounds a line to RecordLen bytes.
func clamp(s string) string {
	if len(s) > RecordLen {
		return s[:RecordLen]
	}
	return s
}

// asciiClean drops non-ASCII and control bytes from a line.
func asciiClean(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r > 126 {
			return -1
		}
		return r
	}, s)
}

func whoami() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
