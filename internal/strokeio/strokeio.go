// Package strokeio reads and writes answer sheets as line-delimited JSON.
//
// One line per stroke, in chronological order:
//
//	{"stroke":[{"time":0,"x":12.5,"y":40},{"time":16,"x":13,"y":41}]}
//
// Blank lines are ignored. A directory holds one sheet per *.jsonl file.
package strokeio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/inkstep/core"
)

// Ext is the sheet file extension.
const Ext = ".jsonl"

// maxLine bounds a single stroke record.
const maxLine = 4 << 20

var (
	// ErrRecord indicates a line that is not a stroke record.
	ErrRecord = errors.New("strokeio: malformed stroke record")

	// ErrNoSheets indicates a directory without sheet files.
	ErrNoSheets = errors.New("strokeio: no sheet files")
)

type point struct {
	Time uint64  `json:"time"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type record struct {
	Stroke []point `json:"stroke"`
}

// Read parses one sheet. The sheet is not validated.
func Read(r io.Reader, id int, name string) (*core.Sheet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var strokes []*core.Stroke
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var rec record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: %w: %v", name, line, ErrRecord, err)
		}
		if rec.Stroke == nil {
			return nil, fmt.Errorf("%s:%d: missing \"stroke\": %w", name, line, ErrRecord)
		}
		pts := make([]core.Point, len(rec.Stroke))
		for i, p := range rec.Stroke {
			pts[i] = core.Point{Time: p.Time, X: p.X, Y: p.Y}
		}
		strokes = append(strokes, core.NewStroke(pts))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return core.NewSheet(id, name, strokes), nil
}

// Write emits s in the format Read accepts.
func Write(w io.Writer, s *core.Sheet) error {
	enc := json.NewEncoder(w)
	for _, st := range s.Strokes {
		rec := record{Stroke: make([]point, len(st.Points))}
		for i, p := range st.Points {
			rec.Stroke[i] = point{Time: p.Time, X: p.X, Y: p.Y}
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("Write: sheet %d: %w", s.ID, err)
		}
	}

	return nil
}

// LoadFile reads one sheet file; the sheet is named after the file.
func LoadFile(path string, id int) (*core.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, id, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
}

// LoadDir reads every *.jsonl file of dir in name order and numbers the
// sheets 0..N-1 in that order.
func LoadDir(dir string) ([]*core.Sheet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sheets []*core.Sheet
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Ext {
			continue
		}
		s, err := LoadFile(filepath.Join(dir, e.Name()), len(sheets))
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, s)
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoSheets)
	}

	return sheets, nil
}

// LoadFiles reads the given files in argument order, numbering the sheets
// 0..N-1. A directory argument expands to its sheets.
func LoadFiles(paths ...string) ([]*core.Sheet, error) {
	var sheets []*core.Sheet
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			s, err := LoadFile(p, len(sheets))
			if err != nil {
				return nil, err
			}
			sheets = append(sheets, s)
			continue
		}
		dir, err := LoadDir(p)
		if err != nil {
			return nil, err
		}
		for _, s := range dir {
			s.ID = len(sheets)
			sheets = append(sheets, s)
		}
	}
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	return sheets, nil
}
