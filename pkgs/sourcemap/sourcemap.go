// Package sourcemap is the default implementation of the source-map
// contract the lexical core consumes but never constructs on its own
// (spec §6). The core only ever depends on the SourceMap interface; Map is
// one concrete, in-memory implementation of it.
package sourcemap

import (
	"bytes"
	"sort"

	"github.com/aledsdavies/lexcore/pkgs/span"
)

// File is the opaque record a source map hands back for a registered
// SourceID: its path, its bytes, and the byte offset of the start of each
// line (line_offsets in spec terms).
type File struct {
	Path        string
	Contents    []byte
	LineOffsets []int
}

// Position is the 1-based line/column a byte offset resolves to, plus the
// display variants a renderer would show a human (identical here, but kept
// distinct per spec §6 since some source maps remap displayed line numbers,
// e.g. for generated code).
type Position struct {
	Line          int
	Column        int
	DisplayLine   int
	DisplayColumn int
}

// SourceMap is the contract the core consumes: assign an id to a file,
// fetch its bytes back by id, and resolve a byte offset to a position.
// The core treats any implementation as opaque and read-only.
type SourceMap interface {
	Get(id span.SourceID) (File, bool)
	BytePosition(id span.SourceID, offset int) (Position, bool)
}

// Map is a simple in-memory SourceMap. It is not required by the core —
// callers may supply their own SourceMap — but is the reference
// implementation used by the demo CLI and by the package's own tests.
type Map struct {
	files []File
}

// New returns an empty in-memory source map.
func New() *Map {
	return &Map{}
}

// Add registers a file's contents and returns the SourceID assigned to it.
// Line offsets are computed once, here, so BytePosition never rescans the
// contents.
func (m *Map) Add(path string, contents []byte) span.SourceID {
	offsets := lineOffsets(contents)
	m.files = append(m.files, File{Path: path, Contents: contents, LineOffsets: offsets})
	return span.SourceID(len(m.files))
}

// Get returns the file registered under id, if any.
func (m *Map) Get(id span.SourceID) (File, bool) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(m.files) {
		return File{}, false
	}
	return m.files[idx], true
}

// BytePosition resolves a byte offset within file id to a 1-based
// line/column via a binary search over the precomputed line-start table.
func (m *Map) BytePosition(id span.SourceID, offset int) (Position, bool) {
	f, ok := m.Get(id)
	if !ok || offset < 0 || offset > len(f.Contents) {
		return Position{}, false
	}

	// sort.Search finds the first line whose start is > offset; the line
	// containing offset is the one before it.
	line := sort.Search(len(f.LineOffsets), func(i int) bool {
		return f.LineOffsets[i] > offset
	})
	lineStart := 0
	if line > 0 {
		lineStart = f.LineOffsets[line-1]
	}
	col := offset - lineStart + 1

	pos := Position{Line: line, Column: col}
	pos.DisplayLine, pos.DisplayColumn = pos.Line, pos.Column
	return pos, true
}

func lineOffsets(contents []byte) []int {
	offsets := []int{0}
	rest := contents
	base := 0
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		base += i + 1
		offsets = append(offsets, base)
		rest = rest[i+1:]
	}
	return offsets
}
