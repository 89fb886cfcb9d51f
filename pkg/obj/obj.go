// Package obj parses the triangle subset of the Wavefront OBJ format used by
// the fan viewers and flattens it into per-object vertex streams.
//
// Only three directives are recognized:
//
//	o <name>          starts a new named object group
//	v <x> <y> <z>     appends a vertex (w is always 1)
//	f <i1> <i2> <i3>  appends a triangle using 1-based vertex indices
//
// Everything else is ignored. Parsing is permissive: malformed numbers become
// NaN coordinates and malformed indices become out-of-range indices, which
// Validate reports but Flatten does not reject.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
)

// Validation errors.
var (
	ErrFaceIndexOutOfRange = errors.New("obj: face index out of range")
	ErrNaNVertex           = errors.New("obj: vertex with non-numeric coordinate")
)

// InvalidIndex is stored for face index tokens that are not integers.
const InvalidIndex = -1

// Face is a triangle of zero-based indices into Data.Vertices.
type Face [3]int

// Group is a named object declared with an "o" line. It owns no vertex data:
// its vertices are the contiguous range of the global list starting at
// VertexOffset.
type Group struct {
	Name         string
	VertexOffset int
	VertexCount  int
	Faces        []Face
}

// Vertices returns the group's own vertices as a view into d.Vertices.
func (g *Group) Vertices(d *Data) []mgl32.Vec4 {
	end := g.VertexOffset + g.VertexCount
	if g.VertexOffset < 0 || end > len(d.Vertices) {
		return nil
	}
	return d.Vertices[g.VertexOffset:end]
}

// Data is a parsed OBJ mesh.
type Data struct {
	Vertices []mgl32.Vec4
	Faces    []Face
	Objects  []Group

	// Lines is the number of input lines read, including skipped ones.
	Lines int
}

// ParseString parses OBJ text held in memory. A strings.Reader never fails,
// so there is no error to report.
func ParseString(text string) *Data {
	d, _ := Parse(strings.NewReader(text))
	return d
}

// Parse reads OBJ text from r. The only errors returned come from r itself;
// malformed content never fails the parse, and lines may be any length.
// On a read error the data parsed so far is returned with it.
func Parse(r io.Reader) (*Data, error) {
	d := &Data{}
	var current *Group

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			d.Lines++
			current = d.parseLine(line, current)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			d.closeGroup(current)
			return d, fmt.Errorf("reading obj: %w", err)
		}
	}

	d.closeGroup(current)
	return d, nil
}

// parseLine applies one line and returns the group now being filled.
func (d *Data) parseLine(line string, current *Group) *Group {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return current
	}

	parts := strings.Fields(line)
	switch parts[0] {
	case "o":
		d.closeGroup(current)
		return &Group{
			Name:         field(parts, 1),
			VertexOffset: len(d.Vertices),
		}

	case "v":
		v := mgl32.Vec4{
			parseCoord(field(parts, 1)),
			parseCoord(field(parts, 2)),
			parseCoord(field(parts, 3)),
			1,
		}
		d.Vertices = append(d.Vertices, v)
		if current != nil {
			current.VertexCount++
		}

	case "f":
		f := Face{
			parseIndex(field(parts, 1)),
			parseIndex(field(parts, 2)),
			parseIndex(field(parts, 3)),
		}
		d.Faces = append(d.Faces, f)
		if current != nil {
			current.Faces = append(current.Faces, f)
		}
	}
	return current
}

func (d *Data) closeGroup(g *Group) {
	if g != nil {
		d.Objects = append(d.Objects, *g)
	}
}

// TriangleCount returns the number of faces in the mesh.
func (d *Data) TriangleCount() int {
	return len(d.Faces)
}

// Validate reports malformed geometry: face indices outside the vertex list
// and vertices with NaN coordinates. It never modifies d.
func (d *Data) Validate() error {
	var err error

	bad := 0
	for _, f := range d.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(d.Vertices) {
				bad++
				break
			}
		}
	}
	if bad > 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d of %d faces reference vertices outside [0, %d)",
			ErrFaceIndexOutOfRange, bad, len(d.Faces), len(d.Vertices)))
	}

	nan := 0
	for _, v := range d.Vertices {
		if isNaN(v[0]) || isNaN(v[1]) || isNaN(v[2]) {
			nan++
		}
	}
	if nan > 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d vertices", ErrNaNVertex, nan))
	}

	return err
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func parseCoord(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return float32(math.NaN())
	}
	return float32(f)
}

// parseIndex converts a 1-based OBJ index to a 0-based one. Only the vertex
// part of "v/vt/vn" tokens is read.
func parseIndex(s string) int {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return InvalidIndex
	}
	return n - 1
}

func isNaN(f float32) bool {
	return f != f
}
