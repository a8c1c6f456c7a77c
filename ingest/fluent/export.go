package fluent

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Errors returned by fluent functions.
var (
	ErrShortExport = errors.New("fluent: export shorter than its header block")
	ErrBadRecord   = errors.New("fluent: malformed record")
	ErrNoNodes     = errors.New("fluent: export contains no nodes")
	ErrBadGrid     = errors.New("fluent: grid must be at least 2x2")
)

// Metadata lines before the column header in a standard ASCII export.
const headerLines = 4

const minColumns = 4

// Node is one unstructured mesh point carrying a scalar value.
type Node struct {
	X     float64 // m
	Y     float64 // m
	Value float64
}

// Field is a scalar field sampled on an unstructured mesh.
type Field struct {
	Name  string // value column name from the export
	Nodes []Node
}

// ReadExport parses a Fluent ASCII export. The four metadata lines are
// skipped, the following line names the columns, and every remaining
// record becomes one node.
func ReadExport(r io.Reader) (*Field, error) {
	br := bufio.NewReader(r)

	for i := range headerLines {
		_, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: got %d of %d metadata lines", ErrShortExport, i, headerLines)
		}
	}

	reader := csv.NewReader(br)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	columns, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing column header", ErrShortExport)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: column header: %v", ErrBadRecord, err)
	}

	if len(columns) < minColumns {
		return nil, fmt.Errorf("%w: column header has %d columns, need %d", ErrBadRecord, len(columns), minColumns)
	}

	field := &Field{Name: columns[3]}

	for record := 1; ; record++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrBadRecord, record, err)
		}

		node, err := parseNode(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrBadRecord, record, err)
		}

		field.Nodes = append(field.Nodes, node)
	}

	if len(field.Nodes) == 0 {
		return nil, ErrNoNodes
	}

	return field, nil
}

func parseNode(rec []string) (Node, error) {
	if len(rec) < minColumns {
		return Node{}, fmt.Errorf("got %d columns, need %d", len(rec), minColumns)
	}

	x, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return Node{}, fmt.Errorf("x-coordinate: %v", err)
	}

	y, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return Node{}, fmt.Errorf("y-coordinate: %v", err)
	}

	value, err := strconv.ParseFloat(rec[3], 64)
	if err != nil {
		return Node{}, fmt.Errorf("value: %v", err)
	}

	return Node{X: x, Y: y, Value: value}, nil
}

// Bounds returns the bounding box of the mesh nodes.
func (f *Field) Bounds() (x0, x1, y0, y1 float64) {
	if len(f.Nodes) == 0 {
		return 0, 0, 0, 0
	}

	first := f.Nodes[0]
	x0, x1 = first.X, first.X
	y0, y1 = first.Y, first.Y

	for _, n := range f.Nodes[1:] {
		x0 = min(x0, n.X)
		x1 = max(x1, n.X)
		y0 = min(y0, n.Y)
		y1 = max(y1, n.Y)
	}

	return x0, x1, y0, y1
}
