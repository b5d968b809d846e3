package summary

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/stepkit/pkg/errors"
)

// Cell is one table cell. Header cells render as <th>.
type Cell struct {
	Data    string `yaml:"data"`
	Header  bool   `yaml:"header"`
	Colspan int    `yaml:"colspan"`
	Rowspan int    `yaml:"rowspan"`
}

// Row is a sequence of cells.
type Row []Cell

// TextCell returns a plain <td> cell.
func TextCell(data string) Cell {
	return Cell{Data: data}
}

// HeaderCell returns a <th> cell.
func HeaderCell(data string) Cell {
	return Cell{Data: data, Header: true}
}

// TextRow returns a row of plain cells.
func TextRow(data ...string) Row {
	row := make(Row, len(data))
	for i, d := range data {
		row[i] = TextCell(d)
	}
	return row
}

// UnmarshalYAML accepts either a scalar (a plain cell) or a mapping
// with data, header, colspan and rowspan keys.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*c = TextCell(node.Value)
		return nil
	}
	type plain Cell
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Cell(p)
	return nil
}

// ParseRows decodes a YAML sequence of rows.
func ParseRows(data []byte) ([]Row, error) {
	var rows []Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, errors.ErrValidation, "invalid table rows")
	}
	return rows, nil
}

func (c Cell) render() string {
	tag := "td"
	if c.Header {
		tag = "th"
	}
	var attrs []attr
	if c.Colspan != 0 {
		attrs = append(attrs, attr{"colspan", strconv.Itoa(c.Colspan)})
	}
	if c.Rowspan != 0 {
		attrs = append(attrs, attr{"rowspan", strconv.Itoa(c.Rowspan)})
	}
	return wrap(tag, c.Data, attrs...)
}

func renderTable(rows []Row) string {
	var body strings.Builder
	for _, row := range rows {
		var cells strings.Builder
		for _, cell := range row {
			cells.WriteString(cell.render())
		}
		body.WriteString(wrap("tr", cells.String()))
	}
	return wrap("table", body.String())
}
