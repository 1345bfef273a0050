package wrcheck

import (
	"fmt"
	"strings"

	"github.com/pb1dft/check-white-rabbit/wrsnmp"
)

// table holds walked columns keyed by row index. Rows keep the order of
// the first column.
type table struct {
	rows  []string
	cells map[string]map[string]wrsnmp.Variable
}

func (c *Checker) walkTable(columns ...string) (*table, error) {
	t := &table{cells: map[string]map[string]wrsnmp.Variable{}}
	for i, col := range columns {
		vars, err := c.q.Walk(col)
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", col, err)
		}
		cells := map[string]wrsnmp.Variable{}
		for _, v := range vars {
			idx := v.Index(col)
			if idx == "" {
				continue
			}
			cells[idx] = v
			if i == 0 {
				t.rows = append(t.rows, idx)
			}
		}
		t.cells[col] = cells
	}
	c.logger.Debug(fmt.Sprintf("table %v has %d rows", columns[0], len(t.rows)))
	return t, nil
}

func (t *table) cell(row, col string) (wrsnmp.Variable, bool) {
	v, ok := t.cells[col][row]
	return v, ok
}

func (t *table) text(row, col string) string {
	v, ok := t.cell(row, col)
	if !ok {
		return ""
	}
	return cleanText(v.String())
}

// int reads a numeric cell; a missing cell reads as zero.
func (t *table) int(row, col string) (int64, error) {
	v, ok := t.cell(row, col)
	if !ok {
		return 0, nil
	}
	return v.Int()
}

func (t *table) float(row, col string) (float64, error) {
	v, ok := t.cell(row, col)
	if !ok {
		return 0, nil
	}
	return v.Float()
}

func cleanText(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
