package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpoly/polygon"
)

// polygonReport is the printable form of one polygon.
type polygonReport struct {
	Polygon       string  `yaml:"polygon"`
	Edges         int     `yaml:"edges"`
	Radius        float64 `yaml:"radius"`
	InteriorAngle float64 `yaml:"interior_angle"`
	SideLength    float64 `yaml:"side_length"`
	Apothem       float64 `yaml:"apothem"`
	Area          float64 `yaml:"area"`
	Perimeter     float64 `yaml:"perimeter"`
	Efficiency    float64 `yaml:"efficiency"`
}

func newReport(p polygon.RegularPolygon) polygonReport {
	return polygonReport{
		Polygon:       p.String(),
		Edges:         p.EdgeCount(),
		Radius:        p.Circumradius(),
		InteriorAngle: p.InteriorAngle(),
		SideLength:    p.SideLength(),
		Apothem:       p.Apothem(),
		Area:          p.Area(),
		Perimeter:     p.Perimeter(),
		Efficiency:    p.Efficiency(),
	}
}

var tableHeaders = []string{"POLYGON", "EDGES", "ANGLE", "SIDE", "APOTHEM", "AREA", "PERIMETER", "AREA/PERIMETER"}

func (r polygonReport) row() []string {
	return []string{
		r.Polygon,
		strconv.Itoa(r.Edges),
		formatFloat(r.InteriorAngle),
		formatFloat(r.SideLength),
		formatFloat(r.Apothem),
		formatFloat(r.Area),
		formatFloat(r.Perimeter),
		formatFloat(r.Efficiency),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// writeReports renders reports in the requested format. A single report in
// YAML is written as a mapping, several as a sequence.
func writeReports(w io.Writer, output string, reports ...polygonReport) error {
	switch output {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		var v any = reports
		if len(reports) == 1 {
			v = reports[0]
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case OutputText:
		rows := make([][]string, 0, len(reports))
		for _, r := range reports {
			rows = append(rows, r.row())
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(tableHeaders...).
			Rows(rows...)
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}
}
