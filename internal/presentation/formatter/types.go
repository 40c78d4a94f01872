// Package formatter prints a one-shot damage report of a battle as a table,
// JSON or CSV.
package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-battle-overlay/internal/core/model"
)

// Row is one combatant's share of the damage
type Row struct {
	Name       string  `json:"name"`
	Damage     float64 `json:"damage"`
	Percentage float64 `json:"percentage"`
	DPAV       float64 `json:"dpav"`
}

// Report is the battle summary handed to a Formatter
type Report struct {
	TotalDamage float64 `json:"total_damage"`
	ActionValue float64 `json:"action_value"`
	DPAV        float64 `json:"dpav"`
	Rows        []Row   `json:"rows"`
}

type Formatter interface {
	Format(w io.Writer, report *Report) error
}

// New returns the formatter for name: table, json or csv
func New(name string) (Formatter, error) {
	switch name {
	case "", "table":
		return NewTableFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	}
	return nil, fmt.Errorf("unknown format %q (want table, json or csv)", name)
}

// FromFrame builds a report from a composed frame's legend
func FromFrame(frame *model.Frame) *Report {
	report := &Report{Rows: []Row{}}
	if frame == nil {
		return report
	}
	report.TotalDamage = frame.TotalDamage
	report.ActionValue = frame.ActionValue
	// raw damage stands in for DPAV until the first action is taken
	report.DPAV = frame.TotalDamage
	if frame.ActionValue > 0 {
		report.DPAV = frame.TotalDamage / frame.ActionValue
	}
	for _, line := range frame.Legend {
		report.Rows = append(report.Rows, Row{
			Name:       line.Name,
			Damage:     line.Damage,
			Percentage: line.Percentage,
			DPAV:       line.DPAV,
		})
	}
	return report
}
