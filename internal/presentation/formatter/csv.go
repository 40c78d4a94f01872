package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Name", "Damage", "Percentage", "DPAV"}); err != nil {
		return err
	}
	for _, row := range report.Rows {
		record := []string{
			row.Name,
			formatFloat(row.Damage),
			formatFloat(row.Percentage),
			formatFloat(row.DPAV),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	total := []string{"Total", formatFloat(report.TotalDamage), "100", formatFloat(report.DPAV)}
	if err := cw.Write(total); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
