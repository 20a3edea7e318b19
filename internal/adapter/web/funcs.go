package web

import (
	"fmt"
	"html/template"
)

const missingValue = "–"

var templateFuncs = template.FuncMap{
	"temp":    formatTemp,
	"percent": formatPercent,
}

// formatTemp renders a temperature in whole degrees Celsius.
func formatTemp(v *float64) string {
	if v == nil {
		return missingValue
	}
	return fmt.Sprintf("%.0f°C", *v)
}

func formatPercent(v *float64) string {
	if v == nil {
		return missingValue
	}
	return fmt.Sprintf("%.0f%%", *v)
}
