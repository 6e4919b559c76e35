package api

import "fmt"

// Long month names as es-MX prints them.
var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthName returns the lower-case Spanish name of month (1-12), or "" when
// out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

func MonthlyReportFilename(year, month int) string {
	name := MonthName(month)
	if name == "" {
		name = fmt.Sprintf("%02d", month)
	}
	return fmt.Sprintf("Reporte_%s_%d.xlsx", name, year)
}

func RangeReportFilename(start, end string) string {
	return fmt.Sprintf("Reporte_%s_%s.xlsx", start, end)
}
