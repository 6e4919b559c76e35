package export

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/dmitrijs2005/fletes/internal/client/controllers"
)

// StatsPDFName is the file name used for a month's summary.
func StatsPDFName(st controllers.MonthStats) string {
	return fmt.Sprintf("Resumen_%d_%02d.pdf", st.Year, int(st.Month))
}

// WriteStatsPDF renders the monthly summary and its fletes as a one-page
// A4 document.
func WriteStatsPDF(w io.Writer, st controllers.MonthStats) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Resumen de fletes "+st.Label), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("RESUMEN DE FLETES"))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(st.Label))
	pdf.Ln(12)

	summary := [][2]string{
		{"Total de fletes del mes", fmt.Sprintf("%d", st.Count)},
		{"Costo total del mes", controllers.FormatCurrency(st.Total)},
		{"Costo promedio por flete", controllers.FormatCurrency(st.Average)},
	}
	for _, row := range summary {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(70, 7, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	widths := []float64{60, 50, 30, 40}
	headers := []string{"Proveedor", "Destino", "Fecha", "Costo individual"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, f := range st.Fletes {
		cells := []string{f.Supplier, f.Destination, f.RegistrationDate, controllers.FormatCurrency(f.IndividualCost)}
		for i, c := range cells {
			align := "L"
			if i == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(st.Fletes) == 0 {
		pdf.CellFormat(180, 6, tr("No hay datos disponibles"), "1", 1, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render stats pdf: %w", err)
	}
	return nil
}
