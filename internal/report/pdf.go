// Package report renders operation reports as PDF documents.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/service"
)

const (
	lineHeight = 7
	dateLayout = "02/01/2006 15:04"
)

var columns = []struct {
	title string
	width float64
}{
	{"Data", 28},
	{"Tipo", 20},
	{"Combustível", 26},
	{"Mês/Ano", 24},
	{"Quantidade (L)", 30},
	{"Preço unit.", 26},
	{"Total", 36},
}

// BuildPDF renders r for the named owner.
func BuildPDF(r service.Report, owner string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Relatório de operações", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Relatório de operações"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, lineHeight, tr("Usuário: "+owner))
	pdf.Ln(lineHeight)
	pdf.Cell(0, lineHeight, tr("Gerado em: "+r.GeneratedAt.Format(dateLayout)))
	pdf.Ln(lineHeight)
	pdf.Cell(0, lineHeight, tr("Filtros: "+describeFilter(r.Filter)))
	pdf.Ln(lineHeight + 3)

	writeSummary(pdf, tr, r)
	writeOperations(pdf, tr, r)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummary(pdf *gofpdf.Fpdf, tr func(string) string, r service.Report) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Resumo"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Operações", fmt.Sprintf("%d", r.Statistics.TotalOperations)},
		{"Valor total", money(r.Statistics.TotalValue)},
		{"Quantidade total", r.Statistics.TotalQuantity.StringFixed(2) + " L"},
		{"Total de compras", money(r.Difference.TotalPurchases)},
		{"Total de vendas", money(r.Difference.TotalSales)},
		{"Diferença", money(r.Difference.Difference)},
	}
	for _, fuelType := range fuel.FuelTypes {
		rows = append(rows, [2]string{fuelType.Label(), money(r.Statistics.ByFuelType[fuelType])})
	}
	for _, row := range rows {
		pdf.Cell(60, lineHeight, tr(row[0]))
		pdf.Cell(0, lineHeight, tr(row[1]))
		pdf.Ln(lineHeight)
	}

	months := make([]int, 0, len(r.Statistics.ByMonth))
	for m := range r.Statistics.ByMonth {
		months = append(months, m)
	}
	sort.Ints(months)
	if len(months) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, lineHeight, tr("Por mês"))
		pdf.Ln(lineHeight)
		pdf.SetFont("Helvetica", "", 11)
		for _, m := range months {
			month := r.Statistics.ByMonth[m]
			pdf.Cell(60, lineHeight, tr(fuel.MonthLabel(m)))
			pdf.Cell(0, lineHeight, tr(fmt.Sprintf("%s em %d operações", money(month.Value), month.Operations)))
			pdf.Ln(lineHeight)
		}
	}
	pdf.Ln(4)
}

func writeOperations(pdf *gofpdf.Fpdf, tr func(string) string, r service.Report) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Operações (página %d de %d, %d no total)",
		r.Pagination.Page, max(r.Pagination.TotalPages, 1), r.Pagination.Total)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	for _, c := range columns {
		pdf.CellFormat(c.width, lineHeight, tr(c.title), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "", 10)
	if len(r.Operations) == 0 {
		pdf.Cell(0, lineHeight, tr("Nenhuma operação encontrada."))
		pdf.Ln(lineHeight)
		return
	}
	for _, op := range r.Operations {
		values := []string{
			op.CreatedAt.Format("02/01/2006"),
			op.Type.Label(),
			op.FuelType.Label(),
			fmt.Sprintf("%02d/%d", op.Month, op.Year),
			op.Quantity.StringFixed(3),
			money(op.UnitPrice),
			money(op.TotalValue),
		}
		for i, c := range columns {
			pdf.CellFormat(c.width, lineHeight, tr(values[i]), "", 0, "L", false, 0, "")
		}
		pdf.Ln(lineHeight)
	}
}

func describeFilter(f service.OperationFilter) string {
	var parts []string
	if f.Month != nil {
		parts = append(parts, "mês "+fuel.MonthLabel(*f.Month))
	}
	if f.Year != nil {
		parts = append(parts, fmt.Sprintf("ano %d", *f.Year))
	}
	if f.Type != nil {
		parts = append(parts, "tipo "+f.Type.Label())
	}
	if f.FuelType != nil {
		parts = append(parts, "combustível "+f.FuelType.Label())
	}
	if len(parts) == 0 {
		return "nenhum"
	}
	return strings.Join(parts, ", ")
}

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}
