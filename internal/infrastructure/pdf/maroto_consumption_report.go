// Package pdf genera el reporte de consumo y costeo de un período de trabajo.
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + nombre del período  │  Desde / Hasta           │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  INSUMOS: Insumo | Grupo | Exist. | Compras | Consumo | Físico…  │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  PORCIONES: Porción | Cant | Costo previsto | Costo              │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-api/internal/application/consumption"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006 15:04"

var _ consumption.ReportGenerator = (*MarotoConsumptionReport)(nil)

// MarotoConsumptionReport implementa consumption.ReportGenerator usando Maroto v2.
type MarotoConsumptionReport struct {
	title string
	loc   *time.Location
}

// NewMarotoConsumptionReport construye el generador. Las fechas se muestran en loc (UTC si es nil).
func NewMarotoConsumptionReport(title string, loc *time.Location) *MarotoConsumptionReport {
	if title == "" {
		title = "Consumo y costeo"
	}
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoConsumptionReport{title: title, loc: loc}
}

// GenerateConsumptionReport genera el PDF y devuelve sus bytes.
func (g *MarotoConsumptionReport) GenerateConsumptionReport(_ context.Context, pc *entity.PeriodicConsumption) ([]byte, error) {
	if pc == nil {
		return nil, fmt.Errorf("pdf: registro de consumo nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(pc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("INSUMOS"))
	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(pc.Items)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("PORCIONES VENDIDAS"))
	m.AddRows(costHeaderRow())
	m.AddRows(costRows(pc.CostItems)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoConsumptionReport) headerRow(pc *entity.PeriodicConsumption) core.Row {
	hasta := "en curso"
	if !pc.EndDate.IsZero() && !pc.EndDate.Equal(pc.StartDate) {
		hasta = pc.EndDate.In(g.loc).Format(dateLayout)
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(pc.Name, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Desde: "+pc.StartDate.In(g.loc).Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 2,
			}),
			text.New("Hasta: "+hasta, props.Text{
				Size: 8, Align: align.Right, Top: 8,
			}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func itemsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("Insumo", 3, align.Left),
		headerCol("Grupo", 1, align.Left),
		headerCol("Exist.", 1, align.Right),
		headerCol("Compras", 1, align.Right),
		headerCol("Consumo", 1, align.Right),
		headerCol("Previsto", 1, align.Right),
		headerCol("Físico", 1, align.Right),
		headerCol("Real", 1, align.Right),
		headerCol("Costo", 2, align.Right),
	)
}

func itemRows(items []entity.PeriodicConsumptionItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for i := range items {
		it := &items[i]
		physical := "-"
		if it.PhysicalInventory != nil {
			physical = qty(*it.PhysicalInventory)
		}
		rows = append(rows, row.New(5).Add(
			cell(it.InventoryItemName, 3, align.Left),
			cell(it.GroupCode, 1, align.Left),
			cell(qty(it.InStock), 1, align.Right),
			cell(qty(it.Purchase), 1, align.Right),
			cell(qty(it.PredictedConsumption()), 1, align.Right),
			cell(qty(it.InventoryPrediction()), 1, align.Right),
			cell(physical, 1, align.Right),
			cell(qty(it.ActualConsumption()), 1, align.Right),
			cell(money(it.Cost), 2, align.Right),
		))
	}
	return rows
}

func costHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("Porción", 6, align.Left),
		headerCol("Cantidad", 2, align.Right),
		headerCol("Costo previsto", 2, align.Right),
		headerCol("Costo", 2, align.Right),
	)
}

func costRows(items []entity.CostItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, ci := range items {
		rows = append(rows, row.New(5).Add(
			cell(portionLabel(ci), 6, align.Left),
			cell(qty(ci.Quantity), 2, align.Right),
			cell(money(ci.CostPrediction), 2, align.Right),
			cell(money(ci.Cost), 2, align.Right),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func portionLabel(ci entity.CostItem) string {
	if ci.PortionName == "" || ci.PortionName == ci.Name {
		return ci.Name
	}
	return ci.Name + " (" + ci.PortionName + ")"
}

func qty(d decimal.Decimal) string {
	return d.Round(3).String()
}

func money(d decimal.Decimal) string {
	return "$" + formatMoney(d.StringFixed(2))
}

// formatMoney inserta puntos de miles en la parte entera y coma decimal.
// Ej: "25000.50" → "25.000,50", "-1234.00" → "-1.234,00"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i+1:]
			break
		}
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if frac != "" {
		return sign + string(buf) + "," + frac
	}
	return sign + string(buf)
}
