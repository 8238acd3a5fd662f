// Package pdf gera o relatório financeiro em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + período          │  gerado em              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Indicador | Quantidade | Valor                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADO: lucro / prejuízo                                 │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/application/report"
)

var _ report.PDFRenderer = (*MarotoPDFGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 84, Green: 58, Blue: 36}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 30, Green: 120, Blue: 50}
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	title string
}

// NewMarotoPDFGenerator constrói o gerador. title aparece no cabeçalho e nos metadados.
func NewMarotoPDFGenerator(title string) *MarotoPDFGenerator {
	if title == "" {
		title = "Relatório Financeiro"
	}
	return &MarotoPDFGenerator{title: title}
}

// RenderFinancialSummary gera o PDF e devolve os bytes.
func (g *MarotoPDFGenerator) RenderFinancialSummary(_ context.Context, s *dto.RelatorioFinanceiroResponse, geradoEm time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(s, geradoEm))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(4))
	m.AddRows(tableHeaderRow())
	m.AddRows(
		valueRow("Vendas", s.QuantidadeVendas, s.TotalVendas),
		valueRow("Despesas", s.QuantidadeDespesas, s.TotalDespesas),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resultRow(s.Lucro))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(s *dto.RelatorioFinanceiroResponse, geradoEm time.Time) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+Periodo(s.DataInicio, s.DataFim), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+geradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(8).Add(
		h("Indicador", 6, align.Left),
		h("Quantidade", 2, align.Center),
		h("Valor", 4, align.Right),
	)
}

func valueRow(label string, qtd int, valor float64) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 10, Top: 1})),
		col.New(2).Add(text.New(fmt.Sprint(qtd), props.Text{Size: 10, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New(FormatBRL(valor), props.Text{Size: 10, Align: align.Right, Top: 1})),
	)
}

func resultRow(lucro float64) core.Row {
	label, color := "Lucro", colorGreen
	if lucro < 0 {
		label, color = "Prejuízo", colorRed
	}
	return row.New(12).Add(
		col.New(8).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 12, Top: 3, Color: color,
		})),
		col.New(4).Add(text.New(FormatBRL(lucro), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3, Color: color,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// FormatBRL formata um valor em reais no padrão pt-BR. Ex: 1234.5 → "R$ 1.234,50".
func FormatBRL(v float64) string {
	return brl.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}

// Periodo descreve o intervalo do relatório ("todo o período" sem filtros).
func Periodo(inicio, fim *string) string {
	switch {
	case inicio == nil && fim == nil:
		return "todo o período"
	case fim == nil:
		return "a partir de " + brDate(*inicio)
	case inicio == nil:
		return "até " + brDate(*fim)
	default:
		return brDate(*inicio) + " a " + brDate(*fim)
	}
}

func brDate(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}
