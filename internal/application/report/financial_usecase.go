// Package report agrega vendas e despesas em resumos financeiros.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/domain"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
)

// PDFRenderer gera o documento PDF de um resumo financeiro.
type PDFRenderer interface {
	RenderFinancialSummary(ctx context.Context, s *dto.RelatorioFinanceiroResponse, geradoEm time.Time) ([]byte, error)
}

// FinancialUseCase calcula o resumo financeiro de um período.
type FinancialUseCase struct {
	vendas   repository.VendaRepository
	despesas repository.DespesaRepository
	pdf      PDFRenderer
	now      func() time.Time
}

// NewFinancialUseCase constrói o caso de uso. pdf pode ser nil se o PDF não for exposto.
func NewFinancialUseCase(vendas repository.VendaRepository, despesas repository.DespesaRepository, pdf PDFRenderer) *FinancialUseCase {
	return &FinancialUseCase{vendas: vendas, despesas: despesas, pdf: pdf, now: time.Now}
}

// Summary soma vendas (por data_venda) e despesas (por data) no intervalo fechado
// [inicio, fim]. Datas vazias não filtram. A comparação é lexical sobre a parte
// YYYY-MM-DD, válida porque datas ISO ordenam como o calendário.
func (uc *FinancialUseCase) Summary(ctx context.Context, inicio, fim string) (*dto.RelatorioFinanceiroResponse, error) {
	if err := checkDate("data_inicio", inicio); err != nil {
		return nil, err
	}
	if err := checkDate("data_fim", fim); err != nil {
		return nil, err
	}

	vendas, err := uc.vendas.List(ctx)
	if err != nil {
		return nil, err
	}
	despesas, err := uc.despesas.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.RelatorioFinanceiroResponse{DataInicio: optional(inicio), DataFim: optional(fim)}
	totalVendas := decimal.Zero
	for _, v := range vendas {
		if inRange(v.DataVenda, inicio, fim) {
			totalVendas = totalVendas.Add(decimal.NewFromFloat(v.ValorTotal))
			out.QuantidadeVendas++
		}
	}
	totalDespesas := decimal.Zero
	for _, d := range despesas {
		if inRange(d.Data, inicio, fim) {
			totalDespesas = totalDespesas.Add(decimal.NewFromFloat(d.Valor))
			out.QuantidadeDespesas++
		}
	}
	out.TotalVendas = totalVendas.Round(2).InexactFloat64()
	out.TotalDespesas = totalDespesas.Round(2).InexactFloat64()
	out.Lucro = totalVendas.Sub(totalDespesas).Round(2).InexactFloat64()
	return out, nil
}

// SummaryPDF gera o mesmo resumo em PDF.
func (uc *FinancialUseCase) SummaryPDF(ctx context.Context, inicio, fim string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("report: gerador de PDF não configurado")
	}
	s, err := uc.Summary(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RenderFinancialSummary(ctx, s, uc.now())
}

func checkDate(name, s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("%w: %s deve estar no formato AAAA-MM-DD", domain.ErrInvalidInput, name)
	}
	return nil
}

func inRange(date, inicio, fim string) bool {
	if len(date) > len(time.DateOnly) {
		date = date[:len(time.DateOnly)]
	}
	if inicio != "" && date < inicio {
		return false
	}
	if fim != "" && date > fim {
		return false
	}
	return true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
