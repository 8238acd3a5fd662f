package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fazenda-api/internal/application/report"
)

// ReportHandler expõe os relatórios financeiros.
type ReportHandler struct {
	uc *report.FinancialUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *report.FinancialUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Financeiro godoc
// @Summary      Resumo financeiro
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string  false  "AAAA-MM-DD (inclusive)"
// @Param        data_fim     query  string  false  "AAAA-MM-DD (inclusive)"
// @Success      200  {object}  dto.RelatorioFinanceiroResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /relatorios/financeiro [get]
func (h *ReportHandler) Financeiro(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), c.Query("data_inicio"), c.Query("data_fim"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// FinanceiroPDF mesmo resumo como anexo PDF.
func (h *ReportHandler) FinanceiroPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.SummaryPDF(c.UserContext(), c.Query("data_inicio"), c.Query("data_fim"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-financeiro.pdf"`)
	return c.Send(pdf)
}
