package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/fazenda-api/pkg/logger"
	"github.com/jhoicas/fazenda-api/pkg/metrics"
)

const (
	// HeaderRequestID cabeçalho de correlação devolvido em toda resposta.
	HeaderRequestID = "X-Request-ID"
	localLogger     = "logger"
)

// RequestLogger atribui um request id (reaproveita o do cliente se vier), disponibiliza um
// sublogger com ele em c.Locals e registra método, rota, status e latência ao final, no log
// e nas métricas.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		done := metrics.RequestStarted()
		defer done()

		reqID := c.Get(HeaderRequestID)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		reqLog := log.Component("http").WithStr("request_id", reqID)
		c.Locals(localLogger, reqLog)

		err := c.Next()
		if err != nil {
			// deixa o ErrorHandler do app montar a resposta antes de registrar o status
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		latency := time.Since(start)
		metrics.ObserveHTTP(c.Method(), c.Route().Path, status, latency)

		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.IP()).
			Msg("request")
		return nil
	}
}

// RequestLog devolve o logger da requisição, ou um logger mudo fora do RequestLogger.
func RequestLog(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
