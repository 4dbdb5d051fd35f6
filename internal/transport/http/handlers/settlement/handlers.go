package settlementhandler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"fnf/internal/domain/settlement"
	"fnf/internal/platform/metrics"
	"fnf/internal/transport/http/api"
	"fnf/internal/transport/http/middleware"
	"fnf/internal/transport/http/shared"
)

const (
	opValidation      = "validation"
	opPayrollContext  = "payroll_context"
	opService         = "service"
	opLeaveEncashment = "leave_encashment"
	opFullAndFinal    = "full_and_final"
	opStatementPDF    = "statement_pdf"
	opStatementXLSX   = "statement_xlsx"
)

type Handler struct {
	Service      *settlement.Service
	Metrics      *metrics.Collector
	Logger       *zap.Logger
	AllowedRoles []string
	// RequireAuth turns on bearer-token role checks for every settlement route.
	RequireAuth bool
}

func NewHandler(service *settlement.Service, collector *metrics.Collector, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Service: service, Metrics: collector, Logger: logger.Named("settlement.http")}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settlements/{employeeID}", func(r chi.Router) {
		if h.RequireAuth {
			r.Use(middleware.RequireRole(h.AllowedRoles))
		}
		r.Get("/validation", h.handleValidation)
		r.Get("/payroll-context", h.handlePayrollContext)
		r.Get("/service", h.handleService)
		r.Get("/leave-encashment", h.handleLeaveEncashment)
		r.Get("/full-and-final", h.handleFullAndFinal)
		r.Get("/full-and-final/statement.pdf", h.handleStatementPDF)
		r.Get("/full-and-final/statement.xlsx", h.handleStatementXLSX)
	})
}

type transactionQuery struct {
	TransactionDate string `query:"transaction_date" validate:"omitempty,datetime=2006-01-02"`
}

type payrollQuery struct {
	TransactionDate string `query:"transaction_date" validate:"omitempty,datetime=2006-01-02"`
	PeriodFrom      string `query:"period_from" validate:"omitempty,datetime=2006-01-02"`
	PeriodTo        string `query:"period_to" validate:"omitempty,datetime=2006-01-02"`
}

type asOfQuery struct {
	AsOfDate string `query:"as_of_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) handleValidation(w http.ResponseWriter, r *http.Request) {
	var q transactionQuery
	v := shared.BindQuery(r, &q)
	transactionDate := v.Date("transaction_date", q.TransactionDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := h.Service.ValidateEmployee(r.Context(), chi.URLParam(r, "employeeID"), transactionDate)
	if err != nil {
		h.internalError(w, r, opValidation, err)
		return
	}
	h.respond(w, r, opValidation, result.Status, result)
}

func (h *Handler) handlePayrollContext(w http.ResponseWriter, r *http.Request) {
	var q payrollQuery
	v := shared.BindQuery(r, &q)
	transactionDate := v.Date("transaction_date", q.TransactionDate)
	periodFrom := v.Date("period_from", q.PeriodFrom)
	periodTo := v.Date("period_to", q.PeriodTo)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := h.Service.PayrollContext(r.Context(), chi.URLParam(r, "employeeID"), transactionDate, periodFrom, periodTo)
	if err != nil {
		h.internalError(w, r, opPayrollContext, err)
		return
	}
	h.respond(w, r, opPayrollContext, result.Status, result)
}

func (h *Handler) handleService(w http.ResponseWriter, r *http.Request) {
	var q asOfQuery
	v := shared.BindQuery(r, &q)
	asOf := v.Date("as_of_date", q.AsOfDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := h.Service.EmployeeInfo(r.Context(), chi.URLParam(r, "employeeID"), asOf)
	if err != nil {
		h.internalError(w, r, opService, err)
		return
	}
	h.respond(w, r, opService, result.Status, result)
}

func (h *Handler) handleLeaveEncashment(w http.ResponseWriter, r *http.Request) {
	var q asOfQuery
	v := shared.BindQuery(r, &q)
	asOf := v.Date("as_of_date", q.AsOfDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := h.Service.LeaveEncashment(r.Context(), chi.URLParam(r, "employeeID"), asOf)
	if err != nil {
		h.internalError(w, r, opLeaveEncashment, err)
		return
	}
	h.respond(w, r, opLeaveEncashment, result.Status, result)
}

func (h *Handler) handleFullAndFinal(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.fullAndFinal(w, r, opFullAndFinal)
	if !ok {
		return
	}
	h.respond(w, r, opFullAndFinal, payload.Status, payload)
}

func (h *Handler) handleStatementPDF(w http.ResponseWriter, r *http.Request) {
	h.statement(w, r, opStatementPDF, "application/pdf", "pdf", settlement.WritePDF)
}

func (h *Handler) handleStatementXLSX(w http.ResponseWriter, r *http.Request) {
	h.statement(w, r, opStatementXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", settlement.WriteXLSX)
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request, op, contentType, ext string, render func(io.Writer, settlement.Payload) error) {
	payload, ok := h.fullAndFinal(w, r, op)
	if !ok {
		return
	}
	if !payload.OK {
		h.respond(w, r, op, payload.Status, payload)
		return
	}

	var buf bytes.Buffer
	if err := render(&buf, payload); err != nil {
		h.internalError(w, r, op, err)
		return
	}
	h.record(op, "ok")
	filename := fmt.Sprintf("full-and-final-%s-%s.%s", payload.EmployeeID, payload.AsOfDate, ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.Logger.Warn("write statement failed", zap.String("operation", op), zap.Error(err))
	}
}

// fullAndFinal binds the query and assembles the payload. It reports false after writing an
// error response.
func (h *Handler) fullAndFinal(w http.ResponseWriter, r *http.Request, op string) (settlement.Payload, bool) {
	var q transactionQuery
	v := shared.BindQuery(r, &q)
	transactionDate := v.Date("transaction_date", q.TransactionDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return settlement.Payload{}, false
	}

	payload, err := h.Service.FullAndFinal(r.Context(), chi.URLParam(r, "employeeID"), transactionDate)
	if err != nil {
		h.internalError(w, r, op, err)
		return settlement.Payload{}, false
	}
	return payload, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, op string, status settlement.Status, data any) {
	reqID := middleware.GetRequestID(r.Context())
	if status.OK {
		h.record(op, "ok")
		api.Success(w, data, reqID)
		return
	}
	h.record(op, status.Code)
	api.Unprocessable(w, status.Code, status.Msg, data, reqID)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	reqID := middleware.GetRequestID(r.Context())
	h.record(op, "error")
	h.Logger.Error("settlement operation failed",
		zap.String("operation", op),
		zap.String("employeeId", chi.URLParam(r, "employeeID")),
		zap.String("requestId", reqID),
		zap.Error(err))
	api.Fail(w, http.StatusInternalServerError, "internal_error", "settlement computation failed", reqID)
}

func (h *Handler) record(op, outcome string) {
	if h.Metrics != nil {
		h.Metrics.RecordOutcome(op, outcome)
	}
}
