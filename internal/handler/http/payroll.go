package http

import (
	"net/http"

	"github.com/konveksi/payroll-backend-go/internal/domain/payroll"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/middleware"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GeneratePayroll(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	SubmitForApproval(w http.ResponseWriter, r *http.Request)
	ApprovePayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PERIODS ==========

func (h *payrollHandlerImpl) GeneratePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.payrollService.GeneratePayroll(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period generated", result)
}

func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	var filter payroll.PeriodFilter
	if status := r.URL.Query().Get("status"); status != "" {
		s := payroll.PeriodStatus(status)
		filter.Status = &s
	}
	filter.Page, _ = queryInt(r, "page")
	filter.Limit, _ = queryInt(r, "limit")

	result, err := h.payrollService.ListPeriods(r.Context(), middleware.CallerFromContext(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, pageMeta(result.Page, result.Limit, result.TotalCount))
}

func (h *payrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Payroll period")
	if !ok {
		return
	}

	result, err := h.payrollService.GetPeriod(r.Context(), middleware.CallerFromContext(r.Context()), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== SUMMARY ==========

func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Payroll period")
	if !ok {
		return
	}

	result, err := h.payrollService.GetSummary(r.Context(), middleware.CallerFromContext(r.Context()), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== WORKFLOW ==========

func (h *payrollHandlerImpl) SubmitForApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Payroll period")
	if !ok {
		return
	}

	result, err := h.payrollService.SubmitForApproval(r.Context(), middleware.CallerFromContext(r.Context()), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll submitted for approval", result)
}

func (h *payrollHandlerImpl) ApprovePayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Payroll period")
	if !ok {
		return
	}

	result, err := h.payrollService.ApprovePayroll(r.Context(), middleware.CallerFromContext(r.Context()), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll approved", result)
}
