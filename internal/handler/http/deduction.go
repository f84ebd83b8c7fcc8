package http

import (
	"net/http"

	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/middleware"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	deductionService deduction.DeductionService
}

func NewDeductionHandler(deductionService deduction.DeductionService) DeductionHandler {
	return &deductionHandlerImpl{deductionService: deductionService}
}

func (h *deductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := deduction.DeductionFilter{EmployeeID: queryString(r, "employee_id")}
	if status := r.URL.Query().Get("status"); status != "" {
		s := deduction.Status(status)
		filter.Status = &s
	}

	result, err := h.deductionService.List(r.Context(), middleware.CallerFromContext(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deductionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Deduction")
	if !ok {
		return
	}

	result, err := h.deductionService.Get(r.Context(), middleware.CallerFromContext(r.Context()), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDeductionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.deductionService.Create(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Kasbon recorded", result)
}

func (h *deductionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Deduction")
	if !ok {
		return
	}

	var req deduction.UpdateDeductionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.deductionService.Update(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Kasbon updated", result)
}

func (h *deductionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Deduction")
	if !ok {
		return
	}

	if err := h.deductionService.Delete(r.Context(), middleware.CallerFromContext(r.Context()), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Kasbon deleted", nil)
}
