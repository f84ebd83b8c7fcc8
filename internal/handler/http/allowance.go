package http

import (
	"net/http"

	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/middleware"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/response"
)

type AllowanceHandler interface {
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type allowanceHandlerImpl struct {
	allowanceService allowance.AllowanceService
}

func NewAllowanceHandler(allowanceService allowance.AllowanceService) AllowanceHandler {
	return &allowanceHandlerImpl{allowanceService: allowanceService}
}

// ListByEmployee serves /employees/{id}/allowances.
func (h *allowanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := idParam(w, r, "Employee")
	if !ok {
		return
	}

	result, err := h.allowanceService.ListByEmployee(r.Context(), middleware.CallerFromContext(r.Context()), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create serves POST /employees/{id}/allowances.
func (h *allowanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := idParam(w, r, "Employee")
	if !ok {
		return
	}

	var req allowance.CreateAllowanceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.EmployeeID = employeeID

	result, err := h.allowanceService.Create(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Allowance created", result)
}

func (h *allowanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Allowance")
	if !ok {
		return
	}

	var req allowance.UpdateAllowanceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.allowanceService.Update(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Allowance updated", result)
}

func (h *allowanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Allowance")
	if !ok {
		return
	}

	if err := h.allowanceService.Delete(r.Context(), middleware.CallerFromContext(r.Context()), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Allowance deleted", nil)
}
