package http

import (
	"net/http"

	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/middleware"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.employeeService.Create(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Employee")
	if !ok {
		return
	}

	result, err := h.employeeService.Get(r.Context(), middleware.CallerFromContext(r.Context()), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter employee.EmployeeFilter
	if status := r.URL.Query().Get("status"); status != "" {
		s := employee.Status(status)
		filter.Status = &s
	}
	filter.Search = queryString(r, "search")
	filter.Page, _ = queryInt(r, "page")
	filter.Limit, _ = queryInt(r, "limit")

	result, err := h.employeeService.List(r.Context(), middleware.CallerFromContext(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, pageMeta(result.Page, result.Limit, result.TotalCount))
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Employee")
	if !ok {
		return
	}

	var req employee.UpdateEmployeeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.employeeService.Update(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

func (h *employeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Employee")
	if !ok {
		return
	}

	if err := h.employeeService.Deactivate(r.Context(), middleware.CallerFromContext(r.Context()), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated", nil)
}
