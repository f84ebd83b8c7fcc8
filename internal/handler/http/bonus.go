package http

import (
	"net/http"

	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/middleware"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/response"
)

type BonusHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	bonusService bonus.BonusService
}

func NewBonusHandler(bonusService bonus.BonusService) BonusHandler {
	return &bonusHandlerImpl{bonusService: bonusService}
}

func (h *bonusHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := bonus.BonusFilter{EmployeeID: queryString(r, "employee_id")}
	if month, ok := queryInt(r, "period_month"); ok {
		filter.PeriodMonth = &month
	}
	if year, ok := queryInt(r, "period_year"); ok {
		filter.PeriodYear = &year
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := bonus.Status(status)
		filter.Status = &s
	}

	result, err := h.bonusService.List(r.Context(), middleware.CallerFromContext(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateBonusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.bonusService.Create(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus created, awaiting owner approval", result)
}

func (h *bonusHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Bonus")
	if !ok {
		return
	}

	var req bonus.UpdateBonusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.bonusService.Update(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus updated", result)
}

func (h *bonusHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Bonus")
	if !ok {
		return
	}

	if err := h.bonusService.Delete(r.Context(), middleware.CallerFromContext(r.Context()), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus deleted", nil)
}

func (h *bonusHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Bonus")
	if !ok {
		return
	}

	result, err := h.bonusService.Approve(r.Context(), middleware.CallerFromContext(r.Context()), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus approved", result)
}
