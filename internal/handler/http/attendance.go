package http

import (
	"net/http"

	"github.com/konveksi/payroll-backend-go/internal/domain/attendance"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/middleware"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func rangeRequest(w http.ResponseWriter, r *http.Request) (attendance.RangeRequest, bool) {
	id, ok := idParam(w, r, "Employee")
	if !ok {
		return attendance.RangeRequest{}, false
	}
	return attendance.RangeRequest{
		EmployeeID: id,
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}, true
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req, ok := rangeRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.List(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	req, ok := rangeRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.Summary(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
