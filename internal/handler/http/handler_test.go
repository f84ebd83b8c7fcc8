package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
	"github.com/konveksi/payroll-backend-go/internal/domain/attendance"
	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/payroll"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/response"
	"github.com/konveksi/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret = "test-secret-key-for-jwt"
	periodID          = "0199a1b2-0000-7000-8000-000000000001"
	employeeID        = "0199a1b2-0000-7000-8000-000000000002"
)

type stubEmployeeService struct {
	employee.EmployeeService
	lastCaller user.Caller
	lastCreate employee.CreateEmployeeRequest
	listResp   employee.ListEmployeeResponse
}

func (s *stubEmployeeService) Create(_ context.Context, caller user.Caller, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	s.lastCaller, s.lastCreate = caller, req
	return employee.Employee{ID: employeeID, NIK: req.NIK, Name: req.Name, Status: employee.StatusActive}, nil
}

func (s *stubEmployeeService) List(_ context.Context, caller user.Caller, _ employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	s.lastCaller = caller
	return s.listResp, nil
}

func (s *stubEmployeeService) Get(_ context.Context, _ user.Caller, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type stubPayrollService struct {
	payroll.PayrollService
	approveErr   error
	approvedBy   user.Caller
	generateReq  payroll.GeneratePayrollRequest
	generatedFor user.Caller
}

func (s *stubPayrollService) GeneratePayroll(_ context.Context, caller user.Caller, req payroll.GeneratePayrollRequest) (payroll.Period, error) {
	s.generatedFor, s.generateReq = caller, req
	if err := req.Validate(); err != nil {
		return payroll.Period{}, err
	}
	return payroll.Period{ID: periodID, Name: "Maret 2025", Status: payroll.PeriodStatusDraft}, nil
}

func (s *stubPayrollService) ApprovePayroll(_ context.Context, caller user.Caller, id string) (payroll.ApprovalResult, error) {
	s.approvedBy = caller
	if s.approveErr != nil {
		return payroll.ApprovalResult{}, s.approveErr
	}
	return payroll.ApprovalResult{Period: payroll.Period{ID: id, Status: payroll.PeriodStatusApproved}}, nil
}

type stubBonusService struct {
	bonus.BonusService
}

func (s *stubBonusService) Approve(_ context.Context, _ user.Caller, id string) (bonus.Bonus, error) {
	return bonus.Bonus{ID: id, Status: bonus.StatusApproved}, nil
}

type testServer struct {
	router     http.Handler
	jwt        jwt.Service
	employees  *stubEmployeeService
	payrollSvc *stubPayrollService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	employees := &stubEmployeeService{}
	payrollSvc := &stubPayrollService{}

	router := NewRouter(
		RouterOptions{AppName: "payroll-test", Version: "test", Env: "test", FrontendURL: "http://localhost:3000", LogLevel: slog.LevelError},
		jwtService,
		NewEmployeeHandler(employees),
		NewAttendanceHandler(struct{ attendance.AttendanceService }{}),
		NewAllowanceHandler(struct{ allowance.AllowanceService }{}),
		NewBonusHandler(&stubBonusService{}),
		NewDeductionHandler(struct{ deduction.DeductionService }{}),
		NewPayrollHandler(payrollSvc),
	)
	return &testServer{router: router, jwt: jwtService, employees: employees, payrollSvc: payrollSvc}
}

func (s *testServer) do(t *testing.T, method, path string, role user.Role, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		token, _, err := s.jwt.GenerateAccessToken(string(role)+"-1", role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var resp response.Response
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestRouter_RequiresToken(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := srv.do(t, http.MethodGet, "/api/v1/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RejectsForgedToken(t *testing.T) {
	srv := newTestServer(t)
	forged, _, err := jwt.NewJWTService("not-the-secret", "1h").GenerateAccessToken("owner-1", user.RoleOwner)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_EmployeeRoleIsForbidden(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := srv.do(t, http.MethodGet, "/api/v1/employees", user.RoleEmployee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.CodeForbidden, resp.Error.Code)
}

func TestEmployeeHandler_CreatePassesCaller(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := srv.do(t, http.MethodPost, "/api/v1/employees", user.RoleManager, map[string]interface{}{
		"nik": "KNV-001", "name": "Siti", "daily_rate": 150000, "join_date": "2024-01-02",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, user.Caller{ID: "manager-1", Role: user.RoleManager}, srv.employees.lastCaller)
	assert.Equal(t, "KNV-001", srv.employees.lastCreate.NIK)
	assert.Equal(t, int64(150000), srv.employees.lastCreate.DailyRate)
}

func TestEmployeeHandler_ListMeta(t *testing.T) {
	srv := newTestServer(t)
	srv.employees.listResp = employee.ListEmployeeResponse{
		Data:       []employee.Employee{{ID: employeeID, NIK: "KNV-001"}},
		TotalCount: 41,
		Page:       2,
		Limit:      20,
	}

	rec, resp := srv.do(t, http.MethodGet, "/api/v1/employees?page=2&limit=20", user.RoleOwner, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Equal(t, int64(41), resp.Meta.TotalItems)
}

func TestEmployeeHandler_InvalidAndMissingIDs(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := srv.do(t, http.MethodGet, "/api/v1/employees/not-a-uuid", user.RoleManager, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp := srv.do(t, http.MethodGet, "/api/v1/employees/"+employeeID, user.RoleManager, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.CodeEmployeeNotFound, resp.Error.Code)
}

func TestPayrollHandler_Generate(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := srv.do(t, http.MethodPost, "/api/v1/payroll/periods", user.RoleManager, map[string]string{
		"start_date": "2025-03-01", "end_date": "2025-03-31",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "2025-03-01", srv.payrollSvc.generateReq.StartDate)

	rec, resp = srv.do(t, http.MethodPost, "/api/v1/payroll/periods", user.RoleManager, map[string]string{
		"start_date": "2025-03-31", "end_date": "2025-03-01",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "end_date")
}

func TestPayrollHandler_MalformedBody(t *testing.T) {
	srv := newTestServer(t)
	token, _, err := srv.jwt.GenerateAccessToken("manager-1", user.RoleManager)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/periods", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollHandler_ApproveOwnerOnly(t *testing.T) {
	srv := newTestServer(t)
	path := "/api/v1/payroll/periods/" + periodID + "/approve"

	rec, resp := srv.do(t, http.MethodPost, path, user.RoleManager, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.CodeOwnerRequired, resp.Error.Code)
	assert.Equal(t, "Owner access required", resp.Error.Message)

	rec, resp = srv.do(t, http.MethodPost, path, user.RoleOwner, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, user.RoleOwner, srv.payrollSvc.approvedBy.Role)
}

func TestPayrollHandler_ApproveConflict(t *testing.T) {
	srv := newTestServer(t)
	srv.payrollSvc.approveErr = payroll.ErrApprovalInProgress

	rec, resp := srv.do(t, http.MethodPost, "/api/v1/payroll/periods/"+periodID+"/approve", user.RoleOwner, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.CodeApprovalInProgress, resp.Error.Code)
}

func TestBonusHandler_ApproveOwnerOnly(t *testing.T) {
	srv := newTestServer(t)
	path := "/api/v1/bonuses/" + employeeID + "/approve"

	rec, _ := srv.do(t, http.MethodPost, path, user.RoleManager, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = srv.do(t, http.MethodPost, path, user.RoleOwner, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
