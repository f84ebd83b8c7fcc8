package response

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in ErrorDetail.Code. Generic codes cover transport
// failures; the rest name the domain rule that rejected the request.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeValidation    = "VALIDATION_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeOwnerRequired = "OWNER_REQUIRED"
	CodeInternal      = "INTERNAL_SERVER_ERROR"
	CodeEncoding      = "ENCODING_ERROR"

	CodeEmployeeNotFound  = "EMPLOYEE_NOT_FOUND"
	CodeAllowanceNotFound = "ALLOWANCE_NOT_FOUND"
	CodeBonusNotFound     = "BONUS_NOT_FOUND"
	CodeDeductionNotFound = "DEDUCTION_NOT_FOUND"
	CodePeriodNotFound    = "PERIOD_NOT_FOUND"

	CodeNIKExists          = "NIK_EXISTS"
	CodeEmployeeInactive   = "EMPLOYEE_INACTIVE"
	CodeBonusNotPending    = "BONUS_NOT_PENDING"
	CodeBonusApproved      = "BONUS_ALREADY_APPROVED"
	CodeDeductionNotActive = "DEDUCTION_NOT_ACTIVE"
	CodeDeductionRepaid    = "DEDUCTION_ALREADY_REPAID"
	CodePeriodExists       = "PERIOD_EXISTS"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeApprovalInProgress = "APPROVAL_IN_PROGRESS"
)

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	Meta    *Meta        `json:"meta,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Meta is the paging block of list responses.
type Meta struct {
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
	TotalItems int64 `json:"total_items,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(Response{
			Error: &ErrorDetail{Code: CodeEncoding, Message: "Failed to encode response"},
		})
	}
}

func writeError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	writeJSON(w, statusCode, Response{
		Error: &ErrorDetail{Code: code, Message: message, Details: details},
	})
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func SuccessWithMeta(w http.ResponseWriter, data interface{}, meta *Meta) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data, Meta: meta})
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeError(w, http.StatusBadRequest, CodeBadRequest, message, details)
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeError(w, http.StatusUnprocessableEntity, CodeValidation, "Validation failed", details)
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

// Forbidden takes the rule that denied access, CodeForbidden or CodeOwnerRequired.
func Forbidden(w http.ResponseWriter, code, message string) {
	writeError(w, http.StatusForbidden, code, message, nil)
}

// NotFound takes the code of the missing resource, e.g. CodePeriodNotFound.
func NotFound(w http.ResponseWriter, code, message string) {
	writeError(w, http.StatusNotFound, code, message, nil)
}

// Conflict takes the code of the state rule that rejected the request,
// e.g. CodePeriodExists or CodeApprovalInProgress.
func Conflict(w http.ResponseWriter, code, message string) {
	writeError(w, http.StatusConflict, code, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, CodeInternal, message, nil)
}
