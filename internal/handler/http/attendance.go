package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/humbingo/hrms-backend-go/internal/domain/attendance"
	"github.com/humbingo/hrms-backend-go/internal/domain/auth"
	"github.com/humbingo/hrms-backend-go/internal/handler/http/middleware"
	"github.com/humbingo/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckIn handles POST /api/v1/attendance/check-in
// The employee is taken from the session, not the request body.
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.CurrentEmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.attendanceService.CheckIn(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", resp)
}

// CheckOut handles POST /api/v1/attendance/check-out
func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.CurrentEmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.attendanceService.CheckOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", resp)
}

// Mark handles POST /api/v1/attendance/mark — admin record or override
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", resp)
}

// Get handles GET /api/v1/attendance/{id}
func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !middleware.IsAdmin(r) {
		employeeID, ok := middleware.CurrentEmployeeID(r)
		if !ok || resp.EmployeeID != employeeID {
			response.HandleError(w, attendance.ErrUnauthorized)
			return
		}
	}

	response.Success(w, resp)
}

// List handles GET /api/v1/attendance
// Non-admin callers only see their own records.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)
	filter := attendance.AttendanceFilter{
		EmployeeID: queryString(r, "employee_id"),
		Status:     queryString(r, "status"),
		DateFrom:   queryString(r, "date_from"),
		DateTo:     queryString(r, "date_to"),
		Page:       page,
		PerPage:    perPage,
	}

	if !middleware.IsAdmin(r) {
		employeeID, ok := middleware.CurrentEmployeeID(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		filter.EmployeeID = &employeeID
	}

	resp, total, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp, response.NewMeta(page, perPage, total))
}

// Summary handles GET /api/v1/attendance/summary
func (h *AttendanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if !middleware.IsAdmin(r) {
		own, ok := middleware.CurrentEmployeeID(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		employeeID = own
	}
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if v := queryInt(r, "year"); v != nil {
		year = *v
	}
	if v := queryInt(r, "month"); v != nil {
		month = *v
	}
	if month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	totalWorkingDays := 0
	if v := queryInt(r, "total_working_days"); v != nil {
		totalWorkingDays = *v
	}

	resp, err := h.attendanceService.GetMonthlySummary(r.Context(), employeeID, year, month, totalWorkingDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
