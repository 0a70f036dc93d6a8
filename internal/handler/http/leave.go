package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/humbingo/hrms-backend-go/internal/domain/auth"
	"github.com/humbingo/hrms-backend-go/internal/domain/leave"
	"github.com/humbingo/hrms-backend-go/internal/handler/http/middleware"
	"github.com/humbingo/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// Create handles POST /api/v1/leaves
// Non-admin callers may only file leave for themselves.
func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if !middleware.IsAdmin(r) {
		employeeID, ok := middleware.CurrentEmployeeID(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if req.EmployeeID == "" {
			req.EmployeeID = employeeID
		} else if req.EmployeeID != employeeID {
			response.HandleError(w, leave.ErrEmployeeMismatch)
			return
		}
	}

	resp, err := h.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// UpdateStatus handles PATCH /api/v1/leaves/{id}/status — admin approval flow
func (h *LeaveHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req leave.UpdateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.leaveService.UpdateLeaveStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave status updated", resp)
}

// Get handles GET /api/v1/leaves/{id}
func (h *LeaveHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.leaveService.GetLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !middleware.IsAdmin(r) {
		employeeID, ok := middleware.CurrentEmployeeID(r)
		if !ok || resp.EmployeeID != employeeID {
			response.HandleError(w, leave.ErrUnauthorized)
			return
		}
	}

	response.Success(w, resp)
}

// List handles GET /api/v1/leaves
// Non-admin callers only see their own requests.
func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)
	filter := leave.LeaveFilter{
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

	resp, total, err := h.leaveService.ListLeaves(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp, response.NewMeta(page, perPage, total))
}
