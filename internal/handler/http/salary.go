package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/humbingo/hrms-backend-go/internal/domain/auth"
	"github.com/humbingo/hrms-backend-go/internal/domain/salary"
	"github.com/humbingo/hrms-backend-go/internal/handler/http/middleware"
	"github.com/humbingo/hrms-backend-go/internal/handler/http/response"
)

type SalaryHandler struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) *SalaryHandler {
	return &SalaryHandler{salaryService: salaryService}
}

// Create handles POST /api/v1/salaries
func (h *SalaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.salaryService.CreateSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary record created", resp)
}

// Update handles PUT /api/v1/salaries/{id}
func (h *SalaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req salary.UpdateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.salaryService.UpdateSalary(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record updated", resp)
}

// UpdatePaymentStatus handles PATCH /api/v1/salaries/{id}/payment-status
func (h *SalaryHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req salary.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.salaryService.UpdatePaymentStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment status updated", resp)
}

// Get handles GET /api/v1/salaries/{id}
func (h *SalaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.salaryService.GetSalary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !h.canView(r, resp.EmployeeID) {
		response.HandleError(w, salary.ErrSalaryNotFound)
		return
	}

	response.Success(w, resp)
}

// List handles GET /api/v1/salaries
// Non-admin callers only see their own records.
func (h *SalaryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)
	filter := salary.SalaryFilter{
		EmployeeID:    queryString(r, "employee_id"),
		Year:          queryInt(r, "year"),
		Month:         queryInt(r, "month"),
		PaymentStatus: queryString(r, "payment_status"),
		Page:          page,
		PerPage:       perPage,
	}

	if !middleware.IsAdmin(r) {
		employeeID, ok := middleware.CurrentEmployeeID(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		filter.EmployeeID = &employeeID
	}

	resp, total, err := h.salaryService.ListSalaries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp, response.NewMeta(page, perPage, total))
}

// GetSlip handles GET /api/v1/salaries/{id}/slip
func (h *SalaryHandler) GetSlip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.salaryService.GetSalarySlip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !h.canView(r, resp.Salary.EmployeeID) {
		response.HandleError(w, salary.ErrSalaryNotFound)
		return
	}

	response.Success(w, resp)
}

// SendSlip handles POST /api/v1/salaries/{id}/send-slip — admin only
func (h *SalaryHandler) SendSlip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.salaryService.SendSalarySlip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip sent", nil)
}

// canView reports whether the caller may read a record owned by employeeID.
// Non-owners get a not-found rather than a forbidden, so record IDs are
// not probeable.
func (h *SalaryHandler) canView(r *http.Request, employeeID string) bool {
	if middleware.IsAdmin(r) {
		return true
	}
	own, ok := middleware.CurrentEmployeeID(r)
	return ok && own == employeeID
}
