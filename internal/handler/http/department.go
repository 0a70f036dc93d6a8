package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/humbingo/hrms-backend-go/internal/domain/department"
	"github.com/humbingo/hrms-backend-go/internal/handler/http/response"
)

type DepartmentHandler struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create handles POST /api/v1/departments
func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.departmentService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", resp)
}

// Update handles PUT /api/v1/departments/{id}
func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.departmentService.UpdateDepartment(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated", resp)
}

// Get handles GET /api/v1/departments/{id}
func (h *DepartmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.departmentService.GetDepartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List handles GET /api/v1/departments
func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)
	filter := department.DepartmentFilter{
		Search:   queryString(r, "search"),
		IsActive: queryBool(r, "is_active"),
		Page:     page,
		PerPage:  perPage,
	}

	resp, total, err := h.departmentService.ListDepartments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp, response.NewMeta(page, perPage, total))
}
