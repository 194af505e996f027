package departmenthandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/docstore"
	"hrdesk/internal/domain/directory"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type Handler struct {
	Directory *directory.Service
}

func NewHandler(directorySvc *directory.Service) *Handler {
	return &Handler{Directory: directorySvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.With(middleware.RequireStaff).Get("/", h.handleList)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreate)
		r.With(middleware.RequireStaff).Get("/{departmentID}", h.handleGet)
		r.With(middleware.RequireAdmin).Put("/{departmentID}", h.handleUpdate)
		r.With(middleware.RequireAdmin).Delete("/{departmentID}", h.handleDelete)
		r.With(middleware.RequireStaff).Get("/{departmentID}/employees", h.handleEmployees)
		r.With(middleware.RequireAdmin).Put("/{departmentID}/assign-manager", h.handleAssignManager)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Directory.ListDepartments(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, departments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	department, err := h.Directory.GetDepartment(r.Context(), chi.URLParam(r, "departmentID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, department, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var department directory.Department
	if err := json.NewDecoder(r.Body).Decode(&department); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	created, err := h.Directory.CreateDepartment(r.Context(), &department)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	patch := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	updated, err := h.Directory.UpdateDepartment(r.Context(), chi.URLParam(r, "departmentID"), patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Directory.DeleteDepartment(r.Context(), chi.URLParam(r, "departmentID")); err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Directory.EmployeesByDepartment(r.Context(), chi.URLParam(r, "departmentID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

type assignManagerRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (h *Handler) handleAssignManager(w http.ResponseWriter, r *http.Request) {
	var payload assignManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	result, err := h.Directory.AssignManager(r.Context(), chi.URLParam(r, "departmentID"), payload.EmployeeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, directory.ErrInvalidID), errors.Is(err, directory.ErrMissingField):
		api.Fail(w, http.StatusBadRequest, "invalid_argument", err.Error(), requestID)
	case errors.Is(err, directory.ErrDepartmentNotFound), errors.Is(err, directory.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, docstore.ErrConflict):
		api.Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	default:
		slog.Error("department request failed", "err", err, "path", r.URL.Path)
		api.Fail(w, http.StatusInternalServerError, "internal", "internal server error", requestID)
	}
}
