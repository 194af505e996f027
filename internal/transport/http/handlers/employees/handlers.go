package employeehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/docstore"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/directory"
	"hrdesk/internal/domain/records"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Directory *directory.Service
	Records   *records.Service
	Auth      *auth.Service
}

func NewHandler(directorySvc *directory.Service, recordsSvc *records.Service, authSvc *auth.Service) *Handler {
	return &Handler{Directory: directorySvc, Records: recordsSvc, Auth: authSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequireStaff).Get("/", h.handleList)
		r.With(middleware.RequireStaff).Get("/views", h.handleAllViews)
		r.With(middleware.RequireStaff).Get("/page", h.handlePage)
		r.With(middleware.RequireStaff).Get("/search", h.handleSearch)
		r.With(middleware.RequireStaff).Get("/stats", h.handleStats)
		r.With(middleware.RequireStaff).Post("/filter", h.handleFilter)
		r.With(middleware.RequireStaff).Get("/position/{position}", h.handleByPosition)
		r.With(middleware.RequireStaff).Get("/tags", h.handleByTags)
		r.With(middleware.RequireStaff).Get("/skills", h.handleBySkill)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreate)
		r.With(middleware.RequireSelfOrStaff("employeeID")).Get("/{employeeID}", h.handleView)
		r.With(middleware.RequireSelfOrStaff("employeeID")).Get("/{employeeID}/resume/pdf", h.handleResumePDF)
		r.With(middleware.RequireAdmin).Put("/{employeeID}", h.handleUpdate)
		r.With(middleware.RequireAdmin).Put("/{employeeID}/role", h.handleChangeRole)
		r.With(middleware.RequireAdmin).Delete("/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Directory.ListEmployees(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAllViews(w http.ResponseWriter, r *http.Request) {
	views, err := h.Directory.AllEmployeeViews(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, views, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	view, err := h.Directory.EmployeeView(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, view, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	p := shared.ParsePagination(r, 20, 100)
	page, err := h.Directory.EmployeesPage(r.Context(), p.Page, p.Limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, page, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Directory.SearchEmployees(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Directory.EmployeeStats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleFilter(w http.ResponseWriter, r *http.Request) {
	var filter directory.Filter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	employees, err := h.Directory.FilterEmployees(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleByPosition(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Directory.EmployeesByPosition(r.Context(), chi.URLParam(r, "position"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleByTags(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("tags")
	if raw == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_argument", "tags query parameter is required", middleware.GetRequestID(r.Context()))
		return
	}
	employees, err := h.Directory.EmployeesByTags(r.Context(), strings.Split(raw, ","))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBySkill(w http.ResponseWriter, r *http.Request) {
	skill := r.URL.Query().Get("skill")
	if skill == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_argument", "skill query parameter is required", middleware.GetRequestID(r.Context()))
		return
	}
	ids, err := h.Records.EmployeesWithSkill(r.Context(), skill)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	employees := []directory.Employee{}
	for _, id := range ids {
		emp, err := h.Directory.GetEmployee(r.Context(), id)
		if err != nil {
			if errors.Is(err, directory.ErrEmployeeNotFound) {
				continue
			}
			h.fail(w, r, err)
			return
		}
		employees = append(employees, *emp)
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var employee directory.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	created, err := h.Directory.CreateEmployee(r.Context(), &employee)
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
	updated, err := h.Directory.UpdateEmployee(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	var payload changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	account, err := h.Auth.ChangeRole(r.Context(), chi.URLParam(r, "employeeID"), payload.Role)
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		switch {
		case errors.Is(err, auth.ErrInvalidRole), errors.Is(err, auth.ErrInvalidID):
			api.Fail(w, http.StatusBadRequest, "invalid_argument", err.Error(), requestID)
		case errors.Is(err, auth.ErrAccountNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "account not found", requestID)
		default:
			slog.Error("role change failed", "err", err)
			api.Fail(w, http.StatusInternalServerError, "internal", "internal server error", requestID)
		}
		return
	}

	api.Success(w, account.Summary(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Directory.DeleteEmployee(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, directory.ErrInvalidID), errors.Is(err, directory.ErrMissingField), errors.Is(err, records.ErrInvalidID):
		api.Fail(w, http.StatusBadRequest, "invalid_argument", err.Error(), requestID)
	case errors.Is(err, directory.ErrEmployeeNotFound), errors.Is(err, directory.ErrDepartmentNotFound), errors.Is(err, records.ErrRecordNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, docstore.ErrConflict):
		api.Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	default:
		slog.Error("employee request failed", "err", err, "path", r.URL.Path)
		api.Fail(w, http.StatusInternalServerError, "internal", "internal server error", requestID)
	}
}
