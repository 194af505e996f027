package recordshandler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/docstore"
	"hrdesk/internal/domain/records"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type Handler struct {
	Records *records.Service
}

func NewHandler(recordsSvc *records.Service) *Handler {
	return &Handler{Records: recordsSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/resume", func(r chi.Router) {
		r.With(middleware.RequireStaff).Get("/", h.handleAllResumes)
		r.With(middleware.RequireSelfOrStaff("employeeID")).Get("/employee/{employeeID}", h.handleEmployeeResume)
	})

	r.Route("/skills", func(r chi.Router) {
		r.With(middleware.RequireStaff).Get("/", h.handleAllSkills)
		r.With(middleware.RequireSelfOrStaff("employeeID")).Get("/employee/{employeeID}", h.handleEmployeeSkills)
	})

	r.Route("/private-info", func(r chi.Router) {
		r.With(middleware.RequireSelfOrStaff("employeeID")).Get("/employee/{employeeID}", h.handleEmployeePrivateInfo)
		r.With(middleware.RequireStaff).Put("/employee/{employeeID}", h.handleUpdatePrivateInfo)
	})

	r.Route("/work-info", func(r chi.Router) {
		r.With(middleware.RequireStaff).Get("/", h.handleAllWorkInfo)
		r.With(middleware.RequireSelfOrStaff("employeeID")).Get("/employee/{employeeID}", h.handleEmployeeWorkInfo)
		r.With(middleware.RequireStaff).Put("/employee/{employeeID}", h.handleUpdateWorkData)
	})

	r.Route("/employee-settings", func(r chi.Router) {
		r.With(middleware.RequireStaff).Get("/", h.handleAllSettings)
		r.With(middleware.RequireSelfOrStaff("employeeID")).Get("/employee/{employeeID}", h.handleEmployeeSettings)
		r.With(middleware.RequireStaff).Put("/employee/{employeeID}", h.handleUpdateSettings)
	})

	// Generic family access: {family} is a collection name such as
	// experiences or emergency_contacts.
	r.Route("/records/{family}", func(r chi.Router) {
		r.With(middleware.RequireSelfOrStaff("employeeID")).Get("/employee/{employeeID}", h.handleListFamily)
		r.With(middleware.RequireStaff).Post("/employee/{employeeID}", h.handleCreateRecord)
		r.With(middleware.RequireStaff).Put("/employee/{employeeID}", h.handleUpsertRecord)
		r.With(middleware.RequireStaff).Get("/{recordID}", h.handleGetRecord)
		r.With(middleware.RequireStaff).Put("/{recordID}", h.handleUpdateRecord)
		r.With(middleware.RequireStaff).Delete("/{recordID}", h.handleDeleteRecord)
	})
}

func (h *Handler) handleEmployeeResume(w http.ResponseWriter, r *http.Request) {
	resume, err := h.Records.EmployeeResume(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, resume, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAllResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := h.Records.AllResumes(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, resumes, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployeeSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Records.EmployeeSkills(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, skills, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAllSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Records.AllSkills(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, skills, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployeePrivateInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Records.EmployeePrivateInfo(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, info, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdatePrivateInfo(w http.ResponseWriter, r *http.Request) {
	var payload records.PrivateInfoUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	updated, err := h.Records.UpdatePrivateInfo(r.Context(), chi.URLParam(r, "employeeID"), payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployeeWorkInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Records.EmployeeWorkInfo(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, info, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAllWorkInfo(w http.ResponseWriter, r *http.Request) {
	infos, err := h.Records.ListAll(r.Context(), docstore.WorkInfos)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, infos, middleware.GetRequestID(r.Context()))
}

type workDataRequest struct {
	WorkInfo   records.WorkInfo   `json:"work_info"`
	WorkPermit records.WorkPermit `json:"work_permit"`
}

func (h *Handler) handleUpdateWorkData(w http.ResponseWriter, r *http.Request) {
	var payload workDataRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	info, permit, err := h.Records.UpdateWorkData(r.Context(), chi.URLParam(r, "employeeID"), payload.WorkInfo, payload.WorkPermit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, map[string]any{"work_info": info, "work_permit": permit}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployeeSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Records.GetEmployeeSettings(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, settings, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAllSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Records.ListAll(r.Context(), docstore.EmployeeSettings)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, settings, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	stored, err := h.Records.Upsert(r.Context(), docstore.EmployeeSettings, chi.URLParam(r, "employeeID"), payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, stored, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListFamily(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Records.ListByEmployee(r.Context(), chi.URLParam(r, "family"), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, docs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	stored, err := h.Records.Create(r.Context(), chi.URLParam(r, "family"), chi.URLParam(r, "employeeID"), payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Created(w, stored, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpsertRecord(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	stored, err := h.Records.Upsert(r.Context(), chi.URLParam(r, "family"), chi.URLParam(r, "employeeID"), payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, stored, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Records.Get(r.Context(), chi.URLParam(r, "family"), chi.URLParam(r, "recordID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, doc, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	stored, err := h.Records.Update(r.Context(), chi.URLParam(r, "family"), chi.URLParam(r, "recordID"), payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, stored, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.Records.Delete(r.Context(), chi.URLParam(r, "family"), chi.URLParam(r, "recordID")); err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, records.ErrInvalidID), errors.Is(err, records.ErrUnknownFamily):
		api.Fail(w, http.StatusBadRequest, "invalid_argument", err.Error(), requestID)
	case errors.Is(err, records.ErrRecordNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, docstore.ErrConflict):
		api.Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	default:
		slog.Error("records request failed", "err", err, "path", r.URL.Path)
		api.Fail(w, http.StatusInternalServerError, "internal", "internal server error", requestID)
	}
}
