package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meenakannan/portfolio-api/internal/api/httpx"
	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
	"github.com/meenakannan/portfolio-api/internal/services"
)

type ProjectsHandler struct{ svc *services.ProjectService }

func NewProjectsHandler(svc *services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc}
}

func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pg := query.ParsePage(q)
	items, total, err := h.svc.List(r.Context(), query.ProjectFilterFrom(q), pg)
	if err != nil {
		fail(w, err, "Project not found", "Failed to fetch projects")
		return
	}
	if items == nil {
		items = []models.Project{}
	}
	httpx.WriteList(w, items, httpx.Pagination{
		Current: pg.Current,
		Pages:   query.Pages(total, pg.Limit),
		Total:   total,
	})
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err, "Project not found", "Failed to fetch project")
		return
	}
	httpx.WriteData(w, http.StatusOK, p)
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := httpx.Decode(w, r, &p); err != nil {
		badBody(w)
		return
	}
	created, err := h.svc.Create(r.Context(), p)
	if err != nil {
		fail(w, err, "Project not found", "Failed to create project")
		return
	}
	httpx.WriteMessage(w, http.StatusCreated, "Project created successfully", created)
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err, "Project not found", "Failed to update project")
		return
	}
	orig := existing
	if err := httpx.Decode(w, r, &existing); err != nil {
		badBody(w)
		return
	}
	// server-assigned fields are not client-writable
	existing.ID = orig.ID
	existing.CreatedAt = orig.CreatedAt
	existing.UpdatedAt = orig.UpdatedAt

	updated, err := h.svc.Update(r.Context(), existing)
	if err != nil {
		fail(w, err, "Project not found", "Failed to update project")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Project updated successfully", updated)
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, err, "Project not found", "Failed to delete project")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Project deleted successfully", nil)
}
