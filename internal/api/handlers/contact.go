package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meenakannan/portfolio-api/internal/api/httpx"
	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
	"github.com/meenakannan/portfolio-api/internal/services"
)

type ContactHandler struct{ svc *services.ContactService }

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// submissionResp is the trimmed projection returned on create; the
// message body is not echoed back.
type submissionResp struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Contact
	if err := httpx.Decode(w, r, &c); err != nil {
		badBody(w)
		return
	}
	c.Status = "" // submissions always start as "new"

	created, err := h.svc.Submit(r.Context(), c)
	if err != nil {
		fail(w, err, "Contact not found", "Failed to send message")
		return
	}
	httpx.WriteMessage(w, http.StatusCreated, "Message sent successfully", submissionResp{
		ID:      created.ID,
		Name:    created.Name,
		Email:   created.Email,
		Subject: created.Subject,
	})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pg := query.ParsePage(q)
	items, total, err := h.svc.List(r.Context(), query.ContactFilterFrom(q), pg)
	if err != nil {
		fail(w, err, "Contact not found", "Failed to fetch contacts")
		return
	}
	if items == nil {
		items = []models.Contact{}
	}
	httpx.WriteList(w, items, httpx.Pagination{
		Current: pg.Current,
		Pages:   query.Pages(total, pg.Limit),
		Total:   total,
	})
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.ContactStatus `json:"status"`
	}
	if err := httpx.Decode(w, r, &req); err != nil {
		badBody(w)
		return
	}
	c, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		fail(w, err, "Contact not found", "Failed to update contact status")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Contact status updated", c)
}
