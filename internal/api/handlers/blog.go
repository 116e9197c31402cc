package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meenakannan/portfolio-api/internal/api/httpx"
	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
	"github.com/meenakannan/portfolio-api/internal/services"
)

type BlogHandler struct{ svc *services.BlogService }

func NewBlogHandler(svc *services.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pg := query.ParsePage(q)
	items, total, err := h.svc.List(r.Context(), query.PostFilterFrom(q), pg)
	if err != nil {
		fail(w, err, "Blog post not found", "Failed to fetch blog posts")
		return
	}
	if items == nil {
		items = []models.BlogPost{}
	}
	httpx.WriteList(w, items, httpx.Pagination{
		Current: pg.Current,
		Pages:   query.Pages(total, pg.Limit),
		Total:   total,
	})
}

// GetBySlug is the public read path; drafts are invisible here.
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		fail(w, err, "Blog post not found", "Failed to fetch blog post")
		return
	}
	httpx.WriteData(w, http.StatusOK, b)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b models.BlogPost
	if err := httpx.Decode(w, r, &b); err != nil {
		badBody(w)
		return
	}
	// counters start at zero no matter what the client sent
	b.Views, b.Likes = 0, 0
	b.PublishedAt = nil

	created, err := h.svc.Create(r.Context(), b)
	if err != nil {
		fail(w, err, "Blog post not found", "Failed to create blog post")
		return
	}
	httpx.WriteMessage(w, http.StatusCreated, "Blog post created successfully", created)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err, "Blog post not found", "Failed to update blog post")
		return
	}
	orig := existing
	if err := httpx.Decode(w, r, &existing); err != nil {
		badBody(w)
		return
	}
	// server-assigned fields are not client-writable; publishedAt stays
	// monotonic and only the publish trigger may set it
	existing.ID = orig.ID
	existing.Views = orig.Views
	existing.Likes = orig.Likes
	existing.PublishedAt = orig.PublishedAt
	existing.CreatedAt = orig.CreatedAt
	existing.UpdatedAt = orig.UpdatedAt

	updated, err := h.svc.Update(r.Context(), existing)
	if err != nil {
		fail(w, err, "Blog post not found", "Failed to update blog post")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Blog post updated successfully", updated)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, err, "Blog post not found", "Failed to delete blog post")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Blog post deleted successfully", nil)
}

func (h *BlogHandler) Like(w http.ResponseWriter, r *http.Request) {
	likes, err := h.svc.Like(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err, "Blog post not found", "Failed to like blog post")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Post liked successfully", map[string]int64{"likes": likes})
}
