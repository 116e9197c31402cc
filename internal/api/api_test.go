package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/meenakannan/portfolio-api/internal/api/httpx"
	"github.com/meenakannan/portfolio-api/internal/config"
	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/repository/mock"
	"github.com/meenakannan/portfolio-api/internal/services"
	"github.com/meenakannan/portfolio-api/internal/worker"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (s *recordingSender) Send(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (s *recordingSender) all() []sentMail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMail(nil), s.sent...)
}

type testEnv struct {
	h        http.Handler
	projects *mock.ProjectsRepo
	posts    *mock.PostsRepo
	contacts *mock.ContactsRepo
	sender   *recordingSender
	wp       *worker.Pool
	stopOnce sync.Once
}

// drain waits for queued notification jobs to finish.
func (e *testEnv) drain() { e.stopOnce.Do(e.wp.Stop) }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		projects: mock.NewProjects(),
		posts:    mock.NewPosts(),
		contacts: mock.NewContacts(),
		sender:   &recordingSender{},
		wp:       worker.NewPool(1),
	}
	cfg := config.Config{Env: "test", CORSOrigins: []string{"*"}, EmailUser: "meena@example.com"}
	env.h = NewRouter(cfg,
		services.NewProjectService(env.projects),
		services.NewBlogService(env.posts),
		services.NewContactService(env.contacts, env.sender, env.wp, cfg.EmailUser),
	)
	t.Cleanup(env.drain)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (int, httpx.Envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.h.ServeHTTP(rec, req)

	var env struct {
		Status     string            `json:"status"`
		Message    string            `json:"message"`
		Data       json.RawMessage   `json:"data"`
		Pagination *httpx.Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", rec.Body.String(), err)
	}
	return rec.Code, httpx.Envelope{
		Status:     env.Status,
		Message:    env.Message,
		Data:       env.Data,
		Pagination: env.Pagination,
	}
}

func dataInto(t *testing.T, env httpx.Envelope, v any) {
	t.Helper()
	raw, ok := env.Data.(json.RawMessage)
	if !ok || raw == nil {
		t.Fatalf("envelope has no data: %+v", env)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	code, resp := env.do(t, http.MethodGet, "/api/health", nil)
	if code != http.StatusOK || resp.Status != "success" {
		t.Fatalf("health = %d %q", code, resp.Status)
	}
}

func TestRouteNotFound(t *testing.T) {
	env := newTestEnv(t)
	code, resp := env.do(t, http.MethodGet, "/api/nothing-here", nil)
	if code != http.StatusNotFound || resp.Status != "error" {
		t.Fatalf("got %d %q, want 404 error envelope", code, resp.Status)
	}
}

func validProjectBody() map[string]any {
	return map[string]any{
		"title":        "Portfolio Site",
		"description":  "A personal portfolio",
		"image":        "/images/p.png",
		"technologies": []string{"Go", "React"},
		"liveUrl":      "https://example.com",
	}
}

func TestProjectCRUD(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodPost, "/api/projects", validProjectBody())
	if code != http.StatusCreated {
		t.Fatalf("create = %d (%s)", code, resp.Message)
	}
	var created models.Project
	dataInto(t, resp, &created)
	if created.ID == "" || created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("create must assign id and timestamps")
	}
	if created.Category != models.CategoryWeb || created.Status != models.StatusCompleted {
		t.Errorf("defaults not applied: %q %q", created.Category, created.Status)
	}

	code, resp = env.do(t, http.MethodGet, "/api/projects/"+created.ID, nil)
	if code != http.StatusOK {
		t.Fatalf("get = %d", code)
	}
	var got models.Project
	dataInto(t, resp, &got)
	if got.Title != "Portfolio Site" || got.LiveURL != "https://example.com" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	// partial update: only the title travels in the body
	code, resp = env.do(t, http.MethodPut, "/api/projects/"+created.ID, map[string]any{"title": "Renamed"})
	if code != http.StatusOK {
		t.Fatalf("update = %d (%s)", code, resp.Message)
	}
	var updated models.Project
	dataInto(t, resp, &updated)
	if updated.Title != "Renamed" || updated.Description != created.Description {
		t.Errorf("partial update went wrong: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Error("update must not reassign the id")
	}

	code, _ = env.do(t, http.MethodDelete, "/api/projects/"+created.ID, nil)
	if code != http.StatusOK {
		t.Fatalf("delete = %d", code)
	}
	code, _ = env.do(t, http.MethodGet, "/api/projects/"+created.ID, nil)
	if code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", code)
	}
	code, _ = env.do(t, http.MethodDelete, "/api/projects/"+created.ID, nil)
	if code != http.StatusNotFound {
		t.Fatalf("delete of missing id = %d, want 404", code)
	}
}

func TestProjectValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	body := validProjectBody()
	delete(body, "title")
	code, resp := env.do(t, http.MethodPost, "/api/projects", body)
	if code != http.StatusBadRequest || resp.Status != "error" {
		t.Fatalf("missing title = %d %q", code, resp.Status)
	}

	body = validProjectBody()
	body["githubUrl"] = "not-a-url"
	if code, _ := env.do(t, http.MethodPost, "/api/projects", body); code != http.StatusBadRequest {
		t.Fatalf("bad url = %d, want 400", code)
	}

	body = validProjectBody()
	body["category"] = "embedded"
	if code, _ := env.do(t, http.MethodPost, "/api/projects", body); code != http.StatusBadRequest {
		t.Fatalf("bad category = %d, want 400", code)
	}
}

func TestProjectFeaturedFilter(t *testing.T) {
	env := newTestEnv(t)

	featured := validProjectBody()
	featured["featured"] = true
	env.do(t, http.MethodPost, "/api/projects", featured)
	env.do(t, http.MethodPost, "/api/projects", validProjectBody())

	code, resp := env.do(t, http.MethodGet, "/api/projects?featured=true", nil)
	if code != http.StatusOK {
		t.Fatalf("list = %d", code)
	}
	var items []models.Project
	dataInto(t, resp, &items)
	if len(items) != 1 || !items[0].Featured {
		t.Fatalf("featured=true returned %d items", len(items))
	}

	_, resp = env.do(t, http.MethodGet, "/api/projects", nil)
	dataInto(t, resp, &items)
	if len(items) != 2 {
		t.Fatalf("unfiltered list returned %d items, want 2", len(items))
	}
	// default sort puts the featured project first
	if !items[0].Featured {
		t.Error("featured projects must sort first")
	}
}

func TestProjectPagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 3; i++ {
		body := validProjectBody()
		body["title"] = fmt.Sprintf("Project %d", i)
		env.do(t, http.MethodPost, "/api/projects", body)
	}

	_, resp := env.do(t, http.MethodGet, "/api/projects?limit=2", nil)
	var items []models.Project
	dataInto(t, resp, &items)
	if len(items) != 2 {
		t.Fatalf("page 1 has %d items, want 2", len(items))
	}
	if resp.Pagination == nil || resp.Pagination.Pages != 2 || resp.Pagination.Total != 3 {
		t.Fatalf("pagination = %+v", resp.Pagination)
	}

	// beyond the last page: empty list, same total
	_, resp = env.do(t, http.MethodGet, "/api/projects?limit=2&page=99", nil)
	items = nil
	dataInto(t, resp, &items)
	if len(items) != 0 {
		t.Fatalf("page 99 has %d items, want 0", len(items))
	}
	if resp.Pagination == nil || resp.Pagination.Total != 3 {
		t.Fatalf("pagination on empty page = %+v", resp.Pagination)
	}
}

func validPostBody() map[string]any {
	return map[string]any{
		"title":    "Hi",
		"slug":     "hi",
		"excerpt":  "e",
		"content":  "c",
		"readTime": 1,
	}
}

func TestBlogCreatePublished(t *testing.T) {
	env := newTestEnv(t)

	body := validPostBody()
	body["published"] = true
	code, resp := env.do(t, http.MethodPost, "/api/blog", body)
	if code != http.StatusCreated {
		t.Fatalf("create = %d (%s)", code, resp.Message)
	}
	var post models.BlogPost
	dataInto(t, resp, &post)
	if post.PublishedAt == nil {
		t.Error("publishing on create must set publishedAt")
	}
	if post.Views != 0 || post.Likes != 0 {
		t.Errorf("counters must start at zero, got views=%d likes=%d", post.Views, post.Likes)
	}
	if post.Author != models.DefaultAuthor {
		t.Errorf("author default = %q", post.Author)
	}
}

func TestBlogDuplicateSlug(t *testing.T) {
	env := newTestEnv(t)

	if code, _ := env.do(t, http.MethodPost, "/api/blog", validPostBody()); code != http.StatusCreated {
		t.Fatal("first create should succeed")
	}
	code, resp := env.do(t, http.MethodPost, "/api/blog", validPostBody())
	if code != http.StatusBadRequest {
		t.Fatalf("duplicate slug = %d, want 400", code)
	}
	if resp.Status != "error" {
		t.Errorf("status = %q", resp.Status)
	}

	// nothing extra was persisted
	_, resp = env.do(t, http.MethodGet, "/api/blog?published=false", nil)
	if resp.Pagination == nil || resp.Pagination.Total != 1 {
		t.Fatalf("total = %+v, want 1", resp.Pagination)
	}
}

func TestBlogPublishedAtMonotonic(t *testing.T) {
	env := newTestEnv(t)

	body := validPostBody()
	body["published"] = true
	_, resp := env.do(t, http.MethodPost, "/api/blog", body)
	var post models.BlogPost
	dataInto(t, resp, &post)
	if post.PublishedAt == nil {
		t.Fatal("publishedAt not set on create")
	}
	publishedAt := *post.PublishedAt

	code, resp := env.do(t, http.MethodPut, "/api/blog/"+post.ID, map[string]any{"published": false})
	if code != http.StatusOK {
		t.Fatalf("update = %d (%s)", code, resp.Message)
	}
	dataInto(t, resp, &post)
	if post.Published {
		t.Error("published flag should be off")
	}
	if post.PublishedAt == nil || !post.PublishedAt.Equal(publishedAt) {
		t.Error("unpublishing must not clear or move publishedAt")
	}
}

func TestBlogGetBySlug(t *testing.T) {
	env := newTestEnv(t)

	// a draft is invisible on the public path
	draft := validPostBody()
	draft["slug"] = "draft-post"
	env.do(t, http.MethodPost, "/api/blog", draft)
	if code, _ := env.do(t, http.MethodGet, "/api/blog/draft-post", nil); code != http.StatusNotFound {
		t.Fatalf("draft lookup = %d, want 404", code)
	}

	live := validPostBody()
	live["slug"] = "live-post"
	live["published"] = true
	live["content"] = "full content here"
	env.do(t, http.MethodPost, "/api/blog", live)

	code, resp := env.do(t, http.MethodGet, "/api/blog/live-post", nil)
	if code != http.StatusOK {
		t.Fatalf("get = %d", code)
	}
	var post models.BlogPost
	dataInto(t, resp, &post)
	if post.Content != "full content here" {
		t.Error("get by slug must include content")
	}
	// the bump lands after the read: first response still shows 0
	if post.Views != 0 {
		t.Errorf("first read views = %d, want 0", post.Views)
	}
	_, resp = env.do(t, http.MethodGet, "/api/blog/live-post", nil)
	dataInto(t, resp, &post)
	if post.Views != 1 {
		t.Errorf("second read views = %d, want 1", post.Views)
	}
}

func TestBlogListExcludesContent(t *testing.T) {
	env := newTestEnv(t)
	body := validPostBody()
	body["published"] = true
	env.do(t, http.MethodPost, "/api/blog", body)

	_, resp := env.do(t, http.MethodGet, "/api/blog", nil)
	var items []map[string]any
	dataInto(t, resp, &items)
	if len(items) != 1 {
		t.Fatalf("list has %d items", len(items))
	}
	if _, ok := items[0]["content"]; ok {
		t.Error("list items must not carry content")
	}
}

func TestBlogListPublishedDefault(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/blog", validPostBody()) // draft
	live := validPostBody()
	live["slug"] = "live"
	live["published"] = true
	env.do(t, http.MethodPost, "/api/blog", live)

	_, resp := env.do(t, http.MethodGet, "/api/blog", nil)
	if resp.Pagination == nil || resp.Pagination.Total != 1 {
		t.Fatalf("default list total = %+v, want 1", resp.Pagination)
	}

	_, resp = env.do(t, http.MethodGet, "/api/blog?published=false", nil)
	if resp.Pagination == nil || resp.Pagination.Total != 2 {
		t.Fatalf("published=false total = %+v, want 2", resp.Pagination)
	}
}

func TestBlogLike(t *testing.T) {
	env := newTestEnv(t)
	_, resp := env.do(t, http.MethodPost, "/api/blog", validPostBody())
	var post models.BlogPost
	dataInto(t, resp, &post)

	for want := int64(1); want <= 3; want++ {
		code, resp := env.do(t, http.MethodPost, "/api/blog/"+post.ID+"/like", nil)
		if code != http.StatusOK {
			t.Fatalf("like = %d", code)
		}
		var data struct {
			Likes int64 `json:"likes"`
		}
		dataInto(t, resp, &data)
		if data.Likes != want {
			t.Fatalf("likes = %d, want %d", data.Likes, want)
		}
	}

	if code, _ := env.do(t, http.MethodPost, "/api/blog/nope/like", nil); code != http.StatusNotFound {
		t.Fatalf("like on missing id = %d, want 404", code)
	}
}

func validContactBody() map[string]any {
	return map[string]any{
		"name":    "Ada Lovelace",
		"email":   "Ada@Example.com",
		"subject": "Hello",
		"message": "Line one\nLine two",
	}
}

func TestContactCreateNotifies(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodPost, "/api/contact", validContactBody())
	if code != http.StatusCreated {
		t.Fatalf("create = %d (%s)", code, resp.Message)
	}
	var data map[string]any
	dataInto(t, resp, &data)
	if data["id"] == "" || data["name"] != "Ada Lovelace" || data["subject"] != "Hello" {
		t.Errorf("trimmed projection wrong: %v", data)
	}
	if data["email"] != "ada@example.com" {
		t.Errorf("email should be lowercased, got %v", data["email"])
	}
	if _, ok := data["message"]; ok {
		t.Error("create response must not echo the message body")
	}

	env.drain()
	sent := env.sender.all()
	if len(sent) != 2 {
		t.Fatalf("sent %d mails, want 2", len(sent))
	}
	if sent[0].To != "meena@example.com" {
		t.Errorf("notification went to %q", sent[0].To)
	}
	if sent[1].To != "ada@example.com" {
		t.Errorf("auto-reply went to %q", sent[1].To)
	}
}

func TestContactCreateSurvivesMailFailure(t *testing.T) {
	env := newTestEnv(t)
	env.sender.err = fmt.Errorf("smtp unreachable")

	code, _ := env.do(t, http.MethodPost, "/api/contact", validContactBody())
	if code != http.StatusCreated {
		t.Fatalf("create with broken transport = %d, want 201", code)
	}
	env.drain()

	// record persisted despite the transport failure
	_, resp := env.do(t, http.MethodGet, "/api/contact", nil)
	if resp.Pagination == nil || resp.Pagination.Total != 1 {
		t.Fatalf("total = %+v, want 1", resp.Pagination)
	}
}

func TestContactValidation(t *testing.T) {
	env := newTestEnv(t)
	body := validContactBody()
	body["email"] = "nope"
	if code, _ := env.do(t, http.MethodPost, "/api/contact", body); code != http.StatusBadRequest {
		t.Fatalf("bad email = %d, want 400", code)
	}
}

func TestContactStatusFlow(t *testing.T) {
	env := newTestEnv(t)

	_, resp := env.do(t, http.MethodPost, "/api/contact", validContactBody())
	var data struct {
		ID string `json:"id"`
	}
	dataInto(t, resp, &data)
	env.do(t, http.MethodPost, "/api/contact", map[string]any{
		"name": "Second", "email": "second@example.com", "subject": "s", "message": "m",
	})

	code, resp := env.do(t, http.MethodPatch, "/api/contact/"+data.ID+"/status", map[string]any{"status": "read"})
	if code != http.StatusOK {
		t.Fatalf("patch = %d (%s)", code, resp.Message)
	}
	var c models.Contact
	dataInto(t, resp, &c)
	if c.Status != models.ContactRead {
		t.Errorf("status = %q", c.Status)
	}

	_, resp = env.do(t, http.MethodGet, "/api/contact?status=read", nil)
	if resp.Pagination == nil || resp.Pagination.Total != 1 {
		t.Fatalf("status filter total = %+v, want 1", resp.Pagination)
	}

	if code, _ := env.do(t, http.MethodPatch, "/api/contact/"+data.ID+"/status", map[string]any{"status": "bogus"}); code != http.StatusBadRequest {
		t.Fatalf("bogus status = %d, want 400", code)
	}
	if code, _ := env.do(t, http.MethodPatch, "/api/contact/missing/status", map[string]any{"status": "read"}); code != http.StatusNotFound {
		t.Fatalf("missing id = %d, want 404", code)
	}
}
