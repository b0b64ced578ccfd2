package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/workbook-dev/workbook/labkit/kvstore"
	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

type note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// noteRequest is the JSON body for creating or replacing a note.
type noteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// noteServer is the lesson's service: JSON CRUD over an in-memory store,
// plus one HTML page for the scraping lesson.
type noteServer struct {
	notes *kvstore.Store[note]
}

func newNoteServer() *noteServer {
	return &noteServer{notes: kvstore.New[note]("note")}
}

// routes assembles the router.
func (s *noteServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)

	r.Get("/healthz", s.handleHealth)
	r.Route("/notes", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)
		r.Put("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
	})
	r.Get("/quotes", s.handleQuotesPage)
	return r
}

// requestID tags every response so a client can quote the failing request
// back at the server's logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": message,
			"type":    http.StatusText(status),
			"code":    status,
		},
	})
}

func (s *noteServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *noteServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	n := note{ID: s.notes.NextID(), Title: req.Title, Body: req.Body}
	s.notes.Put(n.ID, n)
	writeJSON(w, http.StatusCreated, n)
}

func (s *noteServer) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"notes": s.notes.List(),
		"total": s.notes.Len(),
	})
}

func (s *noteServer) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, ok := s.notes.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no note with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *noteServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.notes.Get(id); !ok {
		writeError(w, http.StatusNotFound, "no note with id "+id)
		return
	}
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	n := note{ID: id, Title: req.Title, Body: req.Body}
	s.notes.Put(id, n)
	writeJSON(w, http.StatusOK, n)
}

func (s *noteServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.notes.Delete(id) {
		writeError(w, http.StatusNotFound, "no note with id "+id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// doJSON sends one JSON request and decodes the JSON reply into out,
// which may be nil when the caller only wants the status code.
func doJSON(ctx context.Context, c *http.Client, method, url string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encoding %s %s request: %w", method, url, err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding %s %s response: %w", method, url, err)
		}
	}
	return resp.StatusCode, nil
}

func runService(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	srv := httptest.NewServer(newNoteServer().routes())
	defer srv.Close()
	client := srv.Client()

	p.Section("Health probe")
	var health map[string]string
	status, err := doJSON(ctx, client, http.MethodGet, srv.URL+"/healthz", nil, &health)
	if err != nil {
		return err
	}
	p.KV("GET /healthz", "%d %s", status, health["status"])

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	p.KV("X-Request-ID present", "%t", resp.Header.Get("X-Request-ID") != "")

	p.Section("Create")
	for _, req := range []noteRequest{
		{Title: "Standup notes", Body: "blocked on review"},
		{Title: "Groceries", Body: "coffee, rye bread"},
		{Title: "Reading list", Body: "see /quotes"},
	} {
		var created note
		status, err := doJSON(ctx, client, http.MethodPost, srv.URL+"/notes", req, &created)
		if err != nil {
			return err
		}
		p.KV(req.Title, "%d id=%s", status, created.ID)
	}
	status, err = doJSON(ctx, client, http.MethodPost, srv.URL+"/notes", noteRequest{Body: "no title"}, nil)
	if err != nil {
		return err
	}
	p.KV("missing title", "%d", status)

	p.Section("Read")
	var listing struct {
		Notes []note `json:"notes"`
		Total int    `json:"total"`
	}
	if _, err := doJSON(ctx, client, http.MethodGet, srv.URL+"/notes", nil, &listing); err != nil {
		return err
	}
	p.KV("GET /notes total", "%d", listing.Total)
	for _, n := range listing.Notes {
		p.Printf("    %s  %s\n", n.ID, n.Title)
	}

	p.Section("Update")
	var updated note
	status, err = doJSON(ctx, client, http.MethodPut, srv.URL+"/notes/note_000002",
		noteRequest{Title: "Groceries", Body: "coffee, rye bread, apples"}, &updated)
	if err != nil {
		return err
	}
	p.KV("PUT /notes/note_000002", "%d body=%q", status, updated.Body)

	p.Section("Delete")
	status, err = doJSON(ctx, client, http.MethodDelete, srv.URL+"/notes/note_000003", nil, nil)
	if err != nil {
		return err
	}
	p.KV("DELETE /notes/note_000003", "%d", status)
	status, err = doJSON(ctx, client, http.MethodGet, srv.URL+"/notes/note_000003", nil, nil)
	if err != nil {
		return err
	}
	p.KV("GET after delete", "%d", status)

	return nil
}
