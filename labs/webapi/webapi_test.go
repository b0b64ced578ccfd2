package webapi

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/workbook-dev/workbook/labkit/lab"
)

func TestNoteService(t *testing.T) {
	srv := httptest.NewServer(newNoteServer().routes())
	defer srv.Close()
	client := srv.Client()
	ctx := context.Background()

	var health map[string]string
	status, err := doJSON(ctx, client, http.MethodGet, srv.URL+"/healthz", nil, &health)
	if err != nil {
		t.Fatalf("health check error: %v", err)
	}
	if status != http.StatusOK || health["status"] != "ok" {
		t.Errorf("health = %d %v, expected 200 ok", status, health)
	}

	var created note
	status, err = doJSON(ctx, client, http.MethodPost, srv.URL+"/notes",
		noteRequest{Title: "first", Body: "body"}, &created)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, expected 201", status)
	}
	if created.ID != "note_000001" {
		t.Errorf("first id = %q, expected note_000001", created.ID)
	}

	status, err = doJSON(ctx, client, http.MethodPost, srv.URL+"/notes",
		noteRequest{Body: "no title"}, nil)
	if err != nil {
		t.Fatalf("create without title error: %v", err)
	}
	if status != http.StatusBadRequest {
		t.Errorf("create without title status = %d, expected 400", status)
	}

	var fetched note
	status, err = doJSON(ctx, client, http.MethodGet, srv.URL+"/notes/note_000001", nil, &fetched)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if status != http.StatusOK || fetched != created {
		t.Errorf("get = %d %+v, expected 200 %+v", status, fetched, created)
	}

	status, err = doJSON(ctx, client, http.MethodGet, srv.URL+"/notes/note_999999", nil, nil)
	if err != nil {
		t.Fatalf("get missing error: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("get missing status = %d, expected 404", status)
	}

	var updated note
	status, err = doJSON(ctx, client, http.MethodPut, srv.URL+"/notes/note_000001",
		noteRequest{Title: "first", Body: "edited"}, &updated)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if status != http.StatusOK || updated.Body != "edited" {
		t.Errorf("update = %d %+v, expected 200 with edited body", status, updated)
	}

	var listing struct {
		Notes []note `json:"notes"`
		Total int    `json:"total"`
	}
	if _, err := doJSON(ctx, client, http.MethodGet, srv.URL+"/notes", nil, &listing); err != nil {
		t.Fatalf("list error: %v", err)
	}
	if listing.Total != 1 || len(listing.Notes) != 1 {
		t.Errorf("listing = %+v, expected one note", listing)
	}

	status, err = doJSON(ctx, client, http.MethodDelete, srv.URL+"/notes/note_000001", nil, nil)
	if err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if status != http.StatusNoContent {
		t.Errorf("delete status = %d, expected 204", status)
	}
	status, _ = doJSON(ctx, client, http.MethodDelete, srv.URL+"/notes/note_000001", nil, nil)
	if status != http.StatusNotFound {
		t.Errorf("second delete status = %d, expected 404", status)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := httptest.NewServer(newNoteServer().routes())
	defer srv.Close()

	ids := make([]string, 2)
	for i := range ids {
		resp, err := srv.Client().Get(srv.URL + "/healthz")
		if err != nil {
			t.Fatalf("GET /healthz error: %v", err)
		}
		resp.Body.Close()
		ids[i] = resp.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(ids[i]); err != nil {
			t.Errorf("X-Request-ID %q is not a UUID: %v", ids[i], err)
		}
	}
	if ids[0] == ids[1] {
		t.Errorf("request IDs repeat: %q", ids[0])
	}
}

func TestTokenIssuer(t *testing.T) {
	issuer := newTokenIssuer("test secret", time.Minute)
	issued := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.issue("user_1")
	if err != nil {
		t.Fatalf("issue() error: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("token has %d parts, expected 3", len(parts))
	}

	issuer.now = func() time.Time { return issued.Add(30 * time.Second) }
	sub, err := issuer.verify(token)
	if err != nil {
		t.Fatalf("verify() error: %v", err)
	}
	if sub != "user_1" {
		t.Errorf("subject = %q, expected user_1", sub)
	}

	issuer.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := issuer.verify(token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("verify(stale) error = %v, expected ErrTokenExpired", err)
	}

	issuer.now = func() time.Time { return issued }
	stranger := newTokenIssuer("another secret", time.Minute)
	stranger.now = issuer.now
	theirs, err := stranger.issue("user_1")
	if err != nil {
		t.Fatalf("issue() error: %v", err)
	}
	if _, err := issuer.verify(theirs); err == nil {
		t.Error("expected error verifying a token signed with another secret")
	}

	if _, err := issuer.verify("not.a.token"); err == nil {
		t.Error("expected error verifying garbage")
	}
}

func TestBearerMiddleware(t *testing.T) {
	issuer := newTokenIssuer("test secret", time.Hour)
	srv := httptest.NewServer(guardedRoutes(issuer))
	defer srv.Close()
	client := srv.Client()
	ctx := context.Background()

	status, _, err := get(ctx, client, srv.URL+"/public", "")
	if err != nil {
		t.Fatalf("GET /public error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("GET /public = %d, expected 200", status)
	}

	status, _, err = get(ctx, client, srv.URL+"/private", "")
	if err != nil {
		t.Fatalf("GET /private error: %v", err)
	}
	if status != http.StatusUnauthorized {
		t.Errorf("GET /private without token = %d, expected 401", status)
	}

	status, _, err = get(ctx, client, srv.URL+"/private", "garbage")
	if err != nil {
		t.Fatalf("GET /private error: %v", err)
	}
	if status != http.StatusUnauthorized {
		t.Errorf("GET /private with garbage = %d, expected 401", status)
	}

	token, err := issuer.issue("user_7")
	if err != nil {
		t.Fatalf("issue() error: %v", err)
	}
	status, body, err := get(ctx, client, srv.URL+"/private", token)
	if err != nil {
		t.Fatalf("GET /private error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("GET /private with token = %d, expected 200", status)
	}
	if !strings.Contains(body, "user_7") {
		t.Errorf("body %q does not greet the subject", body)
	}
}

func TestScrapeHelpers(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(quotesPage))
	if err != nil {
		t.Fatalf("html.Parse() error: %v", err)
	}

	if got := pageTitle(doc); got != "Workbook Quotes" {
		t.Errorf("pageTitle = %q, expected Workbook Quotes", got)
	}

	quotes := scrapeQuotes(doc)
	if len(quotes) != 3 {
		t.Fatalf("scraped %d quotes, expected 3", len(quotes))
	}
	if quotes[0].Author != "Austin Freeman" {
		t.Errorf("first author = %q, expected Austin Freeman", quotes[0].Author)
	}
	if want := []string{"go", "proverbs"}; !reflect.DeepEqual(quotes[2].Tags, want) {
		t.Errorf("third quote tags = %v, expected %v", quotes[2].Tags, want)
	}

	rows := tableRows(doc)
	if len(rows) != 3 {
		t.Fatalf("table has %d data rows, expected 3", len(rows))
	}
	if rows[0][0] != "The Go Programming Language" {
		t.Errorf("first cell = %q", rows[0][0])
	}
	if rows[0][1] != "Donovan & Kernighan" {
		t.Errorf("entity not decoded: %q", rows[0][1])
	}

	links := pageLinks(doc)
	if len(links) != 7 {
		t.Errorf("found %d links, expected 7", len(links))
	}
	var external bool
	for _, href := range links {
		if href == "https://go.dev/doc" {
			external = true
		}
	}
	if !external {
		t.Error("missing the external link")
	}
}

func TestQuotesPageServed(t *testing.T) {
	srv := httptest.NewServer(newNoteServer().routes())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/quotes")
	if err != nil {
		t.Fatalf("GET /quotes error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, expected text/html", ct)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if !strings.Contains(buf.String(), "Quotes worth keeping") {
		t.Error("page body missing the heading")
	}
}

func TestLabsRun(t *testing.T) {
	for _, l := range Labs() {
		t.Run(l.Slug, func(t *testing.T) {
			var buf bytes.Buffer
			env := lab.NewEnv(&buf, t.TempDir())
			if err := l.Run(context.Background(), env); err != nil {
				t.Fatalf("%s: %v", l.Ref(), err)
			}
			if buf.Len() == 0 {
				t.Errorf("%s produced no output", l.Ref())
			}
		})
	}
}
