package webapi

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// tokenIssuer signs and verifies HS256 bearer tokens with a shared
// secret. The clock is a field so tests can freeze it.
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newTokenIssuer(secret string, ttl time.Duration) *tokenIssuer {
	return &tokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// issue signs a token naming subject, valid for the issuer's ttl.
func (ti *tokenIssuer) issue(subject string) (string, error) {
	now := ti.now()
	claims := jwt.MapClaims{
		"iss": "workbook",
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ti.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("signing token for %s: %w", subject, err)
	}
	return signed, nil
}

// verify checks the signature and expiry of raw and returns its subject.
func (ti *tokenIssuer) verify(raw string) (string, error) {
	tok, err := jwt.Parse(raw,
		func(t *jwt.Token) (any, error) { return ti.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil {
		return "", fmt.Errorf("verifying token: %w", err)
	}
	sub, err := tok.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("reading subject: %w", err)
	}
	return sub, nil
}

type ctxKey int

const subjectKey ctxKey = 0

// subjectFrom returns the token subject the middleware stored on the
// request context, or "" outside a guarded route.
func subjectFrom(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

// middleware rejects requests without a valid bearer token and passes the
// token's subject down via the request context.
func (ti *tokenIssuer) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if auth == "" || token == auth {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		sub, err := ti.verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), subjectKey, sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// guardedRoutes builds a router with one open and one guarded endpoint.
func guardedRoutes(ti *tokenIssuer) http.Handler {
	r := chi.NewRouter()
	r.Get("/public", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "anyone can read this"})
	})
	r.Group(func(g chi.Router) {
		g.Use(ti.middleware)
		g.Get("/private", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{
				"message": "hello, " + subjectFrom(r.Context()),
			})
		})
	})
	return r
}

func runAuth(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Issuing a token")
	issuer := newTokenIssuer("a string only the server knows", time.Hour)
	token, err := issuer.issue("user_42")
	if err != nil {
		return err
	}
	parts := strings.Split(token, ".")
	p.KV("parts", "%d (header.claims.signature)", len(parts))
	header, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return err
	}
	p.KV("decoded header", "%s", header)

	p.Section("Verifying")
	sub, err := issuer.verify(token)
	if err != nil {
		return err
	}
	p.KV("subject back out", "%s", sub)

	p.Section("Tampering is caught")
	claims, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return err
	}
	edited := strings.Replace(string(claims), "user_42", "user_99", 1)
	forged := parts[0] + "." + base64.RawURLEncoding.EncodeToString([]byte(edited)) + "." + parts[2]
	_, err = issuer.verify(forged)
	p.KV("edited claims rejected", "%t", err != nil)
	stranger := newTokenIssuer("a different secret entirely", time.Hour)
	strangerToken, err := stranger.issue("user_42")
	if err != nil {
		return err
	}
	_, err = issuer.verify(strangerToken)
	p.KV("wrong secret rejected", "%t", err != nil)

	p.Section("Expiry is enforced")
	shortLived := newTokenIssuer("a string only the server knows", time.Minute)
	shortLived.now = func() time.Time { return time.Now().Add(-time.Hour) }
	stale, err := shortLived.issue("user_42")
	if err != nil {
		return err
	}
	_, err = issuer.verify(stale)
	p.KV("expired token rejected", "%t", errors.Is(err, jwt.ErrTokenExpired))

	p.Section("Behind a bearer check")
	srv := httptest.NewServer(guardedRoutes(issuer))
	defer srv.Close()
	client := srv.Client()

	status, body, err := get(ctx, client, srv.URL+"/public", "")
	if err != nil {
		return err
	}
	p.KV("GET /public, no token", "%d", status)
	status, _, err = get(ctx, client, srv.URL+"/private", "")
	if err != nil {
		return err
	}
	p.KV("GET /private, no token", "%d", status)
	status, body, err = get(ctx, client, srv.URL+"/private", token)
	if err != nil {
		return err
	}
	p.KV("GET /private, with token", "%d", status)
	p.KV("greeting", "%s", strings.TrimSpace(body))

	return nil
}

// get fetches url, attaching token as a bearer credential when non-empty.
func get(ctx context.Context, c *http.Client, url, token string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(body), nil
}
