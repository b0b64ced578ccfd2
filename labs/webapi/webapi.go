// Package webapi builds and consumes a small HTTP service: a chi router
// with a health probe and JSON CRUD over an in-memory store, bearer-token
// auth with signed JWTs, and scraping an HTML page with x/net/html. The
// server runs on a loopback listener for exactly as long as each lesson
// needs it.
package webapi

import (
	"github.com/workbook-dev/workbook/labkit/lab"
)

const Chapter = "webapi"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "service",
			Title:   "A JSON service",
			Summary: "chi routes, CRUD handlers, request IDs, a client",
			Run:     runService,
		},
		{
			Chapter: Chapter,
			Slug:    "auth",
			Title:   "Bearer tokens",
			Summary: "Issue and verify JWTs, guard a route",
			Run:     runAuth,
		},
		{
			Chapter: Chapter,
			Slug:    "scrape",
			Title:   "Scraping HTML",
			Summary: "Parse a served page: title, quotes, links, tables",
			Run:     runScrape,
		},
	}
}
