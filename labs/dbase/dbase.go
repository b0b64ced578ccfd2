// Package dbase teaches database/sql against SQLite: creating a schema,
// the four CRUD verbs with parameterized queries, joins across a
// many-to-many relationship, and transactions that commit or roll back
// as a unit. The driver is modernc.org/sqlite, so the whole chapter runs
// without cgo or an external server; each lesson works on its own
// database file under the scratch directory.
package dbase

import (
	"github.com/workbook-dev/workbook/labkit/lab"
)

const Chapter = "dbase"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "schema",
			Title:   "Schema and seed data",
			Summary: "Create tables, load sample rows, inspect the catalog",
			Run:     runSchema,
		},
		{
			Chapter: Chapter,
			Slug:    "crud",
			Title:   "CRUD",
			Summary: "Insert, select, update, delete with placeholders",
			Run:     runCRUD,
		},
		{
			Chapter: Chapter,
			Slug:    "joins",
			Title:   "Joins and aggregates",
			Summary: "Transcript join, grouped course report",
			Run:     runJoins,
		},
		{
			Chapter: Chapter,
			Slug:    "transactions",
			Title:   "Transactions",
			Summary: "Commit, rollback, and constraint violations",
			Run:     runTransactions,
		},
	}
}
