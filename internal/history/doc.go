// Package history persists finished operation outcomes in SQLite.
//
// The Store manages the database connection, schema initialization, and the
// journal queries behind the history and status commands. Each record captures
// one convert, probe, or download invocation together with its outcome so runs
// remain inspectable after the process exits.
//
// The database is an append-only journal rather than coordination state; no
// component reads it to make decisions. Schema changes bump the version in
// schema.go; users clear the database to adopt the new schema.
package history
