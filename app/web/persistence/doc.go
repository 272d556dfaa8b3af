// Package persistence provides storage for the job board: users, jobs and the
// many-to-many "work" relation between them. SQLite (WAL mode, foreign keys on)
// is the default backend, PostgreSQL is supported via pgx. The schema is managed
// by embedded goose migrations applied on startup.
package persistence
