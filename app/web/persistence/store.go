package persistence

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	sq "github.com/Masterminds/squirrel"
	log "github.com/go-pkgz/lgr"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/umputun/jobboard/app/web/enums"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// goose keeps its base fs and dialect in package globals
var migrateMu sync.Mutex

var (
	// ErrNotFound is returned when a user or job lookup misses, or an update/delete touches no rows
	ErrNotFound = errors.New("not found")
	// ErrEmailExists is returned when a user with the same email is already stored
	ErrEmailExists = errors.New("email already exists")
)

// Store implements persistence on top of SQLite or PostgreSQL
type Store struct {
	db      *sqlx.DB
	dbType  enums.DBType
	builder sq.StatementBuilderType
}

// New opens the database of the given type, applies migrations and returns a ready store
func New(ctx context.Context, dbType enums.DBType, dsn string) (*Store, error) {
	var db *sqlx.DB
	var err error
	switch dbType {
	case enums.DBTypeSQLite:
		db, err = openSQLite(ctx, dsn)
	case enums.DBTypePostgres:
		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
	default:
		return nil, fmt.Errorf("unsupported db type %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	s := newStore(db, dbType)
	if err := s.migrate(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to migrate: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	log.Printf("[DEBUG] %s store ready", dbType)
	return s, nil
}

// newStore wraps an already opened connection, no migrations applied
func newStore(db *sqlx.DB, dbType enums.DBType) *Store {
	placeholder := sq.Question
	if dbType == enums.DBTypePostgres {
		placeholder = sq.Dollar
	}
	return &Store{db: db, dbType: dbType, builder: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

// openSQLite opens sqlite file with foreign keys enforced on every connection and WAL journal
func openSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to set WAL mode: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	return db, nil
}

// migrate applies embedded migrations for the store dialect
func (s *Store) migrate(ctx context.Context) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	dialect, dir := "sqlite3", "migrations/sqlite"
	if s.dbType == enums.DBTypePostgres {
		dialect, dir = "postgres", "migrations/postgres"
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect %s: %w", dialect, err)
	}
	if err := goose.UpContext(ctx, s.db.DB, dir); err != nil {
		return fmt.Errorf("failed to apply migrations from %s: %w", dir, err)
	}
	return nil
}

// Ping checks the database connection is alive
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// isUniqueViolation detects unique constraint failures for both backends
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		// primary result code only, extended codes disabled
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
	}
	return false
}

// gooseLogger sends migration messages to lgr
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	log.Printf("[DEBUG] migration: "+strings.TrimSpace(format), v...)
}

func (gooseLogger) Fatalf(format string, v ...any) {
	log.Printf("[ERROR] migration: "+strings.TrimSpace(format), v...)
}
