// Package store is a small transactional object store on SQLite.
//
// A Manager holds one collection (table) of one record type. Every
// operation acquires its own connection and transaction for the duration
// of the call, so nothing keeps a handle open between calls.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bassista/go_unis/internal/logger"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const (
	keyColumn   = "id"
	DefaultPath = "universities.db"
)

// Configuration selects the backing database, once, at construction.
// InMemoryIdentifier names an isolated in-memory database shared by every
// Manager opened with the same identifier in this process; it lives until
// the last such Manager is closed. Otherwise Path (or DefaultPath) is used.
type Configuration struct {
	Path               string
	InMemoryIdentifier string
}

func (c Configuration) inMemory() bool { return c.InMemoryIdentifier != "" }

func (c Configuration) dsn() string {
	if c.inMemory() {
		return "file:" + url.PathEscape(c.InMemoryIdentifier) + "?mode=memory&cache=shared&_txlock=immediate"
	}
	path := c.Path
	if path == "" {
		path = DefaultPath
	}
	return "file:" + path + "?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Observer receives one call per finished operation.
type Observer interface {
	ObserveStoreOperation(collection, op string, start time.Time, err error)
}

type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver reports operation outcomes, e.g. to metrics.
func WithObserver(o Observer) Option {
	return func(opts *options) { opts.observer = o }
}

// Manager is a typed store over one collection.
type Manager[T Persistable] struct {
	db       *sql.DB
	pin      *sql.Conn
	coll     Collection[T]
	observer Observer

	upsertSQL string
	selectSQL string
}

// New opens the configured database and creates the collection table if
// it does not exist yet.
func New[T Persistable](ctx context.Context, cfg Configuration, coll Collection[T], opts ...Option) (*Manager[T], error) {
	if err := coll.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitializationFailed, err)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if !cfg.inMemory() && cfg.Path != "" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInitializationFailed, errors.Wrap(err, "create database directory"))
			}
		}
	}

	db, err := sql.Open("sqlite", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitializationFailed, err)
	}

	m := &Manager[T]{db: db, coll: coll, observer: o.observer}
	m.prepareStatements()

	if cfg.inMemory() {
		// The pinned connection keeps the shared memory database alive;
		// the second connection is the one operations take turns on.
		db.SetMaxOpenConns(2)
		pin, err := db.Conn(ctx)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: %v", ErrInitializationFailed, err)
		}
		m.pin = pin
	}

	if _, err := db.ExecContext(ctx, m.createTableSQL()); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("%w: %v", ErrInitializationFailed, errors.Wrap(err, "create table"))
	}

	logger.WithComponent("store").Debugf("opened collection %s (in-memory: %v)", coll.Name, cfg.inMemory())
	return m, nil
}

// Close releases the database. An in-memory database is discarded once
// every Manager sharing its identifier is closed.
func (m *Manager[T]) Close() error {
	if m.pin != nil {
		_ = m.pin.Close()
		m.pin = nil
	}
	return m.db.Close()
}

// Save upserts record by primary key.
func (m *Manager[T]) Save(ctx context.Context, record T) (err error) {
	defer m.observe(string(OpWrite), time.Now(), &err)
	return opError(OpWrite, m.withTx(ctx, func(tx *sql.Tx) error {
		return m.upsert(ctx, tx, record)
	}))
}

// Update upserts record by primary key. It does not check that the record
// exists beforehand.
func (m *Manager[T]) Update(ctx context.Context, record T) (err error) {
	defer m.observe(string(OpUpdate), time.Now(), &err)
	return opError(OpUpdate, m.withTx(ctx, func(tx *sql.Tx) error {
		return m.upsert(ctx, tx, record)
	}))
}

// Read returns the record stored under key. A missing record is reported
// with ok == false and a nil error.
func (m *Manager[T]) Read(ctx context.Context, key string) (record T, ok bool, err error) {
	defer m.observe(string(OpRead), time.Now(), &err)

	err = m.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, m.selectSQL+" WHERE "+quote(keyColumn)+" = ?", key)
		obj, scanErr := m.scan(row.Scan)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil
		}
		if scanErr != nil {
			return scanErr
		}
		rebuilt, convErr := m.coll.FromObject(obj)
		if convErr != nil {
			return errors.Wrapf(convErr, "rebuild %s %q", m.coll.Name, key)
		}
		record, ok = rebuilt, true
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, opError(OpRead, err)
	}
	return record, ok, nil
}

// Delete removes the stored record with record's key, or fails with
// ErrObjectNotFound leaving the store unchanged.
func (m *Manager[T]) Delete(ctx context.Context, record T) (err error) {
	defer m.observe(string(OpDelete), time.Now(), &err)

	err = m.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM "+quote(m.coll.Name)+" WHERE "+quote(keyColumn)+" = ?", record.PrimaryKey())
		if err != nil {
			return errors.Wrap(err, "delete row")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "rows affected")
		}
		if n == 0 {
			return ErrObjectNotFound
		}
		return nil
	})
	if errors.Is(err, ErrObjectNotFound) {
		return ErrObjectNotFound
	}
	return opError(OpDelete, err)
}

// DeleteAll empties the collection.
func (m *Manager[T]) DeleteAll(ctx context.Context) (err error) {
	defer m.observe("delete_all", time.Now(), &err)
	return opError(OpDelete, m.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM "+quote(m.coll.Name))
		return errors.Wrap(err, "delete rows")
	}))
}

// FetchAll returns every stored record in insertion order.
func (m *Manager[T]) FetchAll(ctx context.Context) (records []T, err error) {
	defer m.observe("fetch_all", time.Now(), &err)

	err = m.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, m.selectSQL+" ORDER BY rowid")
		if err != nil {
			return errors.Wrap(err, "query rows")
		}
		defer rows.Close()

		records = []T{}
		for rows.Next() {
			obj, err := m.scan(rows.Scan)
			if err != nil {
				return err
			}
			record, err := m.coll.FromObject(obj)
			if err != nil {
				return errors.Wrapf(err, "rebuild %s %q", m.coll.Name, obj.Key)
			}
			records = append(records, record)
		}
		return errors.Wrap(rows.Err(), "iterate rows")
	})
	if err != nil {
		return nil, opError(OpRead, err)
	}
	return records, nil
}

// ReplaceAll makes the collection hold exactly records: it deletes every
// row and inserts the new generation in a single transaction. On failure
// nothing changes.
func (m *Manager[T]) ReplaceAll(ctx context.Context, records []T) (err error) {
	defer m.observe("replace_all", time.Now(), &err)
	return opError(OpWrite, m.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+quote(m.coll.Name)); err != nil {
			return errors.Wrap(err, "clear collection")
		}
		for _, record := range records {
			if err := m.upsert(ctx, tx, record); err != nil {
				return err
			}
		}
		return nil
	}))
}

func (m *Manager[T]) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire connection")
	}
	defer conn.Close()
	return fn(conn)
}

func (m *Manager[T]) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return m.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return errors.Wrap(err, "begin transaction")
		}
		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		return errors.Wrap(tx.Commit(), "commit transaction")
	})
}

func (m *Manager[T]) upsert(ctx context.Context, tx *sql.Tx, record T) error {
	obj := record.ToObject()
	if obj.Key == "" {
		return errors.New("record has an empty primary key")
	}
	args := make([]any, 0, len(m.coll.Columns)+1)
	args = append(args, obj.Key)
	for _, col := range m.coll.Columns {
		if v := obj.Fields[col]; v != nil {
			args = append(args, *v)
		} else {
			args = append(args, nil)
		}
	}
	if _, err := tx.ExecContext(ctx, m.upsertSQL, args...); err != nil {
		return errors.Wrapf(err, "upsert %s %q", m.coll.Name, obj.Key)
	}
	return nil
}

func (m *Manager[T]) scan(scanFn func(dest ...any) error) (Object, error) {
	values := make([]sql.NullString, len(m.coll.Columns)+1)
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := scanFn(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Object{}, err
		}
		return Object{}, errors.Wrap(err, "scan row")
	}

	obj := NewObject(values[0].String)
	for i, col := range m.coll.Columns {
		if v := values[i+1]; v.Valid {
			obj.Set(col, v.String)
		} else {
			obj.Fields[col] = nil
		}
	}
	return obj, nil
}

func (m *Manager[T]) prepareStatements() {
	cols := append([]string{keyColumn}, m.coll.Columns...)
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")

	updates := make([]string, 0, len(m.coll.Columns))
	for _, c := range m.coll.Columns {
		updates = append(updates, quote(c)+" = excluded."+quote(c))
	}
	conflict := "DO NOTHING"
	if len(updates) > 0 {
		conflict = "DO UPDATE SET " + strings.Join(updates, ", ")
	}

	table := quote(m.coll.Name)
	m.upsertSQL = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(%s) %s",
		table, strings.Join(quoted, ", "), placeholders, quote(keyColumn), conflict)
	m.selectSQL = fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), table)
}

func (m *Manager[T]) createTableSQL() string {
	defs := []string{quote(keyColumn) + " TEXT PRIMARY KEY NOT NULL"}
	for _, c := range m.coll.Columns {
		defs = append(defs, quote(c)+" TEXT")
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quote(m.coll.Name), strings.Join(defs, ", "))
}

func (m *Manager[T]) observe(op string, start time.Time, err *error) {
	if m.observer != nil {
		m.observer.ObserveStoreOperation(m.coll.Name, op, start, *err)
	}
}

func quote(ident string) string {
	return `"` + ident + `"`
}
