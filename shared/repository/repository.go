// Package repository maps one model type onto one replica table keyed by a
// single text column. Column lists come from the model's db tags.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotelsphere/infras/otel"
	"hotelsphere/infras/postgres"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/logger"
	"reflect"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ErrUnavailable is returned when the repository has no live connection.
var ErrUnavailable = errors.New("database connection unavailable")

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

type namedPreparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type Table[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	name    string
	entity  string
	key     string
	columns []string
}

func NewTable[T any](entity, name, key string, db *postgres.Connection, otl otel.Otel) Table[T] {
	var zero T

	return Table[T]{
		db:      db,
		otel:    otl,
		name:    name,
		entity:  entity,
		key:     key,
		columns: Columns(reflect.TypeOf(zero)),
	}
}

func (t *Table[T]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, t.entity, op)
}

// Find loads the row with the given key. found is false when no row matches.
func (t *Table[T]) Find(ctx context.Context, id string) (model T, found bool, err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, t.spanName("Find"))
	defer scope.End()

	if !t.db.Available() {
		return model, false, ErrUnavailable
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = :key", strings.Join(t.columns, ", "), t.name, t.key)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := t.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, false, fmt.Errorf("failed to prepare statement (%s): %w", t.entity, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, map[string]any{"key": id})
	if errors.Is(err, sql.ErrNoRows) {
		return model, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, false, fmt.Errorf("failed to find row (%s): %w", t.entity, err)
	}

	return model, true, nil
}

// List returns every row ordered by key.
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, t.spanName("List"))
	defer scope.End()

	if !t.db.Available() {
		return nil, ErrUnavailable
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s %s", strings.Join(t.columns, ", "), t.name, t.key, constant.DefaultValueSortDir)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := t.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", t.entity, err)
	}
	defer prepare.Close()

	models := []T{}

	if err = prepare.SelectContext(ctx, &models, map[string]any{}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list rows (%s): %w", t.entity, err)
	}

	return models, nil
}

// Upsert inserts the model or, when a row with the same key exists,
// overwrites every other column. It reports whether the row was new.
func (t *Table[T]) Upsert(ctx context.Context, model T) (bool, error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, t.spanName("Upsert"))
	defer scope.End()

	if !t.db.Available() {
		return false, ErrUnavailable
	}

	return t.upsert(ctx, t.db.Write, model)
}

func (t *Table[T]) UpsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) (bool, error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, t.spanName("UpsertTx"))
	defer scope.End()

	return t.upsert(ctx, sqltx, model)
}

func (t *Table[T]) upsert(ctx context.Context, preparer namedPreparer, model T) (bool, error) {
	query := t.UpsertQuery() + " RETURNING (xmax = 0) AS inserted"

	prepare, err := preparer.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", t.entity, err)
	}
	defer prepare.Close()

	inserted := false

	err = prepare.GetContext(ctx, &inserted, model)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to upsert row (%s): %w", t.entity, err)
	}

	return inserted, nil
}

// UpsertQuery renders the INSERT ... ON CONFLICT statement used by Upsert.
func (t *Table[T]) UpsertQuery() string {
	placeholders := make([]string, 0, len(t.columns))
	updates := make([]string, 0, len(t.columns))

	for _, col := range t.columns {
		placeholders = append(placeholders, ":"+col)

		if col == t.key {
			continue
		}

		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	conflict := "DO NOTHING"
	if len(updates) > 0 {
		conflict = "DO UPDATE SET " + strings.Join(updates, ", ")
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) %s",
		t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "), t.key, conflict)
}

// Remove deletes the row with the given key. A missing row is not an error.
func (t *Table[T]) Remove(ctx context.Context, id string) error {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, t.spanName("Remove"))
	defer scope.End()

	if !t.db.Available() {
		return ErrUnavailable
	}

	return t.remove(ctx, t.db.Write, id)
}

func (t *Table[T]) remove(ctx context.Context, exec execer, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = :key", t.name, t.key)

	if _, err := exec.NamedExecContext(ctx, query, map[string]any{"key": id}); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to remove row (%s): %w", t.entity, err)
	}

	return nil
}

// Columns lists the db tags of a struct type, descending into embedded structs.
func Columns(reflectType reflect.Type) []string {
	columns := []string{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, Columns(field.Type)...)

			continue
		}

		tag, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		if tag == "" || tag == "-" {
			continue
		}

		columns = append(columns, tag)
	}

	return columns
}
