package table

import (
	"errors"
	"fmt"
	"log/slog"

	"table-binder/fieldpath"
	"table-binder/internal/common"
	"table-binder/node"
)

var (
	ErrNoHeader     = errors.New("table has no header")
	ErrNoRows       = errors.New("table has no rows")
	ErrMultipleRows = errors.New("table has more than one row")
	ErrRowWidth     = errors.New("row width does not match the header")
)

// Table is a header row and its data rows. Rows[i][j] is the raw cell for
// Header[j].
type Table struct {
	Header []string   `yaml:"header"`
	Rows   [][]string `yaml:"rows"`
}

type config[T any] struct {
	factory func() *T
	binder  *node.Binder
	logger  *slog.Logger
}

type Option[T any] func(*config[T])

// WithFactory supplies the instance each row is bound into. new(T) is used
// otherwise.
func WithFactory[T any](factory func() *T) Option[T] {
	return func(c *config[T]) {
		c.factory = factory
	}
}

// WithBinder replaces the default binder.
func WithBinder[T any](b *node.Binder) Option[T] {
	return func(c *config[T]) {
		c.binder = b
	}
}

// WithLogger sets the logger for row progress and skipped columns.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *config[T]) {
		c.logger = logger
	}
}

func newConfig[T any](opts []Option[T]) *config[T] {
	c := &config[T]{
		factory: func() *T { return new(T) },
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.binder == nil {
		c.binder = node.New(node.WithLogger(c.logger))
	}

	return c
}

// CreateInstance binds a single row table.
func CreateInstance[T any](tbl Table, opts ...Option[T]) (*T, error) {
	if common.IsEmpty(tbl.Rows) {
		return nil, ErrNoRows
	}

	if !common.IsSingle(tbl.Rows) {
		return nil, fmt.Errorf("%w: %d rows, use CreateInstances", ErrMultipleRows, len(tbl.Rows))
	}

	instances, err := CreateInstances(tbl, opts...)
	if err != nil {
		return nil, err
	}

	first, _ := common.First(instances)

	return first, nil
}

// CreateInstances binds every row into its own instance, in row order. When a
// row fails, the instances of the rows before it are returned with the error.
func CreateInstances[T any](tbl Table, opts ...Option[T]) ([]*T, error) {
	if common.IsEmpty(tbl.Rows) {
		return nil, ErrNoRows
	}

	cfg := newConfig(opts)

	paths, err := fieldpath.ParseAll(tbl.Header)
	if err != nil {
		return nil, err
	}

	result := make([]*T, 0, len(tbl.Rows))

	for i, row := range tbl.Rows {
		reqs, err := Requests(paths, row)
		if err != nil {
			return result, fmt.Errorf("row %d: %w", i, err)
		}

		instance := cfg.factory()
		if err := cfg.binder.SetAll(reqs, instance); err != nil {
			return result, fmt.Errorf("row %d: %w", i, err)
		}

		cfg.logger.Debug("bound row", "row", i, "cells", len(reqs))

		result = append(result, instance)
	}

	return result, nil
}

// Requests pairs parsed headers with one row of raw cells.
func Requests(paths []fieldpath.Path, row []string) ([]node.Request, error) {
	if len(row) != len(paths) {
		return nil, fmt.Errorf("%w: %d cells for %d columns", ErrRowWidth, len(row), len(paths))
	}

	reqs := make([]node.Request, len(paths))
	for i, p := range paths {
		reqs[i] = node.Request{Path: p, Raw: row[i]}
	}

	return reqs, nil
}
