package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	duplicate := &pgconn.PgError{Code: "23505", ConstraintName: "products_name_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "nil error", err: nil, constraint: "", want: false},
		{name: "matching constraint", err: duplicate, constraint: "products_name_key", want: true},
		{name: "any constraint", err: duplicate, constraint: "", want: true},
		{name: "other constraint", err: duplicate, constraint: "customers_phone_key", want: false},
		{name: "wrapped pg error", err: fmt.Errorf("create product: %w", duplicate), constraint: "products_name_key", want: true},
		{name: "other pg code", err: &pgconn.PgError{Code: "23503"}, constraint: "", want: false},
		{name: "message-only duplicate", err: errors.New(`duplicate key value violates unique constraint "products_name_key"`), constraint: "products_name_key", want: true},
		{name: "unrelated error", err: errors.New("connection refused"), constraint: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}
