package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/lib/pq"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}

	var ups int
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			ups++
		}
	}
	if ups != 2 {
		t.Errorf("expected 2 up migrations, got %d", ups)
	}

	body, err := fs.ReadFile(migrationsFS, "migrations/000002_create_tickets.up.sql")
	if err != nil {
		t.Fatalf("read tickets migration: %v", err)
	}
	if !strings.Contains(string(body), "REFERENCES customers") {
		t.Error("tickets.customer_id must reference customers")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pq.Error{Code: "23503"}
	if !IsForeignKeyViolation(fmt.Errorf("insert: %w", fk)) {
		t.Error("expected wrapped 23503 to be detected")
	}
	if IsForeignKeyViolation(&pq.Error{Code: "23505"}) {
		t.Error("unique violation is not a foreign key violation")
	}
	if IsForeignKeyViolation(errors.New("boom")) {
		t.Error("plain error is not a foreign key violation")
	}
}

func TestOpenRequiresDSN(t *testing.T) {
	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}
