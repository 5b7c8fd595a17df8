package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedClient inserts a mirrored client row and returns its id.
func SeedClient(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	id := "client-" + uuid.New().String()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO clients (id, name, status) VALUES ($1, $2, $3)`,
		id, "Test Client "+uniqueSuffix(), "active",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClient insert: %v", err)
	}

	return id
}
