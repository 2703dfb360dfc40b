//go:build integration

package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/udisondev/battlecore/internal/data"
)

var (
	// testPool: общий pool для всех тестов пакета db.
	testPool *pgxpool.Pool
	testDSN  string
)

// TestMain поднимает PostgreSQL в testcontainer и применяет миграции.
func TestMain(m *testing.M) {
	ctx := context.Background()
	data.MustLoadForTest()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("starting postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("getting container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatalf("getting container port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())
	testDSN = dsn

	if _, err := RunMigrations(ctx, dsn); err != nil {
		log.Fatalf("running migrations: %v", err)
	}
	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connecting to test db: %v", err)
	}

	code := m.Run()
	testPool.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

// setupTestDB очищает таблицы и возвращает общий pool.
func setupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	if _, err := testPool.Exec(context.Background(), "TRUNCATE creatures CASCADE"); err != nil {
		tb.Fatalf("truncating creatures: %v", err)
	}
	return testPool
}
