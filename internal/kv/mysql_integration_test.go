//go:build integration

package kv

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
)

func TestMySQLStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := tcmysql.Run(ctx, "mysql:8.0.36", tcmysql.WithDatabase("waitlist"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "parseTime=true")
	require.NoError(t, err)

	conn, err := sqlx.Connect("mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	store, err := NewMySQLStore(ctx, conn)
	require.NoError(t, err)

	runStoreContract(t, func(t *testing.T) Store {
		_, err := conn.ExecContext(ctx, "TRUNCATE TABLE kv_store")
		require.NoError(t, err)
		return store
	})
}
