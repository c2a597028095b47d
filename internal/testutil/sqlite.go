// Package testutil reúne helpers compartilhados pelos testes de pacote.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/ponto-inteligente/internal/db"
)

// NewDB abre um sqlite em memória exclusivo do teste, com FKs ligadas e o schema migrado.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())

	opts := db.Options()
	opts.Logger = gormlogger.Discard

	conn, err := gorm.Open(sqlite.Open(dsn), opts)
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	// uma conexão só: o banco em memória vive enquanto ela estiver aberta
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(conn))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return conn
}
