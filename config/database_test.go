package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint
	Name string
}

func TestInitDatabaseSQLite(t *testing.T) {
	cfg := AppConfig{DBDialect: DialectSQLite, DatabaseURI: "file::memory:", LogLevel: "silent"}
	db, err := InitDatabase(cfg, zap.NewNop(), &widget{})
	require.NoError(t, err)
	defer CloseDatabase(db)

	assert.True(t, db.Migrator().HasTable(&widget{}))

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestInitDatabaseUnsupportedDialect(t *testing.T) {
	_, err := InitDatabase(AppConfig{DBDialect: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "app.db?_pragma=foreign_keys(1)", withForeignKeys("app.db"))
	assert.Equal(t, "file::memory:?cache=shared&_pragma=foreign_keys(1)", withForeignKeys("file::memory:?cache=shared"))
	assert.Equal(t, "x.db?_pragma=foreign_keys(1)", withForeignKeys("x.db?_pragma=foreign_keys(1)"))
}

func TestToGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, toGormLogLevel("debug"))
	assert.Equal(t, logger.Warn, toGormLogLevel("info"))
	assert.Equal(t, logger.Error, toGormLogLevel("error"))
	assert.Equal(t, logger.Silent, toGormLogLevel("silent"))
}
