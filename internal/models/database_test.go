package models_test

import (
	"path/filepath"
	"testing"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "finance.db")
	require.Nil(t, models.Connect(dsn+"?_pragma=busy_timeout(1000)"))

	assert.Equal(t, dsn, models.File, "pragmas must be stripped from the file path")

	// The schema exists, so the target tables accept rows right away
	for _, model := range []any{
		&models.Wallet{WalletPk: "1"},
		&models.Category{CategoryPk: "1"},
		&models.Transaction{TransactionPk: "1", CategoryFk: "1", WalletFk: "1"},
		&models.AssociatedTitle{AssociatedTitlePk: "1", CategoryFk: "1"},
	} {
		assert.Nil(t, models.DB.Create(model).Error)
	}
}

func TestConnectInvalidDSN(t *testing.T) {
	err := models.Connect(filepath.Join(t.TempDir(), "does-not-exist") + "/finance.db")
	assert.NotNil(t, err)
}
