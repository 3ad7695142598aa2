package migrator

import (
	"fmt"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"gorm.io/gorm"
)

// purge removes rows left behind by a previous migration run. Migrated rows
// carry UUID primary keys, rows native to the target app numeric ones, so a
// primary key containing any non-digit character marks a migrated row.
// Referencing tables are cleared before referenced ones.
func (m *migration) purge(tx *gorm.DB) error {
	stale := []struct {
		pkColumn string
		model    any
	}{
		{"transaction_pk", &models.Transaction{}},
		{"associated_title_pk", &models.AssociatedTitle{}},
		{"category_pk", &models.Category{}},
		{"wallet_pk", &models.Wallet{}},
	}

	for _, s := range stale {
		err := tx.Where(fmt.Sprintf("%s GLOB '*[^0-9]*'", s.pkColumn)).Delete(s.model).Error
		if err != nil {
			return err
		}
	}

	return nil
}
