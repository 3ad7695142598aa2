package migrator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// migrateAssociatedTitles derives title suggestions from transaction titles,
// at most one row per category and distinct title. Titles already seen
// earlier in the run or already present in the target store are skipped.
func (m *migration) migrateAssociatedTitles(tx *gorm.DB) error {
	orders, err := newOrderAllocator(tx, models.AssociatedTitle{}.TableName())
	if err != nil {
		return err
	}

	type titleKey struct {
		categoryFk string
		title      string
	}
	seen := make(map[titleKey]struct{})

	for _, t := range m.backup.Transactions {
		if t.CategoryID == nil {
			continue
		}

		title := strings.TrimSpace(deref(t.Title))
		if title == "" {
			continue
		}

		categoryFk := m.resolveCategory(t.CategoryID)
		key := titleKey{categoryFk, title}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		var existing models.AssociatedTitle
		err := tx.Where("category_fk = ? AND title = ?", categoryFk, title).First(&existing).Error
		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}

		var ms int64
		if t.DateTime != nil {
			ms = *t.DateTime
		}

		row := models.AssociatedTitle{
			AssociatedTitlePk: uuid.NewString(),
			Title:             title,
			CategoryFk:        categoryFk,
			DateCreated:       creationDate(ms),
			Order:             orders.next(),
		}

		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}

		m.summary.AssociatedTitles++
	}

	return nil
}
