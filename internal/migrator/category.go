package migrator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/importer/ivywallet"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// migrateCategories merges every source category into the categories table
// by case-insensitive name, refreshing only the colour of matched rows.
// When the source carries no category with the reserved default name, the
// default category is created first so that transactions without a
// resolvable category always have a fallback.
func (m *migration) migrateCategories(tx *gorm.DB) error {
	orders, err := newOrderAllocator(tx, models.Category{}.TableName())
	if err != nil {
		return err
	}

	earliest := m.earliestTransactionByCategory()
	income := m.incomeCategories()

	categories := make([]ivywallet.Category, len(m.backup.Categories))
	copy(categories, m.backup.Categories)
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].OrderNum != categories[j].OrderNum {
			return categories[i].OrderNum < categories[j].OrderNum
		}
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	hasDefault := false
	for _, category := range categories {
		if strings.EqualFold(strings.TrimSpace(category.Name), defaultCategoryName) {
			hasDefault = true
			break
		}
	}

	if !hasDefault {
		pk, err := m.mergeCategory(tx, defaultCategoryName, defaultCategoryColour, false, time.Now().Unix(), orders)
		if err != nil {
			return fmt.Errorf("default category: %w", err)
		}

		m.defaultCategory = pk
	}

	for _, category := range categories {
		name := strings.TrimSpace(category.Name)

		pk, err := m.mergeCategory(tx, name, colourHex(category.Color), income[category.ID], creationDate(earliest[category.ID]), orders)
		if err != nil {
			return fmt.Errorf("category %s: %w", category.ID, err)
		}

		m.categories[category.ID] = pk
		if strings.EqualFold(name, defaultCategoryName) {
			m.defaultCategory = pk
		}
	}

	return nil
}

// mergeCategory reuses an existing category with the same name, refreshing
// its colour, or inserts a new one.
func (m *migration) mergeCategory(tx *gorm.DB, name, colour string, income bool, created int64, orders *orderAllocator) (string, error) {
	var existing models.Category
	err := tx.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error
	if err == nil {
		err = tx.Model(&models.Category{}).
			Where("category_pk = ?", existing.CategoryPk).
			Update("colour", colour).Error
		if err != nil {
			return "", err
		}

		return existing.CategoryPk, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	category := models.Category{
		CategoryPk:  uuid.NewString(),
		Name:        name,
		Colour:      colour,
		IconName:    defaultCategoryIcon,
		DateCreated: created,
		Order:       orders.next(),
		Income:      income,
	}

	if err := tx.Create(&category).Error; err != nil {
		return "", err
	}

	m.summary.Categories++
	return category.CategoryPk, nil
}

// incomeCategories returns the source category ids referenced by at least
// one INCOME transaction. Those categories are flagged as income-type.
func (m *migration) incomeCategories() map[string]bool {
	income := make(map[string]bool)

	for _, t := range m.backup.Transactions {
		if t.Type == ivywallet.TypeIncome && t.CategoryID != nil {
			income[*t.CategoryID] = true
		}
	}

	return income
}

// earliestTransactionByCategory returns the oldest source transaction
// timestamp (ms) per category.
func (m *migration) earliestTransactionByCategory() map[string]int64 {
	earliest := make(map[string]int64)

	for _, t := range m.backup.Transactions {
		if t.DateTime == nil || t.CategoryID == nil {
			continue
		}

		if current, ok := earliest[*t.CategoryID]; !ok || *t.DateTime < current {
			earliest[*t.CategoryID] = *t.DateTime
		}
	}

	return earliest
}
