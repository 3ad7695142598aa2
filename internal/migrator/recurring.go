package migrator

import (
	"fmt"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// finalizeRecurring makes the newest historical occurrence of every
// recurring series addressable by its canonical id. The series root was
// inserted under the canonical id, so the root row and the row holding the
// latest placeholder swap primary keys, stepping through a temporary id to
// keep the key unique at every point. All historical ids stay rooted at the
// canonical UUID, and the planned payment projector extends the series from
// the canonical id.
func (m *migration) finalizeRecurring(tx *gorm.DB) error {
	for ruleID, state := range m.rules {
		if len(state.placeholders) == 0 {
			continue
		}

		latest := state.placeholders[len(state.placeholders)-1]
		temp := uuid.NewString()

		renames := [][2]string{
			{state.canonical, temp},
			{latest, state.canonical},
			{temp, latest},
		}

		for _, rename := range renames {
			err := tx.Model(&models.Transaction{}).
				Where("transaction_pk = ?", rename[0]).
				Update("transaction_pk", rename[1]).Error
			if err != nil {
				return fmt.Errorf("rule %s: %w", ruleID, err)
			}
		}
	}

	return nil
}
