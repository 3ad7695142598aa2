package migrator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/importer/ivywallet"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// projectPlannedPayments turns every planned payment rule into exactly one
// unpaid future transaction. Rules with processed historical occurrences
// continue their series: the projected row extends the canonical id with the
// next occurrence number and its date advances one interval from the last
// known occurrence. Rules without history start at their own start date
// under a fresh id.
func (m *migration) projectPlannedPayments(tx *gorm.DB) error {
	now := time.Now().Unix()

	for _, rule := range m.backup.PlannedPaymentRules {
		walletPk, ok := m.wallets[rule.AccountID]
		if !ok {
			m.skip("planned payment rule", rule.ID, "no wallet mapping for account "+rule.AccountID)
			continue
		}

		if rule.StartDate == nil {
			m.skip("planned payment rule", rule.ID, "missing start date")
			continue
		}

		var pk string
		var due time.Time

		state, processed := m.rules[rule.ID]
		if processed {
			pk = state.canonical + seriesMarker + strconv.Itoa(state.count+1)
			due = advanceDate(time.UnixMilli(state.lastSeen).In(time.UTC), deref(rule.IntervalType), rule.IntervalN)
		} else {
			pk = uuid.NewString()
			due = time.UnixMilli(*rule.StartDate).In(time.UTC)
		}

		income := rule.Type == ivywallet.TypeIncome
		row := models.Transaction{
			TransactionPk:    pk,
			Name:             deref(rule.Title),
			Amount:           signedAmount(rule.Amount, income),
			Note:             "",
			CategoryFk:       m.resolveCategory(rule.CategoryID),
			WalletFk:         walletPk,
			DateCreated:      due.Unix(),
			Income:           income,
			Paid:             false,
			Type:             intPtr(models.TransactionTypeRepetitive),
			Reoccurrence:     intPtr(reoccurrenceCode(deref(rule.IntervalType))),
			PeriodLength:     intPtr(rule.IntervalN),
			OriginalDateDue:  int64Ptr(due.Unix()),
			DateTimeModified: now,
		}

		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("planned payment rule %s: %w", rule.ID, err)
		}

		m.summary.PlannedPayments++
	}

	return nil
}
