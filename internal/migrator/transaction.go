package migrator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/importer/ivywallet"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// migrateTransactions converts every source transaction into one target row,
// or two linked rows for transfers. Transactions belonging to a known
// recurring rule are chained into a series: the first occurrence mints the
// canonical series id, later ones get placeholder ids derived from it.
// Rows that cannot be resolved are skipped with a warning, they never fail
// the stage.
func (m *migration) migrateTransactions(tx *gorm.DB) error {
	now := time.Now().Unix()

	for _, t := range m.backup.Transactions {
		walletPk, ok := m.wallets[t.AccountID]
		if !ok {
			m.skip("transaction", t.ID, "no wallet mapping for account "+t.AccountID)
			continue
		}

		if t.DateTime == nil {
			m.skip("transaction", t.ID, "missing timestamp")
			continue
		}

		var err error
		switch {
		case t.Type == ivywallet.TypeTransfer:
			if t.ToAccountID == nil {
				m.skip("transaction", t.ID, "transfer without destination account")
				continue
			}

			toPk, ok := m.wallets[*t.ToAccountID]
			if !ok {
				m.skip("transaction", t.ID, "no wallet mapping for destination account "+*t.ToAccountID)
				continue
			}

			err = m.createTransferPair(tx, t, walletPk, toPk, now)

		case t.RecurringRuleID != nil && m.ruleKnown(*t.RecurringRuleID):
			err = m.createRecurring(tx, t, walletPk, now)

		default:
			err = m.createSimple(tx, t, walletPk, now)
		}

		if err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
	}

	return nil
}

func (m *migration) ruleKnown(id string) bool {
	_, ok := m.ruleIDs[id]
	return ok
}

// createTransferPair emits the income leg on the destination wallet and the
// expense leg on the source wallet, linked expense -> income.
func (m *migration) createTransferPair(tx *gorm.DB, t ivywallet.Transaction, fromPk, toPk string, now int64) error {
	note := fmt.Sprintf("Transferred Balance: %s -> %s", m.walletNames[fromPk], m.walletNames[toPk])
	categoryFk := m.resolveCategory(t.CategoryID)
	date := *t.DateTime / 1000

	incoming := models.Transaction{
		TransactionPk:    uuid.NewString(),
		Name:             deref(t.Title),
		Amount:           t.Amount,
		Note:             note,
		CategoryFk:       categoryFk,
		WalletFk:         toPk,
		DateCreated:      date,
		Income:           true,
		Paid:             true,
		DateTimeModified: now,
	}

	if err := tx.Create(&incoming).Error; err != nil {
		return err
	}

	outgoing := models.Transaction{
		TransactionPk:       uuid.NewString(),
		Name:                deref(t.Title),
		Amount:              t.Amount.Neg(),
		Note:                note,
		CategoryFk:          categoryFk,
		WalletFk:            fromPk,
		DateCreated:         date,
		Income:              false,
		Paid:                true,
		PairedTransactionFk: &incoming.TransactionPk,
		DateTimeModified:    now,
	}

	if err := tx.Create(&outgoing).Error; err != nil {
		return err
	}

	m.summary.Transactions += 2
	return nil
}

// createRecurring inserts one historical occurrence of a recurring series.
// The first occurrence of a rule is the series root and is inserted under
// the canonical id, later ones under placeholder ids that the finalizer
// stage resolves.
func (m *migration) createRecurring(tx *gorm.DB, t ivywallet.Transaction, walletPk string, now int64) error {
	ruleID := *t.RecurringRuleID

	var pk string
	state, ok := m.rules[ruleID]
	if !ok {
		pk = uuid.NewString()
		state = &ruleState{canonical: pk, count: 1}
		m.rules[ruleID] = state
	} else {
		pk = state.canonical + seriesMarker + strconv.Itoa(state.count)
		state.placeholders = append(state.placeholders, pk)
		state.count++
	}

	if *t.DateTime > state.lastSeen {
		state.lastSeen = *t.DateTime
	}

	income := t.Type == ivywallet.TypeIncome
	row := models.Transaction{
		TransactionPk:                   pk,
		Name:                            deref(t.Title),
		Amount:                          signedAmount(t.Amount, income),
		Note:                            deref(t.Description),
		CategoryFk:                      m.resolveCategory(t.CategoryID),
		WalletFk:                        walletPk,
		DateCreated:                     *t.DateTime / 1000,
		Income:                          income,
		Paid:                            true,
		CreatedAnotherFutureTransaction: true,
		Type:                            intPtr(models.TransactionTypeRepetitive),
		DateTimeModified:                now,
	}

	if err := tx.Create(&row).Error; err != nil {
		return err
	}

	m.summary.Transactions++
	return nil
}

// createSimple inserts a plain expense/income transaction.
func (m *migration) createSimple(tx *gorm.DB, t ivywallet.Transaction, walletPk string, now int64) error {
	income := t.Type == ivywallet.TypeIncome
	row := models.Transaction{
		TransactionPk:    uuid.NewString(),
		Name:             deref(t.Title),
		Amount:           signedAmount(t.Amount, income),
		Note:             deref(t.Description),
		CategoryFk:       m.resolveCategory(t.CategoryID),
		WalletFk:         walletPk,
		DateCreated:      *t.DateTime / 1000,
		Income:           income,
		Paid:             true,
		Type:             typeCode(t.Type),
		DateTimeModified: now,
	}

	if err := tx.Create(&row).Error; err != nil {
		return err
	}

	m.summary.Transactions++
	return nil
}

// signedAmount applies the target sign convention: income rows positive,
// expense rows negative.
func signedAmount(amount decimal.Decimal, income bool) decimal.Decimal {
	if income {
		return amount
	}

	return amount.Neg()
}

// typeCode maps a source transaction type to the target type code. Plain
// EXPENSE, INCOME and TRANSFER rows carry no type code.
func typeCode(sourceType string) *int {
	switch sourceType {
	case ivywallet.TypeUpcoming:
		return intPtr(models.TransactionTypeUpcoming)
	case ivywallet.TypeSubscription:
		return intPtr(models.TransactionTypeSubscription)
	case ivywallet.TypeRepetitive:
		return intPtr(models.TransactionTypeRepetitive)
	case ivywallet.TypeCredit:
		return intPtr(models.TransactionTypeCredit)
	case ivywallet.TypeDebt:
		return intPtr(models.TransactionTypeDebt)
	}

	return nil
}
