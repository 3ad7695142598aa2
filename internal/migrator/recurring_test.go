package migrator

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/importer/ivywallet"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msOf(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}

func ptr[T any](v T) *T {
	return &v
}

// TestRecurringSeries walks a rule with three historical occurrences through
// the whole pipeline and checks the resulting primary key layout: the newest
// occurrence holds the canonical id, older occurrences hold placeholder ids
// rooted at it, and the projected future occurrence continues the numbering.
func TestRecurringSeries(t *testing.T) {
	require.NoError(t, models.Connect(filepath.Join(t.TempDir(), "finance.db")))
	defer func() {
		sqlDB, _ := models.DB.DB()
		sqlDB.Close()
	}()

	jan := date(2024, time.January, 15)
	feb := date(2024, time.February, 15)
	mar := date(2024, time.March, 15)

	backup := ivywallet.Backup{
		Accounts:   []ivywallet.Account{{ID: "a1", Name: "Cash", Currency: "EUR"}},
		Categories: []ivywallet.Category{{ID: "c1", Name: "Bills"}},
		Transactions: []ivywallet.Transaction{
			{ID: "t1", AccountID: "a1", CategoryID: ptr("c1"), Type: ivywallet.TypeExpense, Amount: decimal.NewFromInt(30), DateTime: msOf(jan), Title: ptr("Rent"), RecurringRuleID: ptr("r1")},
			{ID: "t2", AccountID: "a1", CategoryID: ptr("c1"), Type: ivywallet.TypeExpense, Amount: decimal.NewFromInt(30), DateTime: msOf(feb), Title: ptr("Rent"), RecurringRuleID: ptr("r1")},
			{ID: "t3", AccountID: "a1", CategoryID: ptr("c1"), Type: ivywallet.TypeExpense, Amount: decimal.NewFromInt(30), DateTime: msOf(mar), Title: ptr("Rent"), RecurringRuleID: ptr("r1")},
		},
		PlannedPaymentRules: []ivywallet.PlannedPaymentRule{
			{ID: "r1", AccountID: "a1", CategoryID: ptr("c1"), Amount: decimal.NewFromInt(30), Title: ptr("Rent"), Type: ivywallet.TypeExpense, StartDate: msOf(jan), IntervalType: ptr(ivywallet.IntervalMonth), IntervalN: 1},
		},
	}

	summary, err := Migrate(models.DB, backup)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Transactions)
	assert.Equal(t, 1, summary.PlannedPayments)

	var projected models.Transaction
	require.NoError(t, models.DB.First(&projected, "paid = ?", false).Error)

	// The projected row continues the numbering after the three historical
	// occurrences, so its id reveals the canonical series id
	suffix := seriesMarker + strconv.Itoa(4)
	require.True(t, strings.HasSuffix(projected.TransactionPk, suffix))
	canonical := strings.TrimSuffix(projected.TransactionPk, suffix)

	assert.False(t, projected.CreatedAnotherFutureTransaction)
	require.NotNil(t, projected.OriginalDateDue)
	assert.Equal(t, date(2024, time.April, 15).Unix(), *projected.OriginalDateDue, "the projection advances one interval past the newest occurrence")

	byPk := func(pk string) models.Transaction {
		var row models.Transaction
		require.NoError(t, models.DB.First(&row, "transaction_pk = ?", pk).Error)
		return row
	}

	// The newest occurrence ends up on the canonical id
	newest := byPk(canonical)
	assert.Equal(t, mar.Unix(), newest.DateCreated)
	assert.True(t, newest.Paid)
	assert.True(t, newest.CreatedAnotherFutureTransaction)
	assert.True(t, newest.Amount.Equal(decimal.NewFromInt(-30)))

	// Older occurrences keep placeholder ids rooted at the canonical id.
	// The series root swapped ids with the newest occurrence.
	assert.Equal(t, feb.Unix(), byPk(canonical+seriesMarker+"1").DateCreated)
	assert.Equal(t, jan.Unix(), byPk(canonical+seriesMarker+"2").DateCreated)
}
