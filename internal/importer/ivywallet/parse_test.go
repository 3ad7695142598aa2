package ivywallet_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/importer/ivywallet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestParseNoFile(t *testing.T) {
	_, err := ivywallet.Parse(iotest.ErrReader(errors.New("Some reading error")))
	assert.NotNil(t, err, "Expected file opening to fail")
	assert.Contains(t, err.Error(), "could not read data from file", "Wrong error on parsing broken file: %s", err)
}

func TestParseFail(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     string
	}{
		{"empty file", "", "not a valid wallet export file"},
		{"not JSON", "definitely not JSON", "not a valid wallet export file"},
		{"top level array", `["accounts"]`, "not a valid wallet export file"},
		{"wrong section type", `{"accounts": 7, "transactions": [], "categories": [], "plannedPaymentRules": []}`, "not a valid wallet export file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ivywallet.Parse(strings.NewReader(tt.content))
			assert.NotNil(t, err, "Expected parsing to fail")
			assert.Contains(t, err.Error(), tt.err, "Wrong error on parsing broken file: %s", err)
		})
	}
}

func TestParseMissingSection(t *testing.T) {
	sections := []string{"accounts", "transactions", "categories", "plannedPaymentRules"}

	for _, missing := range sections {
		for _, null := range []bool{false, true} {
			name := missing
			if null {
				name += " null"
			}

			t.Run(name, func(t *testing.T) {
				var parts []string
				for _, section := range sections {
					if section == missing {
						if null {
							parts = append(parts, fmt.Sprintf("%q: null", section))
						}
						continue
					}
					parts = append(parts, fmt.Sprintf("%q: []", section))
				}

				content := "{" + strings.Join(parts, ", ") + "}"

				_, err := ivywallet.Parse(strings.NewReader(content))
				require.NotNil(t, err, "Expected parsing to fail")
				assert.True(t, errors.Is(err, ivywallet.ErrMissingSection), "Wrong error on parsing file without %s: %s", missing, err)
				assert.Contains(t, err.Error(), missing)
			})
		}
	}
}

func TestParse(t *testing.T) {
	f, err := os.OpenFile("../../../testdata/importer/backup.json", os.O_RDONLY, 0o400)
	if err != nil {
		assert.FailNow(t, "Failed to open the test file", err)
	}
	defer f.Close()

	backup, err := ivywallet.Parse(f)
	require.Nil(t, err, "Parsing failed with %s", err)

	assert.Len(t, backup.Accounts, 2)
	assert.Len(t, backup.Categories, 2)
	assert.Len(t, backup.Transactions, 3)
	assert.Len(t, backup.PlannedPaymentRules, 1)

	// Unknown sections like "settings" or "loans" are ignored

	idx := slices.IndexFunc(backup.Accounts, func(a ivywallet.Account) bool { return a.Name == "Cash" })
	require.NotEqual(t, -1, idx, "No account named 'Cash'")
	assert.Equal(t, "EUR", backup.Accounts[idx].Currency)
	assert.Equal(t, int64(-10011977), backup.Accounts[idx].Color)

	idx = slices.IndexFunc(backup.Transactions, func(tr ivywallet.Transaction) bool { return tr.Type == ivywallet.TypeTransfer })
	require.NotEqual(t, -1, idx, "No transfer transaction found")
	transfer := backup.Transactions[idx]
	require.NotNil(t, transfer.ToAccountID)
	assert.True(t, transfer.Amount.Equal(decimal.NewFromInt(100)))
	assert.Nil(t, transfer.Title)

	idx = slices.IndexFunc(backup.Transactions, func(tr ivywallet.Transaction) bool { return tr.RecurringRuleID != nil })
	require.NotEqual(t, -1, idx, "No recurring transaction found")
	assert.Equal(t, backup.PlannedPaymentRules[0].ID, *backup.Transactions[idx].RecurringRuleID)

	rule := backup.PlannedPaymentRules[0]
	require.NotNil(t, rule.IntervalType)
	assert.Equal(t, ivywallet.IntervalMonth, *rule.IntervalType)
	assert.Equal(t, 1, rule.IntervalN)
	require.NotNil(t, rule.StartDate)
	assert.Equal(t, int64(1717236000000), *rule.StartDate)
}
