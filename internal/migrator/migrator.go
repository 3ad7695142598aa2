// Package migrator transforms a parsed wallet export into rows of the
// pre-existing target schema. A run purges rows left by earlier runs, merges
// wallets and categories by name, converts transactions (including transfer
// pairs and recurring series), and projects every planned payment rule one
// interval into the future.
package migrator

import (
	"fmt"
	"time"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/importer/ivywallet"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	// seriesMarker separates the canonical series id from the occurrence
	// number in placeholder primary keys of recurring transactions.
	seriesMarker = "-occurrence-"

	// defaultCategoryName is the reserved name of the fallback category for
	// transactions whose source category cannot be resolved.
	defaultCategoryName   = "Uncategorized"
	defaultCategoryColour = "0xff9e9e9e"

	defaultWalletIcon     = "wallet.png"
	defaultCategoryIcon   = "image.png"
	defaultWalletDecimals = 2
)

// Summary reports what a migration run did. Warnings list the source rows
// that were skipped, they do not fail the run.
type Summary struct {
	Wallets          int      `json:"wallets"`
	Categories       int      `json:"categories"`
	Transactions     int      `json:"transactions"`
	PlannedPayments  int      `json:"plannedPayments"`
	AssociatedTitles int      `json:"associatedTitles"`
	Warnings         []string `json:"warnings"`
}

// ruleState tracks one recurring series across the transaction, finalizer
// and planned payment stages. Keeping it in memory avoids parsing series
// markers back out of primary key strings.
type ruleState struct {
	canonical    string   // id of the series root, ends up on the newest occurrence
	count        int      // number of historical occurrences processed
	lastSeen     int64    // ms timestamp of the newest historical occurrence
	placeholders []string // placeholder ids in insertion order
}

type migration struct {
	backup ivywallet.Backup

	wallets         map[string]string // source account id -> wallet PK
	walletNames     map[string]string // wallet PK -> name, for transfer notes
	categories      map[string]string // source category id -> category PK
	defaultCategory string
	ruleIDs         map[string]struct{}
	rules           map[string]*ruleState

	summary Summary
}

// Migrate runs the full pipeline against db. Each stage executes in its own
// transaction: a failing stage is rolled back and aborts the run, stages
// committed before it stay in the target store.
func Migrate(db *gorm.DB, backup ivywallet.Backup) (Summary, error) {
	m := &migration{
		backup:      backup,
		wallets:     make(map[string]string),
		walletNames: make(map[string]string),
		categories:  make(map[string]string),
		ruleIDs:     make(map[string]struct{}, len(backup.PlannedPaymentRules)),
		rules:       make(map[string]*ruleState),
		summary:     Summary{Warnings: []string{}},
	}

	for _, rule := range backup.PlannedPaymentRules {
		m.ruleIDs[rule.ID] = struct{}{}
	}

	stages := []struct {
		name string
		run  func(tx *gorm.DB) error
	}{
		{"purge", m.purge},
		{"wallets", m.migrateWallets},
		{"categories", m.migrateCategories},
		{"transactions", m.migrateTransactions},
		{"finalize-recurring", m.finalizeRecurring},
		{"planned-payments", m.projectPlannedPayments},
		{"associated-titles", m.migrateAssociatedTitles},
	}

	for _, stage := range stages {
		tx := db.Begin()
		if tx.Error != nil {
			return m.summary, fmt.Errorf("stage %s: %w", stage.name, tx.Error)
		}

		if err := stage.run(tx); err != nil {
			tx.Rollback()
			return m.summary, fmt.Errorf("stage %s: %w", stage.name, err)
		}

		if err := tx.Commit().Error; err != nil {
			return m.summary, fmt.Errorf("stage %s: %w", stage.name, err)
		}

		log.Debug().Str("stage", stage.name).Msg("stage committed")
	}

	runsTotal.Inc()
	return m.summary, nil
}

// skip records a non-fatal warning for a source row that cannot be migrated.
func (m *migration) skip(kind, id, reason string) {
	rowsSkipped.Inc()
	log.Warn().Str("kind", kind).Str("id", id).Msg(reason)
	m.summary.Warnings = append(m.summary.Warnings, fmt.Sprintf("%s %s skipped: %s", kind, id, reason))
}

// resolveCategory maps a source category reference to a target PK, falling
// back to the default category for unknown or absent references.
func (m *migration) resolveCategory(id *string) string {
	if id != nil {
		if pk, ok := m.categories[*id]; ok {
			return pk
		}
	}

	return m.defaultCategory
}

// creationDate converts a source ms timestamp to unix seconds, using the
// current time when the source carries none.
func creationDate(ms int64) int64 {
	if ms == 0 {
		return time.Now().Unix()
	}

	return ms / 1000
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func intPtr(i int) *int {
	return &i
}

func int64Ptr(i int64) *int64 {
	return &i
}
