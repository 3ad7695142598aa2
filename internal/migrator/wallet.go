package migrator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/importer/ivywallet"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// migrateWallets merges every source account into the wallets table by
// case-insensitive name. A matching wallet keeps its identifier, order and
// creation date and only has its currency refreshed; everything else gets a
// fresh UUID and the next free order value. When two source accounts map to
// the same name, the one processed last wins the identifier mapping.
func (m *migration) migrateWallets(tx *gorm.DB) error {
	orders, err := newOrderAllocator(tx, models.Wallet{}.TableName())
	if err != nil {
		return err
	}

	earliest := m.earliestTransactionByAccount()

	accounts := make([]ivywallet.Account, len(m.backup.Accounts))
	copy(accounts, m.backup.Accounts)
	sort.SliceStable(accounts, func(i, j int) bool {
		if accounts[i].OrderNum != accounts[j].OrderNum {
			return accounts[i].OrderNum < accounts[j].OrderNum
		}
		return strings.ToLower(accounts[i].Name) < strings.ToLower(accounts[j].Name)
	})

	for _, account := range accounts {
		name := strings.TrimSpace(account.Name)

		var existing models.Wallet
		err := tx.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error

		switch {
		case err == nil:
			err = tx.Model(&models.Wallet{}).
				Where("wallet_pk = ?", existing.WalletPk).
				Update("currency", account.Currency).Error
			if err != nil {
				return fmt.Errorf("account %s: %w", account.ID, err)
			}

			m.wallets[account.ID] = existing.WalletPk
			m.walletNames[existing.WalletPk] = existing.Name

		case errors.Is(err, gorm.ErrRecordNotFound):
			wallet := models.Wallet{
				WalletPk:    uuid.NewString(),
				Name:        name,
				Colour:      colourHex(account.Color),
				IconName:    defaultWalletIcon,
				DateCreated: creationDate(earliest[account.ID]),
				Order:       orders.next(),
				Currency:    account.Currency,
				Decimals:    defaultWalletDecimals,
			}

			if err := tx.Create(&wallet).Error; err != nil {
				return fmt.Errorf("account %s: %w", account.ID, err)
			}

			m.wallets[account.ID] = wallet.WalletPk
			m.walletNames[wallet.WalletPk] = wallet.Name
			m.summary.Wallets++

		default:
			return fmt.Errorf("account %s: %w", account.ID, err)
		}
	}

	return nil
}

// earliestTransactionByAccount returns the oldest source transaction
// timestamp (ms) per account, counting both sides of transfers.
func (m *migration) earliestTransactionByAccount() map[string]int64 {
	earliest := make(map[string]int64)

	record := func(id string, ms int64) {
		if current, ok := earliest[id]; !ok || ms < current {
			earliest[id] = ms
		}
	}

	for _, t := range m.backup.Transactions {
		if t.DateTime == nil {
			continue
		}

		record(t.AccountID, *t.DateTime)
		if t.ToAccountID != nil {
			record(*t.ToAccountID, *t.DateTime)
		}
	}

	return earliest
}
