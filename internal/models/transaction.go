package models

import (
	"github.com/shopspring/decimal"
)

// Transaction type codes of the target schema.
const (
	TransactionTypeUpcoming = iota
	TransactionTypeSubscription
	TransactionTypeRepetitive
	TransactionTypeCredit
	TransactionTypeDebt
)

// Reoccurrence codes of the target schema.
const (
	ReoccurrenceCustom = iota
	ReoccurrenceDaily
	ReoccurrenceWeekly
	ReoccurrenceMonthly
	ReoccurrenceYearly
)

// Transaction is a single target transaction row. Amounts are signed:
// income rows are positive, expense rows negative. The expense leg of a
// transfer references the income leg through PairedTransactionFk.
type Transaction struct {
	TransactionPk                   string          `json:"transactionPk" gorm:"primaryKey;column:transaction_pk"`
	Name                            string          `json:"name"`
	Amount                          decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Note                            string          `json:"note"`
	CategoryFk                      string          `json:"categoryFk" gorm:"column:category_fk"`
	WalletFk                        string          `json:"walletFk" gorm:"column:wallet_fk"`
	DateCreated                     int64           `json:"dateCreated" gorm:"column:date_created"`
	Income                          bool            `json:"income"`
	Paid                            bool            `json:"paid"`
	CreatedAnotherFutureTransaction bool            `json:"createdAnotherFutureTransaction" gorm:"column:created_another_future_transaction"`
	PairedTransactionFk             *string         `json:"pairedTransactionFk" gorm:"column:paired_transaction_fk"`
	Type                            *int            `json:"type"`
	Reoccurrence                    *int            `json:"reoccurrence"`
	PeriodLength                    *int            `json:"periodLength" gorm:"column:period_length"`
	OriginalDateDue                 *int64          `json:"originalDateDue" gorm:"column:original_date_due"`
	DateTimeModified                int64           `json:"dateTimeModified" gorm:"column:date_time_modified"`
}

func (Transaction) TableName() string {
	return "transactions"
}
