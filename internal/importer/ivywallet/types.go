package ivywallet

import (
	"github.com/shopspring/decimal"
)

// Transaction and rule types of the export format.
const (
	TypeExpense      = "EXPENSE"
	TypeIncome       = "INCOME"
	TypeTransfer     = "TRANSFER"
	TypeUpcoming     = "UPCOMING"
	TypeSubscription = "SUBSCRIPTION"
	TypeRepetitive   = "REPETITIVE"
	TypeCredit       = "CREDIT"
	TypeDebt         = "DEBT"
)

// Interval types of planned payment rules.
const (
	IntervalCustom = "CUSTOM"
	IntervalDaily  = "DAILY"
	IntervalWeekly = "WEEKLY"
	IntervalMonth  = "MONTH"
	IntervalYear   = "YEAR"
)

// Backup is the decoded source export. All four sections are required,
// Parse rejects files where any of them is missing.
type Backup struct {
	Accounts            []Account            `json:"accounts"`
	Transactions        []Transaction        `json:"transactions"`
	Categories          []Category           `json:"categories"`
	PlannedPaymentRules []PlannedPaymentRule `json:"plannedPaymentRules"`
}

type Account struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Currency string  `json:"currency"`
	Color    int64   `json:"color"` // 32-bit ARGB, may be negative (two's complement)
	OrderNum float64 `json:"orderNum"`
}

type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Color    int64   `json:"color"`
	OrderNum float64 `json:"orderNum"`
}

type Transaction struct {
	ID              string           `json:"id"`
	AccountID       string           `json:"accountId"`
	ToAccountID     *string          `json:"toAccountId"`
	CategoryID      *string          `json:"categoryId"`
	Type            string           `json:"type"`
	Amount          decimal.Decimal  `json:"amount"`
	ToAmount        *decimal.Decimal `json:"toAmount"` // Currently unused, both transfer legs use Amount
	DateTime        *int64           `json:"dateTimeMs"`
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	RecurringRuleID *string          `json:"recurringRuleId"`
}

type PlannedPaymentRule struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"accountId"`
	CategoryID   *string         `json:"categoryId"`
	Amount       decimal.Decimal `json:"amount"`
	Title        *string         `json:"title"`
	Type         string          `json:"type"`
	StartDate    *int64          `json:"startDateMs"`
	IntervalType *string         `json:"intervalType"`
	IntervalN    int             `json:"intervalN"`
}
