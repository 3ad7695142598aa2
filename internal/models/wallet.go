package models

// Wallet is the target-side analogue of a source account. Rows created by a
// migration run carry UUID primary keys, rows native to the target app carry
// numeric ones.
type Wallet struct {
	WalletPk    string `json:"walletPk" gorm:"primaryKey;column:wallet_pk"`
	Name        string `json:"name"`
	Colour      string `json:"colour"` // "0xff" + 6 lowercase hex digits
	IconName    string `json:"iconName" gorm:"column:icon_name"`
	DateCreated int64  `json:"dateCreated" gorm:"column:date_created"` // unix seconds
	Order       int    `json:"order" gorm:"column:order"`
	Currency    string `json:"currency"`
	Decimals    int    `json:"decimals"`
}

func (Wallet) TableName() string {
	return "wallets"
}
