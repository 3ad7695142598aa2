package models

// Category groups transactions and associated titles.
type Category struct {
	CategoryPk     string  `json:"categoryPk" gorm:"primaryKey;column:category_pk"`
	Name           string  `json:"name"`
	Colour         string  `json:"colour"`
	IconName       string  `json:"iconName" gorm:"column:icon_name"`
	EmojiIconName  *string `json:"emojiIconName" gorm:"column:emoji_icon_name"`
	DateCreated    int64   `json:"dateCreated" gorm:"column:date_created"`
	Order          int     `json:"order" gorm:"column:order"`
	Income         bool    `json:"income"`
	MethodAdded    *int    `json:"methodAdded" gorm:"column:method_added"`
	MainCategoryPk *string `json:"mainCategoryPk" gorm:"column:main_category_pk"`
}

func (Category) TableName() string {
	return "categories"
}
