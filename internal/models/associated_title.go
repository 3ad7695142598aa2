package models

// AssociatedTitle is a suggested transaction label pre-populated per
// category to speed up manual entry in the target app.
type AssociatedTitle struct {
	AssociatedTitlePk string `json:"associatedTitlePk" gorm:"primaryKey;column:associated_title_pk"`
	Title             string `json:"title"`
	CategoryFk        string `json:"categoryFk" gorm:"column:category_fk"`
	DateCreated       int64  `json:"dateCreated" gorm:"column:date_created"`
	Order             int    `json:"order" gorm:"column:order"`
}

func (AssociatedTitle) TableName() string {
	return "associated_titles"
}
