package expense

// Category groups expenses for cost reporting.
type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null;unique" json:"name"`
}

func (Category) TableName() string {
	return "expense_categories"
}
