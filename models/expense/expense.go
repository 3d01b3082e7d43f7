package expense

import (
	"joyful-cargo/models/user"
	"time"
)

// Expense represents an operational cost entry booked against a category.
type Expense struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CategoryID uint     `gorm:"not null" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	UserID uint      `gorm:"not null" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"-"`

	Description *string   `gorm:"type:varchar(255)" json:"description,omitempty"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"autoCreateTime" json:"date"`
}
