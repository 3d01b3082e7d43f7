package parcel

import (
	"joyful-cargo/models/user"
	"time"
)

// Parcel represents a customer delivery order tracked through its status lifecycle.
type Parcel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string  `gorm:"type:varchar(100);not null" json:"customer_name"`
	Phone        string  `gorm:"type:varchar(20);not null" json:"phone"`
	AltPhone     *string `gorm:"type:varchar(20)" json:"alt_phone,omitempty"`
	Product      string  `gorm:"type:varchar(200);not null" json:"product"`
	Destination  string  `gorm:"type:varchar(100);not null" json:"destination"`

	ExpectedAmount float64 `gorm:"default:0" json:"expected_amount"`
	Courier        *string `gorm:"type:varchar(100)" json:"courier,omitempty"`
	Status         Status  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
