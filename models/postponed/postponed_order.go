package postponed

import (
	"joyful-cargo/models/parcel"
	"time"
)

// PostponedOrder is the side record opened when a parcel enters the
// postponed status. It stays open until explicitly resolved.
type PostponedOrder struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Unique foreign key enforces the one-to-one pairing with the parcel.
	ParcelID uint           `gorm:"not null;unique" json:"parcel_id"`
	Parcel   *parcel.Parcel `gorm:"foreignKey:ParcelID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"parcel_details,omitempty"`

	NewDeliveryDate *time.Time `json:"new_delivery_date"`
	Notes           *string    `gorm:"type:text" json:"notes"`
	IsResolved      bool       `gorm:"default:false" json:"is_resolved"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
