package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User model for operators of the cargo dashboard
type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string  `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	Email        string  `gorm:"type:varchar(120);not null;unique" json:"email"`
	Phone        *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Role         string  `gorm:"type:varchar(20);not null;default:'user'" json:"role"` // admin, user
	PasswordHash string  `gorm:"type:varchar(256);not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SetPassword hashes the plain password and stores the digest.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a plain password against the stored digest.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
