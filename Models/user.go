package Models

import (
	"gorm.io/gorm"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	PinHash  string `json:"-" gorm:"not null"`
}

// SetPin stores a bcrypt hash of the PIN on the user.
func (u *User) SetPin(pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PinHash = string(hash)
	return nil
}

// CheckPin reports whether the PIN matches the stored hash.
func (u *User) CheckPin(pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PinHash), []byte(pin)) == nil
}
