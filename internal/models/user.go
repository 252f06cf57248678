package models

import (
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"
)

// User represents a staff account that can sign in to the POS
type User struct {
	gorm.Model
	Name         string
	Email        string `gorm:"unique_index"`
	PasswordHash string
	Role         string
	IsActive     bool
}

// UserRole represents the access level of a staff account
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleWaiter  UserRole = "waiter"
	UserRoleCashier UserRole = "cashier"
)

// SetPassword hashes and stores the given plaintext password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// ComparePassword checks a plaintext password against the stored hash.
func (u *User) ComparePassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
