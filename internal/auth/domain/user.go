package domain

import (
	"regexp"
	"time"
)

// User is an account identified by a unique email. Password holds the
// bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	nameMinLen = 3
	nameMaxLen = 30
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9-]+(?:\.[a-zA-Z]{2,})+$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// ValidEmail reports whether value looks like an email address.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidName reports whether value is 3-30 characters of letters and spaces.
func ValidName(value string) bool {
	if len(value) < nameMinLen || len(value) > nameMaxLen {
		return false
	}
	return namePattern.MatchString(value)
}
