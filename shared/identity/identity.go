// Package identity holds the rules for the free-text display name a user
// picks before using the board. Names are never authenticated.
package identity

import (
	"errors"
	"strings"
	"todoboard/shared/constant"
	"unicode/utf8"
)

var (
	ErrEmpty   = errors.New("username is required")
	ErrTooLong = errors.New("username is too long")
)

// Owns reports whether current may edit or delete something created by owner.
// Comparison is exact: case-sensitive and untrimmed.
func Owns(owner, current string) bool {
	return owner == current
}

// Validate checks a display name against the limits the service enforces.
func Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmpty
	}

	if utf8.RuneCountInString(name) > constant.MaxUsernameLength {
		return ErrTooLong
	}

	return nil
}
