package validate

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	MinPasswordLen = 8
	// MaxPasswordLen matches bcrypt's input limit; longer passwords are
	// truncated by the hasher, so accepting them would be misleading.
	MaxPasswordLen = 72
	MaxUsernameLen = 64
	// MaxEmailLen is the storage limit for contact addresses. Format is
	// validated first; truncation to this length happens afterwards, in
	// the submission pipeline.
	MaxEmailLen = 255
)

// emailPattern is deliberately loose: one local part, one domain with at
// least one dot. Proper address verification is out of scope.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("malformed email address")
	}
	return nil
}

func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	return nil
}
