package util

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const MinPasswordLength = 6

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	digitRe  = regexp.MustCompile(`\d`)
	branchRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)
)

func ValidStrongPassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.Errorf("password must be at least %d characters long", MinPasswordLength)
	}

	if !upperRe.MatchString(password) {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		return errors.New("password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		return errors.New("password must contain at least one digit")
	}

	return nil
}

// ValidBranchCode reports whether code can be used as a sales branch code
// and in an export file name.
func ValidBranchCode(code string) bool {
	return branchRe.MatchString(strings.TrimSpace(code))
}
