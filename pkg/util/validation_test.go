package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Abc123":     true,
		"Secret9Pwd": true,
		"Ab1":        false,
		"abcdef1":    false,
		"ABCDEF1":    false,
		"Abcdefg":    false,
	}

	for pw, ok := range cases {
		err := ValidStrongPassword(pw)
		if ok {
			assert.NoError(t, err, pw)
		} else {
			assert.Error(t, err, pw)
		}
	}
}

func TestValidBranchCode(t *testing.T) {
	assert.True(t, ValidBranchCode("BR-01"))
	assert.True(t, ValidBranchCode(" main_branch "))
	assert.False(t, ValidBranchCode(""))
	assert.False(t, ValidBranchCode("../etc"))
	assert.False(t, ValidBranchCode("br 01"))
}
