package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"student@mergington.edu",
		"first.last@example.com",
		"user+tag@sub.domain.org",
		"UPPER_case%99@school.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"invalid-email",
		"no-at-sign.edu",
		"user@domain",
		"user@domain.",
		"two words@domain.edu",
		"@mergington.edu",
		"user@.edu",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestBlankHelpers(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   \t"))
	assert.False(t, IsBlank("x"))

	assert.False(t, IsNotBlank("  "))
	assert.True(t, IsNotBlank(" x "))
}
