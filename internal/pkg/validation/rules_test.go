package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ali@school.com",
		"a.b+c@sub.domain.co",
		"first_last@school-district.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"bad@",
		"no-at-sign.com",
		"@school.com",
		"ali@school",
		"spaces in@local.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("Jane").WithMinLength(1).WithMaxLength(10).Validate())
	assert.False(t, NewStringValidation("").Validate(), "required by default")
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("abcdef").WithMaxLength(5).Validate())
	assert.True(t, NewStringValidation("ali@school.com").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("bad@").WithPattern(CompiledPatterns.Email).Validate())
}
