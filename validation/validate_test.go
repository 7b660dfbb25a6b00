package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "Sturdy-pass1", false},
		{"Too short", "Ab1", true},
		{"No digit", "onlyletters", true},
		{"No letter", "12345678", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("sam_birky"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("_leading"))
	assert.Error(t, ValidateUsername("has space"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("sam@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.NoError(t, ValidatePhoneNumber("615-555-0100"))
	assert.NoError(t, ValidatePhoneNumber("+1 (615) 555 0100"))
	assert.NoError(t, ValidatePhoneNumber(""))
	assert.Error(t, ValidatePhoneNumber("call-me-maybe"))
	assert.Error(t, ValidatePhoneNumber("12345678901234567890123456"))
}
