package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"first.last@example.com",
		"user+tag@sub.domain.org",
	}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing-domain@",
		"@missing-local.com",
		"no-tld@domain",
		"spaces in@example.com",
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("abc123"))
	assert.True(t, ValidPassword("Passw0rd!"))

	assert.False(t, ValidPassword("ab12"), "too short")
	assert.False(t, ValidPassword("abcdef"), "no digit")
	assert.False(t, ValidPassword("123456"), "no letter")
	assert.False(t, ValidPassword(""), "empty")
}
