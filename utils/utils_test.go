package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
	assert.Equal(t, "a@b.co", NormalizeEmail("A@B.CO"))
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jane@x.com", "a.b@c.d.org", "UPPER@CASE.COM"}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}

	invalid := []string{"", "plainaddress", "missing@tld", "a b@x.com", "@x.com", "a@.com "}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
