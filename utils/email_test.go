package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	for _, ok := range []string{"a@b.com", "first.last+tag@example.co.uk", " padded@example.com "} {
		assert.True(t, IsValidEmail(ok), ok)
	}
	for _, bad := range []string{"", "not-an-email", "a@", "@b.com", "a b@c.com"} {
		assert.False(t, IsValidEmail(bad), bad)
	}
}
