package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReferralCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{name: "Bad check digit", code: "7992739871", expected: false},
		{name: "All zeros pass the check", code: "0000000000", expected: true},
		{name: "Too short", code: "12345", expected: false},
		{name: "Too long", code: "12345678901", expected: false},
		{name: "Non-digit characters", code: "12345abcde", expected: false},
		{name: "Empty string", code: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsReferralCode(tt.code))
		})
	}
}

func TestNewReferralCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := NewReferralCode()
		assert.Len(t, code, 10)
		assert.True(t, IsReferralCode(code), "generated code %q must validate", code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
