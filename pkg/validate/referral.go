package validate

import (
	"math/rand"
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

const referralCodeLength = 10

// IsReferralCode reports whether s looks like a referral code: a fixed-length
// digit string whose last digit is a valid Luhn check digit. Lets handlers
// reject garbage before touching the database.
func IsReferralCode(s string) bool {
	if len(s) != referralCodeLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return goluhn.Validate(s) == nil
}

// NewReferralCode returns a random Luhn-valid referral code.
func NewReferralCode() string {
	base := make([]byte, 0, referralCodeLength)
	for i := 0; i < referralCodeLength-1; i++ {
		base = strconv.AppendInt(base, int64(rand.Intn(10)), 10)
	}
	for d := byte('0'); d <= '9'; d++ {
		code := string(append(base, d))
		if goluhn.Validate(code) == nil {
			return code
		}
	}
	// unreachable, exactly one check digit always satisfies Luhn
	return string(append(base, '0'))
}
