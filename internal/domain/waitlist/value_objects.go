package waitlist

import (
	"strings"

	"equipment-checkout/internal/pkg/errs"
)

const PhoneDigits = 10

// Phone is a normalized ten digit number.
type Phone struct {
	digits string
}

// NewPhone strips common separators and a leading country code 1.
// Anything other than digits and separators is rejected.
func NewPhone(raw string) (Phone, error) {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '.', r == '(', r == ')':
		case r == '+' && i == 0:
		default:
			return Phone{}, errs.ErrInvalidPhone
		}
	}

	digits := b.String()
	if len(digits) == PhoneDigits+1 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != PhoneDigits {
		return Phone{}, errs.ErrInvalidPhone
	}
	return Phone{digits: digits}, nil
}

func (p Phone) String() string { return p.digits }

func (p Phone) IsZero() bool { return p.digits == "" }
