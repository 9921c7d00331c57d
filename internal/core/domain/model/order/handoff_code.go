package order

import (
	"fmt"
	"math/rand/v2"

	"dispatch/internal/pkg/errs"
)

// handoffCodeDigits is the length of the shared-secret handoff code. The
// code is a low-entropy convenience secret presented at physical handoff,
// not a cryptographic credential.
const handoffCodeDigits = 4

// NewHandoffCode generates a handoff code uniformly at random over all
// 4-digit strings, "0000" through "9999". Codes never expire and are not
// regenerated on failed close attempts.
func NewHandoffCode() string {
	return fmt.Sprintf("%04d", rand.IntN(10000))
}

// validateHandoffCode checks the shape of a code: exactly four ASCII digits.
func validateHandoffCode(code string) error {
	if len(code) != handoffCodeDigits {
		return errs.NewValueIsInvalidError("handoff code")
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return errs.NewValueIsInvalidError("handoff code")
		}
	}
	return nil
}
