package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// Password policy bounds.
const (
	passwordMinLen = 8
	passwordMaxLen = 16
)

// HashPassword returns the bcrypt digest of plain. The digest embeds the
// algorithm parameters and salt, so verification needs nothing else.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plain matches digest. A malformed digest
// counts as a mismatch; this never fails open.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// ValidPassword reports whether plain satisfies the signup password policy:
// 8 to 16 characters with at least one uppercase letter, one lowercase letter
// and one digit.
func ValidPassword(plain string) bool {
	if len(plain) < passwordMinLen || len(plain) > passwordMaxLen {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range plain {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
