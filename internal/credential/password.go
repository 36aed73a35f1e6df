// File: internal/credential/password.go
package credential

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor. 10 rounds is the floor for resisting
// offline brute force on current hardware.
const HashCost = bcrypt.DefaultCost

// MaxPasswordBytes is bcrypt's input limit. The binding layer caps runes, so
// multibyte input must be re-checked in bytes before hashing.
const MaxPasswordBytes = 72

// HashPassword produces a salted one-way hash of the plaintext. The salt is
// embedded in the output, so two calls with the same input yield different
// hashes.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether the plaintext matches the stored hash. A
// mismatch is a false return, never an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
