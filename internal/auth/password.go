// The auth package owns credential verification primitives: the bcrypt
// password hasher and the signed session tokens carried by admin requests.
package auth

import "golang.org/x/crypto/bcrypt"

const BcryptCost = 10

// maxPasswordBytes is bcrypt's hard input limit. Both HashPassword and
// VerifyPassword truncate to it, so the two sides always agree; feeding the
// untruncated plaintext to bcrypt directly would make the library error out
// on long inputs instead.
const maxPasswordBytes = 72

func truncatePassword(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword derives a salted digest from plain. The salt and cost factor
// are embedded in the digest, so two hashes of the same password differ.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(truncatePassword(plain), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plain matches digest. A malformed digest
// simply fails verification.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), truncatePassword(plain)) == nil
}
