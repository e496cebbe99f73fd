package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the service has always used; raising it
// only affects newly stored hashes.
const bcryptCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext password.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. A
// malformed stored hash is treated as a non-match, never an error: the caller
// must not be able to tell a bad hash apart from a wrong password.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
