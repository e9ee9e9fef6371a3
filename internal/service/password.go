package service

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest of plaintext. Two calls with
// the same plaintext yield different digests.
func HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches digest. A malformed digest
// fails closed: the answer is false, never an error surfaced as success.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
