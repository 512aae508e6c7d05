package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted, adaptive digest from a plaintext password.
// The cost is bcrypt's default; raising it only affects newly stored digests.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether the plaintext matches the stored digest.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
