package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks password hashes. Implementations must
// use a slow, salted algorithm and compare in constant time.
type PasswordHasher interface {
	// Hash returns the encoded hash of password, salt included.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// ErrMismatchedPassword when it does not.
	Compare(hash, password string) error

	// DummyCompare spends as long as a real Compare without any stored
	// hash. Login runs it for unknown users.
	DummyCompare(password string)
}
