package password

import (
	"sync"

	"rental-backoffice/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrMismatch = errs.New("password does not match")
)

// Hash uses bcrypt.DefaultCost when cost is zero.
func Hash(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(b), nil
}

// Verify returns ErrMismatch for a wrong password and any other error for a
// corrupt hash.
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

var (
	decoyOnce sync.Once
	decoyHash []byte
)

// VerifyDecoy spends the same bcrypt work as Verify against a throwaway hash.
// Login calls it for unknown emails so response time does not reveal which
// addresses have accounts.
func VerifyDecoy(plain string) {
	decoyOnce.Do(func() {
		decoyHash, _ = bcrypt.GenerateFromPassword([]byte("decoy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(decoyHash, []byte(plain))
}
