package security

import (
	"github.com/developerUmair/ecommerce-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor the rest of the system was sized for.
const DefaultCost = 10

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted bcrypt hash; the salt is embedded in the output so
// Compare needs only the stored hash.
func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare returns nil on match. bcrypt's comparison is constant-time.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
