package credential

import "golang.org/x/crypto/bcrypt"

// Service hashes new passwords and verifies presented ones.
type Service interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type bcryptService struct {
	cost int
}

// NewBcrypt returns a bcrypt backed Service. Out of range costs fall back to bcrypt.DefaultCost.
func NewBcrypt(cost int) Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptService{cost: cost}
}

func (s *bcryptService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *bcryptService) Verify(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
