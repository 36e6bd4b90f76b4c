package credential_test

import (
	"testing"

	"github.com/muhammadheryan/classifieds/utils/credential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	svc := credential.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash("pw12345X")
	require.NoError(t, err)
	assert.NotEqual(t, "pw12345X", hash)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{name: "matching password", hash: hash, password: "pw12345X", want: true},
		{name: "case differs", hash: hash, password: "pw12345x", want: false},
		{name: "empty hash", hash: "", password: "pw12345X", want: false},
		{name: "garbage hash", hash: "not-a-hash", password: "pw12345X", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Verify(tt.hash, tt.password))
		})
	}
}

func TestBcrypt_SaltedHashesDiffer(t *testing.T) {
	svc := credential.NewBcrypt(bcrypt.MinCost)

	h1, err := svc.Hash("same-password")
	require.NoError(t, err)
	h2, err := svc.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, svc.Verify(h1, "same-password"))
	assert.True(t, svc.Verify(h2, "same-password"))
}

func TestNewBcrypt_InvalidCostFallsBack(t *testing.T) {
	svc := credential.NewBcrypt(100)

	hash, err := svc.Hash("pw12345X")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
