package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash_And_CompareHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "обычный пароль", password: "secret1"},
		{name: "длинный пароль", password: "a-very-long-password-with-symbols-!@#$%"},
		{name: "пароль с юникодом", password: "пароль123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)

			assert.NoError(t, CompareHash(hash, tt.password))
		})
	}
}

func TestCompareHash_WrongPassword(t *testing.T) {
	hash, err := GetHash("secret1")
	require.NoError(t, err)

	assert.Error(t, CompareHash(hash, "wrong"))
	assert.Error(t, CompareHash("not-a-bcrypt-hash", "secret1"))
}

func TestGetHash_SamePasswordDifferentHashes(t *testing.T) {
	// bcrypt использует случайную соль, хэши не должны совпадать
	first, err := GetHash("secret1")
	require.NoError(t, err)
	second, err := GetHash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
