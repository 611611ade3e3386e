package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashClave_VerifyRoundTrip(t *testing.T) {
	hash, err := HashClave("secreta123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secreta123", hash)

	assert.NoError(t, VerifyClave(hash, "secreta123"))
	assert.Error(t, VerifyClave(hash, "otra-clave"))
}

func TestGenerarClave(t *testing.T) {
	clave, err := GenerarClave()
	assert.NoError(t, err)
	assert.Len(t, clave, ClaveLength)
	for _, r := range clave {
		assert.True(t, strings.ContainsRune(claveAlphabet, r), "unexpected rune %q", r)
	}

	otra, err := GenerarClave()
	assert.NoError(t, err)
	assert.NotEqual(t, clave, otra)
}
