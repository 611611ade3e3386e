package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// claveAlphabet covers letters, digits and a handful of printable symbols.
const claveAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#$%&*+-"

// ClaveLength is the length of generated claves.
const ClaveLength = 12

// HashClave derives the one-way hash stored in place of a plaintext clave.
func HashClave(clave string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(clave), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash clave: %w", err)
	}
	return string(hashed), nil
}

// VerifyClave compares a plaintext clave against a stored hash. It never
// reverses the hash; verification re-derives and compares.
func VerifyClave(hash, clave string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(clave))
}

// GenerarClave produces a random printable clave for usuarios created without
// one. crypto/rand keeps it unpredictable.
func GenerarClave() (string, error) {
	max := big.NewInt(int64(len(claveAlphabet)))
	buf := make([]byte, ClaveLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generar clave: %w", err)
		}
		buf[i] = claveAlphabet[n.Int64()]
	}
	return string(buf), nil
}
