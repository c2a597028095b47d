// Package password gera e confere hashes bcrypt das senhas dos funcionários.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes é o maior tamanho de senha aceito pelo bcrypt, em bytes.
const MaxBytes = 72

// Hash gera um hash bcrypt com salt aleatório. Senha ausente (nil) devolve nil sem erro.
func Hash(senha *string) (*string, error) {
	if senha == nil {
		return nil, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	out := string(hashed)
	return &out, nil
}

// Matches confere a senha contra o hash usando o salt embutido nele.
func Matches(hash, senha string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
