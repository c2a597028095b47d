package ponto

import "errors"

// Fatos do armazenamento. Os repositórios devolvem esses erros (opcionalmente embrulhados)
// e os serviços decidem como apresentá-los.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
