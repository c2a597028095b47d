package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
)

// translate converte os erros do gorm nos sentinelas do domínio.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ponto.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ponto.ErrConflict, err)
	}
	return err
}
