package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
)

// bindJSON decodifica o corpo. Falhas de regra de campo são deixadas para o caso de uso,
// que as agrega com as de negócio; só JSON malformado encerra a requisição aqui.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	var verrs validator.ValidationErrors
	if err == nil || errors.As(err, &verrs) {
		return true
	}
	httperr.BadRequest(c, dto.MsgRequisicaoInvalida)
	return false
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, fmt.Sprintf(dto.MsgParametroInvalido, name))
		return 0, false
	}
	return uint(id), true
}

// pageRequest lê pag, ord e dir da query string.
func pageRequest(c *gin.Context, size int) (ponto.PageRequest, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("pag", "0"))
	if err != nil || page < 0 {
		httperr.BadRequest(c, fmt.Sprintf(dto.MsgParametroInvalido, "pag"))
		return ponto.PageRequest{}, false
	}

	sort, ok := ponto.ParseSortField(c.DefaultQuery("ord", string(ponto.SortByID)))
	if !ok {
		httperr.BadRequest(c, fmt.Sprintf(dto.MsgParametroInvalido, "ord"))
		return ponto.PageRequest{}, false
	}

	var desc bool
	switch strings.ToUpper(c.DefaultQuery("dir", "DESC")) {
	case "DESC":
		desc = true
	case "ASC":
	default:
		httperr.BadRequest(c, fmt.Sprintf(dto.MsgParametroInvalido, "dir"))
		return ponto.PageRequest{}, false
	}

	return ponto.PageRequest{Page: page, Size: size, Sort: sort, Desc: desc}, true
}
