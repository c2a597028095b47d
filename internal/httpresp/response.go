package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response é o envelope de todas as respostas da API. Errors nunca é null.
type Response struct {
	Data   any      `json:"data"`
	Errors []string `json:"errors"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Data:   data,
		Errors: []string{},
	})
}

func Fail(c *gin.Context, status int, messages ...string) {
	errs := make([]string, 0, len(messages))
	errs = append(errs, messages...)
	c.JSON(status, Response{
		Data:   nil,
		Errors: errs,
	})
}
