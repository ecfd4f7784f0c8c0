package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ultrapanel_admin_back/pkg/panelapi"
)

type Error struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, Error{Message: message})
}

func wrapOkJSON(c *gin.Context, response map[string]interface{}) {
	c.JSON(http.StatusOK, response)
}

// errorStatus mapeia erros do cliente do painel para o status da resposta do
// console: falta/expiração de token vira 401, erro HTTP do painel repassa o
// status, o resto é falha de gateway.
func errorStatus(err error) int {
	if errors.Is(err, panelapi.ErrSemToken) || errors.Is(err, panelapi.ErrTokenInvalido) {
		return http.StatusUnauthorized
	}
	var apiErr *panelapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
