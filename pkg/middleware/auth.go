package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extrai o bearer token do cabeçalho Authorization e o coloca
// no contexto. A ausência do token é falha de pré-condição de toda operação.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || !strings.HasPrefix(header, "Bearer ") || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de autenticação não encontrado"})
			c.Abort()
			return
		}
		c.Set("token", token)
		c.Next()
	}
}
