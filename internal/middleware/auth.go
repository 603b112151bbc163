package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/stylohub/stylohub-api/internal/config"
)

// ContextClerkUserID carrega o `sub` do token: o id externo de
// identidade que chaveia a linha de perfil.
const ContextClerkUserID = "clerkUserID"

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, errCode := subjectFromHeader(c.GetHeader("Authorization"), cfg.JWTSecret)
		if errCode != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errCode})
			return
		}

		c.Set(ContextClerkUserID, sub)
		c.Next()
	}
}

// SubjectFromRequest extrai e valida o bearer sem abortar: os guards
// de navegação precisam distinguir "sem token" de "token válido" e
// decidir sozinhos (fail-open).
func SubjectFromRequest(c *gin.Context, cfg *config.Config) string {
	sub, errCode := subjectFromHeader(c.GetHeader("Authorization"), cfg.JWTSecret)
	if errCode != "" {
		return ""
	}
	return sub
}

func subjectFromHeader(authHeader, secret string) (sub string, errCode string) {
	if authHeader == "" {
		return "", "missing_authorization_header"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "invalid_authorization_header"
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "invalid_token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "invalid_token_claims"
	}

	sub, ok = claims["sub"].(string)
	if !ok || sub == "" {
		return "", "invalid_token_payload"
	}

	return sub, ""
}
