package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"interlab/internal/domain/entities"
	"interlab/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
	errNoPrincipal  = errors.New("no principal in request context")
)

// Claims is the identity asserted by the external auth provider.
type Claims struct {
	Registration string `json:"registration"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	IsManager    bool   `json:"is_manager"`
	jwt.RegisteredClaims
}

func (c Claims) Principal() entities.Principal {
	return entities.Principal{
		Registration: strings.TrimSpace(c.Registration),
		Name:         strings.TrimSpace(c.Name),
		Role:         entities.UserRole(strings.ToUpper(strings.TrimSpace(c.Role))),
		IsManager:    c.IsManager,
	}
}

// Auth verifies an HS256 bearer token and stores the caller as an
// entities.Principal in the gin context.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		p := claims.Principal()
		if p.Registration == "" || !p.Role.Valid() {
			log.Printf("[auth][middleware] token rejected registration=%q role=%q", p.Registration, p.Role)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// SetPrincipal stores p in the context. Used by Auth and by handler tests.
func SetPrincipal(c *gin.Context, p entities.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the caller stored by Auth.
func PrincipalFrom(c *gin.Context) (entities.Principal, error) {
	v, ok := c.Get(principalKey)
	if !ok {
		return entities.Principal{}, errNoPrincipal
	}
	p, ok := v.(entities.Principal)
	if !ok {
		return entities.Principal{}, errNoPrincipal
	}
	return p, nil
}
