package middleware

import (
	"errors"
	"net/http"
	"strings"

	"interior_estimator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SubjectKey holds the token subject on the gin context.
const SubjectKey = "authSubject"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authorization header", http.StatusUnauthorized)
	errBadScheme    = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization format, use 'Bearer <token>'", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errAuthDisabled = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication is not configured", http.StatusUnauthorized)
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// RequireBearer accepts HS256 tokens signed with secret. An empty secret
// rejects every request.
func RequireBearer(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if len(key) == 0 {
			abort(c, errAuthDisabled)
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, errMissingToken)
			return
		}
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, errBadScheme)
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errUnexpectedSigningMethod
			}
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			abort(c, errInvalidToken)
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
