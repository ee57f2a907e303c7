package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-stylist/internal/domain/auth"
	apperrors "github.com/yanqian/ai-stylist/pkg/errors"
)

// authMiddleware requires a valid bearer token issued with auth.secret.
func authMiddleware(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		claims, verr := svc.ValidateToken(c.Request.Context(), token)
		if verr != nil {
			if apperrors.IsCode(verr, auth.CodeInvalidToken) {
				abortWithError(c, NewHTTPError(http.StatusForbidden, auth.CodeInvalidToken, apperrors.MessageOf(verr), verr))
				return
			}
			abortWithError(c, internalError(verr))
			return
		}
		setSubject(c, claims.Subject)
		c.Next()
	}
}

func bearerToken(header string) (string, *HTTPError) {
	if header == "" {
		return "", NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing authorization header", nil)
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", NewHTTPError(http.StatusUnauthorized, "unauthorized", "invalid authorization header", nil)
	}
	return token, nil
}
