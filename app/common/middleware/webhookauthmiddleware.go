package middleware

import (
	"net/http"
	"strings"

	"CluckAI/app/common/consts/errno"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

// WebhookAuthMiddleware verifies the HS256 token the NLU platform attaches to
// fulfillment calls. With an empty secret the middleware is a pass-through so
// local development does not need signed requests.
type WebhookAuthMiddleware struct {
	secret string
}

func NewWebhookAuthMiddleware(secret string) *WebhookAuthMiddleware {
	return &WebhookAuthMiddleware{secret: secret}
}

func (m *WebhookAuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.secret == "" {
			next(w, r)
			return
		}

		tokenStr := bearerToken(r)
		if tokenStr == "" {
			httpx.Error(w, errors.New(int(errno.TokenEmpty), "token is null"))
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New(int(errno.TokenInvalid), "unexpected signing method")
			}
			return []byte(m.secret), nil
		})
		if err != nil || !token.Valid {
			httpx.Error(w, errors.New(int(errno.TokenInvalid), "invalid webhook token"))
			return
		}

		next(w, r)
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return auth
}
