package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	contextIDKey = "context_id"
	issuer       = "users-console"
)

// BrowserContextConfig configures the browser-context cookie.
type BrowserContextConfig struct {
	CookieName string
	Secret     []byte
	TTL        time.Duration
}

// BrowserContext identifies the calling browser with a signed cookie and
// issues a fresh one when the cookie is missing or does not verify.
func BrowserContext(cfg BrowserContextConfig, log *zap.SugaredLogger) fiber.Handler {
	log = log.Named("browser_context")
	return func(c *fiber.Ctx) error {
		var id string
		if raw := c.Cookies(cfg.CookieName); raw != "" {
			parsed, err := ParseContextToken(raw, cfg.Secret)
			if err != nil {
				log.Warnw("replacing invalid browser context", "error", err)
			} else {
				id = parsed
			}
		}

		if id == "" {
			id = uuid.NewString()
			token, err := SignContextToken(id, cfg.Secret, cfg.TTL, time.Now())
			if err != nil {
				return fmt.Errorf("sign browser context: %w", err)
			}
			c.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    token,
				Path:     "/",
				Expires:  time.Now().Add(cfg.TTL),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(contextIDKey, id)
		return c.Next()
	}
}

// ContextID returns the browser-context id of the request or "".
func ContextID(c *fiber.Ctx) string {
	id, _ := c.Locals(contextIDKey).(string)
	return id
}

// SignContextToken returns an HS256 token whose subject is id.
func SignContextToken(id string, secret []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  id,
		Issuer:   issuer,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseContextToken verifies token and returns its subject.
func ParseContextToken(token string, secret []byte) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return "", fmt.Errorf("parse context token: %w", err)
	}
	if claims.Subject == "" {
		return "", errors.New("parse context token: empty subject")
	}
	return claims.Subject, nil
}
