// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"buchverein_backend/internals/configs"
)

// AuthMiddleware verifies the bearer token and stores user_id and roles in
// the request locals. Token issuance lives in the external identity
// provider; this side only checks signature and expiry.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Locals("user_id", sub)
		}
		c.Locals("roles", extractRoles(claims))

		return c.Next()
	}
}

// RequireRoles lets the request through when the token carries at least one
// of the given roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		have, _ := c.Locals("roles").([]string)
		for _, want := range roles {
			for _, r := range have {
				if strings.EqualFold(r, want) {
					return c.Next()
				}
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "no token with sufficient permission")
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("missing Authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("invalid Authorization header")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().After(time.Unix(int64(exp), 0).Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

// extractRoles reads the roles claim, either a plain array or the
// Keycloak-style realm_access.roles nesting.
func extractRoles(claims jwt.MapClaims) []string {
	var roles []string
	appendAll := func(raw any) {
		list, ok := raw.([]any)
		if !ok {
			return
		}
		for _, r := range list {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
	}
	appendAll(claims["roles"])
	if realm, ok := claims["realm_access"].(map[string]any); ok {
		appendAll(realm["roles"])
	}
	return roles
}
