package middlewares

import (
	"globetrek/cmd/server/handlers/httperr"
	"globetrek/internal/config"
	"globetrek/internal/services/session"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Session returns a configured Fiber middleware that:
//
//   - reads the session token from the request cookie
//   - validates signature and expiry against cfg.JWTSecret
//   - stores the verified email in ctx.Locals("userEmail") so downstream
//     handlers can trust it.
//
// A missing cookie and an invalid or expired token both answer 403; a failed
// verification is terminal for the request.
func Session(cfg config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "cookie:" + session.CookieName,
		SuccessHandler: func(c *fiber.Ctx) error {
			// Token already verified at this point.
			token := c.Locals("user").(*jwt.Token)
			claims, _ := token.Claims.(jwt.MapClaims)

			email, ok := claims["email"].(string)
			if !ok || email == "" {
				return httperr.Fail(httperr.ErrForbidden)
			}

			c.Locals("userEmail", email)
			return c.Next()
		},

		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return httperr.Fail(httperr.ErrForbidden)
		},
	})
}
