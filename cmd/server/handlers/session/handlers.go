package session

import (
	"errors"
	"time"

	"globetrek/cmd/server/handlers/handlerutil"
	"globetrek/cmd/server/handlers/httperr"
	"globetrek/internal/logger"
	sessionsvc "globetrek/internal/services/session"

	"github.com/gofiber/fiber/v2"
)

// Issuer defines the interface for the session token service
type Issuer interface {
	Issue(claim map[string]any) (string, error)
	TTL() time.Duration
}

// Handlers contains the session HTTP handlers
type Handlers struct {
	issuer Issuer
}

// NewHandlers creates new session handlers
func NewHandlers(issuer Issuer) *Handlers {
	return &Handlers{
		issuer: issuer,
	}
}

// Login mints a session token for the caller-supplied identity claim and
// transports it via the session cookie. There is no separate token-retrieval
// endpoint; the cookie is the only credential channel.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var claim map[string]any
	if err := c.BodyParser(&claim); err != nil {
		logger.L().Warn("failed to parse identity claim", "handler", "Login", "error", err)
		return httperr.Fail(httperr.New(401, sessionsvc.ErrMissingClaim.Error()))
	}

	token, err := h.issuer.Issue(claim)
	if err != nil {
		if errors.Is(err, sessionsvc.ErrMissingClaim) {
			logger.L().Warn("token issuance without identity claim", "handler", "Login")
			return httperr.Fail(httperr.New(401, err.Error()))
		}
		logger.L().Error("token issuance failed", "handler", "Login", "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	setSessionCookie(c, token, time.Now().Add(h.issuer.TTL()))

	return handlerutil.OKMessage(c, "session token issued")
}

// Logout instructs the client to discard the session cookie. The token
// itself stays cryptographically valid until its natural expiry; a copy held
// elsewhere keeps working.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	setSessionCookie(c, "", time.Unix(0, 0))

	return handlerutil.OKMessage(c, "session cookie cleared")
}

// setSessionCookie writes the cookie with the attributes required for a
// cross-site frontend: HTTPOnly, Secure, SameSite=None.
func setSessionCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionsvc.CookieName,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}
