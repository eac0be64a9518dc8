package session

import (
	"log/slog"
	"time"

	"globetrek/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// Identity is the verified identity claim embedded in a session token.
type Identity struct {
	Email  string
	Claims jwt.MapClaims
}

// Service mints and verifies signed session tokens
type Service struct {
	cfg config.Config
	log *slog.Logger
}

// NewService creates a new session service
func NewService(cfg config.Config, log *slog.Logger) *Service {
	return &Service{
		cfg: cfg,
		log: log,
	}
}

// TTL returns the configured session lifetime.
func (s *Service) TTL() time.Duration {
	return time.Duration(s.cfg.SessionTTLMinutes) * time.Minute
}

// Issue signs a token embedding the caller-supplied identity claim plus
// exp/iat. The claim is arbitrary and not validated beyond being non-empty;
// a token without an email field is issuable but fails every guarded route.
func (s *Service) Issue(claim map[string]any) (string, error) {
	if len(claim) == 0 {
		return "", ErrMissingClaim
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{}
	for k, v := range claim {
		claims[k] = v
	}
	claims["exp"] = now.Add(s.TTL()).Unix()
	claims["iat"] = now.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.log.Error("failed to sign session token", "error", err)
		return "", ErrSignToken
	}

	return signed, nil
}

// Verify checks signature and expiry of a raw token and returns the embedded
// identity. Any parse, signature, or expiry problem yields ErrInvalidToken.
func (s *Service) Verify(raw string) (Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{Email: email, Claims: claims}, nil
}
