// Package auth guards the service boundary: every RPC must carry a staff or
// admin bearer token. The reconciliation core never sees any of this.
package auth

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/internal/common"
)

// Claims is the token payload issued to dashboard sessions.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// Verifier validates bearer tokens and checks the role claim.
type Verifier struct {
	secret []byte
}

func NewVerifier(cfg common.AuthConfig) *Verifier {
	return &Verifier{secret: []byte(cfg.JWTSecret)}
}

// Generate issues a signed token. Used by the dashboard's session endpoint
// and by tests.
func Generate(cfg common.AuthConfig, userID, role string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(cfg.TokenLifespan).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})
	return t.SignedString([]byte(cfg.JWTSecret))
}

// Verify parses the token and returns its claims.
func (v *Verifier) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, common.NewAppError("BAD_TOKEN", "token validation failed", common.ErrUnauthorized)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, common.NewAppError("BAD_TOKEN", "token claims invalid", common.ErrUnauthorized)
	}
	return claims, nil
}

// IsStaff reports whether the role may call reconciliation RPCs.
func IsStaff(role string) bool {
	return role == constants.RoleStaff || role == constants.RoleAdmin
}
