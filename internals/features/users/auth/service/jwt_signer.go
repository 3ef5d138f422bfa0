// file: internals/features/users/auth/service/jwt_signer.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JWTSigner: signer untuk runtime penuh, berbasis golang-jwt. HS256.
type JWTSigner struct {
	Secret []byte
}

func NewJWTSigner(secret string) *JWTSigner {
	return &JWTSigner{Secret: []byte(secret)}
}

func (s *JWTSigner) Sign(c Claims) (string, error) {
	claims := jwt.MapClaims{
		"role":      c.Role,
		"school_id": c.SchoolID.String(),
		"iat":       c.IssuedAt.Unix(),
		"exp":       c.ExpiresAt.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

func (s *JWTSigner) Verify(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// tolak alg selain HS256 (termasuk "none")
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	sidStr, _ := claims["school_id"].(string)
	sid, err := uuid.Parse(sidStr)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	out := Claims{Role: role, SchoolID: sid}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}
