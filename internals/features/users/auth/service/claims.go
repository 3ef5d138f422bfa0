// file: internals/features/users/auth/service/claims.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// TokenTTL: umur token 24 jam, independen dari idle-timeout di sisi client.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken dipakai untuk SEMUA kegagalan verifikasi token — malformed,
// signature salah, expired, school_id beda. Caller tidak boleh bisa membedakan
// penyebabnya.
var ErrInvalidToken = errors.New("token tidak valid")

// Claims adalah satu-satunya skema payload token. Dua signer (JWT library dan
// edge) sama-sama memakai skema ini sehingga token hasil salah satu bisa
// diverifikasi oleh yang lain.
type Claims struct {
	Role      string
	SchoolID  uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NewAdminClaims membuat claims standar untuk sesi admin sekolah.
func NewAdminClaims(schoolID uuid.UUID, now time.Time) Claims {
	return Claims{
		Role:      constants.RoleAdmin,
		SchoolID:  schoolID,
		IssuedAt:  now,
		ExpiresAt: now.Add(TokenTTL),
	}
}

// TokenSigner: kedua implementasi (JWTSigner untuk runtime penuh, EdgeSigner
// untuk runtime terbatas) harus saling kompatibel — ditest silang.
type TokenSigner interface {
	Sign(c Claims) (string, error)
	Verify(token string) (Claims, error)
}
