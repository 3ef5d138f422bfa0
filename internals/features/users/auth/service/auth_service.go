// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	schoolModel "sekolahku_backend/internals/features/schools/model"
	"sekolahku_backend/internals/tenant"
)

// Error yang boleh sampai ke user (validation, bisa dikoreksi & resubmit).
var (
	ErrPasswordTooShort  = errors.New("password baru minimal 8 karakter")
	ErrPasswordUnchanged = errors.New("password baru tidak boleh sama dengan password lama")
	ErrWrongPassword     = errors.New("password saat ini salah")
)

const minPasswordLength = 8

// AuthService menggabungkan verifikasi kredensial, penerbitan/verifikasi
// token, dan ganti password. Resolver di-inject supaya cek cross-tenant
// pada VerifyToken bisa diuji tanpa setup proses penuh.
type AuthService struct {
	DB       *gorm.DB
	Signer   TokenSigner
	Resolver *tenant.Resolver
}

func NewAuthService(db *gorm.DB, signer TokenSigner, resolver *tenant.Resolver) *AuthService {
	return &AuthService{DB: db, Signer: signer, Resolver: resolver}
}

func (s *AuthService) findAdmin(ctx context.Context, schoolID uuid.UUID, username string) (*schoolModel.SchoolAdminModel, error) {
	var admin schoolModel.SchoolAdminModel
	err := s.DB.WithContext(ctx).
		Where("school_admin_school_id = ? AND school_admin_username = ?", schoolID, username).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// VerifyCredential: bcrypt compare. Fail closed — password salah DAN
// "admin tidak ada untuk sekolah ini" sama-sama false, tanpa membedakan.
func (s *AuthService) VerifyCredential(ctx context.Context, schoolID uuid.UUID, username, password string) bool {
	admin, err := s.findAdmin(ctx, schoolID, username)
	if err != nil {
		// samakan biaya dengan compare betulan supaya timing tidak bocorin
		// keberadaan username
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0xS0VdKqoM7i1xPBDMxS0mUq7Qu"),
			[]byte(password),
		)
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.SchoolAdminPasswordHash), []byte(password)) == nil
}

// IssueToken menerbitkan token admin 24 jam untuk sekolah ini.
func (s *AuthService) IssueToken(schoolID uuid.UUID) (string, Claims, error) {
	claims := NewAdminClaims(schoolID, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	return token, claims, err
}

// VerifyToken memvalidasi signature + expiry, LALU cek isolasi tenant:
// school_id dalam token harus sama dengan tenant milik proses ini. Token sah
// milik deployment sekolah lain tetap ditolak walau secret-nya sama.
// Semua kegagalan → ErrInvalidToken, tidak pernah panic/throw.
func (s *AuthService) VerifyToken(ctx context.Context, raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrInvalidToken
	}
	claims, err := s.Signer.Verify(raw)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.Role != constants.RoleAdmin {
		return Claims{}, ErrInvalidToken
	}

	ownID, err := s.Resolver.SchoolID(ctx)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.SchoolID != ownID {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// ChangePassword: re-verifikasi password lama, tolak yang terlalu pendek atau
// tidak berubah, lalu re-hash dan simpan. Token yang sudah beredar TIDAK
// di-invalidate (umur 24 jam membatasi exposure — tradeoff yang diterima).
func (s *AuthService) ChangePassword(ctx context.Context, schoolID uuid.UUID, username, current, newPassword string) error {
	admin, err := s.findAdmin(ctx, schoolID, username)
	if err != nil {
		return ErrWrongPassword // fail closed, jangan bedakan "admin tidak ada"
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.SchoolAdminPasswordHash), []byte(current)) != nil {
		return ErrWrongPassword
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if newPassword == current {
		return ErrPasswordUnchanged
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).
		Model(&schoolModel.SchoolAdminModel{}).
		Where("school_admin_id = ?", admin.SchoolAdminID).
		Update("school_admin_password_hash", string(hash)).Error
}
