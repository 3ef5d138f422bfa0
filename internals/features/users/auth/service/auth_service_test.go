package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	schoolModel "sekolahku_backend/internals/features/schools/model"
	"sekolahku_backend/internals/tenant"
)

const testSecret = "test-secret-yang-panjang"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&schoolModel.SchoolModel{}, &schoolModel.SchoolAdminModel{}))
	return db
}

func seedSchoolWithAdmin(t *testing.T, db *gorm.DB, slug, username, password string) *schoolModel.SchoolModel {
	t.Helper()
	school := &schoolModel.SchoolModel{SchoolSlug: slug, SchoolName: "Sekolah " + slug, SchoolIsActive: true}
	require.NoError(t, db.Create(school).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&schoolModel.SchoolAdminModel{
		SchoolAdminSchoolID:     school.SchoolID,
		SchoolAdminUsername:     username,
		SchoolAdminPasswordHash: string(hash),
	}).Error)
	return school
}

func newService(db *gorm.DB, slug string) *AuthService {
	return NewAuthService(db, NewJWTSigner(testSecret), tenant.NewResolver(db, slug))
}

func TestVerifyCredential(t *testing.T) {
	db := newTestDB(t)
	school := seedSchoolWithAdmin(t, db, "sd-harapan", "admin", "rahasia123")
	svc := newService(db, "sd-harapan")
	ctx := context.Background()

	assert.True(t, svc.VerifyCredential(ctx, school.SchoolID, "admin", "rahasia123"))
	assert.False(t, svc.VerifyCredential(ctx, school.SchoolID, "admin", "salah"))
	// fail closed: username tidak ada == password salah
	assert.False(t, svc.VerifyCredential(ctx, school.SchoolID, "hantu", "rahasia123"))
	// admin valid tapi untuk sekolah lain
	assert.False(t, svc.VerifyCredential(ctx, uuid.New(), "admin", "rahasia123"))
}

func TestIssueAndVerifyToken(t *testing.T) {
	db := newTestDB(t)
	school := seedSchoolWithAdmin(t, db, "sd-harapan", "admin", "rahasia123")
	svc := newService(db, "sd-harapan")
	ctx := context.Background()

	token, issued, err := svc.IssueToken(school.SchoolID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), issued.ExpiresAt, 5*time.Second)

	claims, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, claims.Role)
	assert.Equal(t, school.SchoolID, claims.SchoolID)
}

// Token ber-signature sah tapi role bukan admin tetap ditolak.
func TestVerifyTokenRejectsNonAdminRole(t *testing.T) {
	db := newTestDB(t)
	school := seedSchoolWithAdmin(t, db, "sd-harapan", "admin", "rahasia123")
	svc := newService(db, "sd-harapan")

	claims := NewAdminClaims(school.SchoolID, time.Now())
	claims.Role = "guru"
	token, err := svc.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	seedSchoolWithAdmin(t, db, "sd-harapan", "admin", "rahasia123")
	svc := newService(db, "sd-harapan")
	ctx := context.Background()

	for _, raw := range []string{"", "bukan.jwt", "a.b.c"} {
		_, err := svc.VerifyToken(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "raw=%q", raw)
	}
}

// Token sah milik deployment sekolah lain tetap ditolak walau menggunakan
// secret yang sama.
func TestVerifyTokenRejectsCrossTenant(t *testing.T) {
	db := newTestDB(t)
	schoolA := seedSchoolWithAdmin(t, db, "sd-a", "admin", "rahasia123")
	seedSchoolWithAdmin(t, db, "sd-b", "admin", "rahasia123")

	svcA := newService(db, "sd-a")
	svcB := newService(db, "sd-b")
	ctx := context.Background()

	tokenA, _, err := svcA.IssueToken(schoolA.SchoolID)
	require.NoError(t, err)

	// valid di deployment sendiri
	_, err = svcA.VerifyToken(ctx, tokenA)
	require.NoError(t, err)

	// ditolak di deployment sekolah lain
	_, err = svcB.VerifyToken(ctx, tokenA)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	db := newTestDB(t)
	school := seedSchoolWithAdmin(t, db, "sd-harapan", "admin", "rahasia123")
	svc := newService(db, "sd-harapan")

	// claims yang sudah lewat masa berlakunya
	expired := Claims{
		Role:      "admin",
		SchoolID:  school.SchoolID,
		IssuedAt:  time.Now().Add(-25 * time.Hour),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}
	token, err := svc.Signer.Sign(expired)
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	db := newTestDB(t)
	school := seedSchoolWithAdmin(t, db, "sd-harapan", "admin", "rahasia123")
	svc := newService(db, "sd-harapan")

	forged, err := NewJWTSigner("secret-lain").Sign(NewAdminClaims(school.SchoolID, time.Now()))
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Kedua signer harus saling menerima token satu sama lain — skema claims dan
// format wire-nya satu.
func TestSignerInterop(t *testing.T) {
	jwtSigner := NewJWTSigner(testSecret)
	edgeSigner := NewEdgeSigner(testSecret)
	claims := NewAdminClaims(uuid.New(), time.Now().UTC().Truncate(time.Second))

	t.Run("jwt_sign_edge_verify", func(t *testing.T) {
		token, err := jwtSigner.Sign(claims)
		require.NoError(t, err)

		got, err := edgeSigner.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, claims.Role, got.Role)
		assert.Equal(t, claims.SchoolID, got.SchoolID)
		assert.Equal(t, claims.ExpiresAt.Unix(), got.ExpiresAt.Unix())
	})

	t.Run("edge_sign_jwt_verify", func(t *testing.T) {
		token, err := edgeSigner.Sign(claims)
		require.NoError(t, err)

		got, err := jwtSigner.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, claims.Role, got.Role)
		assert.Equal(t, claims.SchoolID, got.SchoolID)
		assert.Equal(t, claims.ExpiresAt.Unix(), got.ExpiresAt.Unix())
	})

	t.Run("beda_secret_ditolak_dua_arah", func(t *testing.T) {
		token, err := NewEdgeSigner("secret-lain").Sign(claims)
		require.NoError(t, err)
		_, err = jwtSigner.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)

		token, err = NewJWTSigner("secret-lain").Sign(claims)
		require.NoError(t, err)
		_, err = edgeSigner.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestEdgeSignerRejectsExpiredByClock(t *testing.T) {
	signer := NewEdgeSigner(testSecret)
	claims := NewAdminClaims(uuid.New(), time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	// majukan jam melewati exp
	signer.Now = func() time.Time { return time.Now().Add(TokenTTL + time.Minute) }
	_, err = signer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	school := seedSchoolWithAdmin(t, db, "sd-harapan", "admin", "passwordlama")
	svc := newService(db, "sd-harapan")
	ctx := context.Background()

	t.Run("password_lama_salah", func(t *testing.T) {
		err := svc.ChangePassword(ctx, school.SchoolID, "admin", "bukanini", "passwordbaru")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("admin_tidak_ada", func(t *testing.T) {
		err := svc.ChangePassword(ctx, school.SchoolID, "hantu", "passwordlama", "passwordbaru")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("terlalu_pendek", func(t *testing.T) {
		err := svc.ChangePassword(ctx, school.SchoolID, "admin", "passwordlama", "pendek")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("tidak_berubah", func(t *testing.T) {
		err := svc.ChangePassword(ctx, school.SchoolID, "admin", "passwordlama", "passwordlama")
		assert.ErrorIs(t, err, ErrPasswordUnchanged)
	})

	t.Run("sukses", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, school.SchoolID, "admin", "passwordlama", "passwordbaru"))

		// password lama tidak berlaku lagi, yang baru berlaku
		assert.False(t, svc.VerifyCredential(ctx, school.SchoolID, "admin", "passwordlama"))
		assert.True(t, svc.VerifyCredential(ctx, school.SchoolID, "admin", "passwordbaru"))
	})

	t.Run("token_lama_tetap_sah", func(t *testing.T) {
		// penggantian password tidak me-revoke token yang beredar
		token, _, err := svc.IssueToken(school.SchoolID)
		require.NoError(t, err)
		require.NoError(t, svc.ChangePassword(ctx, school.SchoolID, "admin", "passwordbaru", "passwordterbaru"))

		_, err = svc.VerifyToken(ctx, token)
		assert.NoError(t, err)
	})
}
