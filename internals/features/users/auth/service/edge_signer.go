// file: internals/features/users/auth/service/edge_signer.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EdgeSigner: signer untuk runtime terbatas (edge) yang tidak membawa library
// jwt — HS256 di-handroll dari crypto/hmac. Output WAJIB kompatibel dengan
// JWTSigner: token hasil Sign di sini lolos Verify di sana, dan sebaliknya.
type EdgeSigner struct {
	Secret []byte
	// Now bisa diganti di test untuk simulasi expiry.
	Now func() time.Time
}

func NewEdgeSigner(secret string) *EdgeSigner {
	return &EdgeSigner{Secret: []byte(secret), Now: time.Now}
}

// header konstan — satu algoritma, tidak dinegosiasikan.
const edgeHeader = `{"alg":"HS256","typ":"JWT"}`

type edgePayload struct {
	Role     string `json:"role"`
	SchoolID string `json:"school_id"`
	Iat      int64  `json:"iat"`
	Exp      int64  `json:"exp"`
}

var b64 = base64.RawURLEncoding

func (s *EdgeSigner) sign(data string) string {
	mac := hmac.New(sha256.New, s.Secret)
	mac.Write([]byte(data))
	return b64.EncodeToString(mac.Sum(nil))
}

func (s *EdgeSigner) Sign(c Claims) (string, error) {
	payload, err := json.Marshal(edgePayload{
		Role:     c.Role,
		SchoolID: c.SchoolID.String(),
		Iat:      c.IssuedAt.Unix(),
		Exp:      c.ExpiresAt.Unix(),
	})
	if err != nil {
		return "", err
	}

	signing := b64.EncodeToString([]byte(edgeHeader)) + "." + b64.EncodeToString(payload)
	return signing + "." + s.sign(signing), nil
}

func (s *EdgeSigner) Verify(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrInvalidToken
	}

	// signature dulu, constant-time
	expected := s.sign(parts[0] + "." + parts[1])
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return Claims{}, ErrInvalidToken
	}

	raw, err := b64.DecodeString(parts[1])
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	var p edgePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Claims{}, ErrInvalidToken
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if p.Exp <= now().Unix() {
		return Claims{}, ErrInvalidToken
	}

	sid, err := uuid.Parse(p.SchoolID)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		Role:      p.Role,
		SchoolID:  sid,
		IssuedAt:  time.Unix(p.Iat, 0),
		ExpiresAt: time.Unix(p.Exp, 0),
	}, nil
}
