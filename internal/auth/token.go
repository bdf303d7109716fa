package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single failure result of Decode. Bad encryption,
// bad signature, malformed claims and expiry all collapse into it so callers
// cannot learn why a token was rejected.
var ErrInvalidToken = errors.New("invalid token")

// TokenSubject identifies the user a token was issued to.
type TokenSubject struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Claims is the signed payload carried inside the encrypted token. The
// token identifier lives in RegisteredClaims.ID and doubles as the
// revocation key.
type Claims struct {
	User       TokenSubject `json:"user"`
	Refresh    bool         `json:"refresh"`
	ResendOnly bool         `json:"resend_only,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec signs session claims with an HMAC key and then encrypts the
// signed token, so the signed structure is never exposed to clients or
// intermediaries.
type TokenCodec struct {
	signingKey    []byte
	encryptionKey *fernet.Key
}

// NewTokenCodec builds a codec. encryptionKey must be a base64-encoded
// 32-byte Fernet key; both keys are loaded once at startup and immutable.
func NewTokenCodec(signingKey, encryptionKey string) (*TokenCodec, error) {
	if signingKey == "" {
		return nil, errors.New("signing key required")
	}
	key, err := fernet.DecodeKey(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	return &TokenCodec{signingKey: []byte(signingKey), encryptionKey: key}, nil
}

// Issue builds a token for the subject with a fresh token ID, signs it and
// encrypts the signed form. refresh marks the token as a refresh token.
func (tc *TokenCodec) Issue(subject TokenSubject, ttl time.Duration, refresh bool) (string, time.Time, error) {
	return tc.issue(subject, ttl, refresh, false)
}

// IssueResendOnly builds a short-lived non-session token that only
// authorizes resending the verification email.
func (tc *TokenCodec) IssueResendOnly(subject TokenSubject, ttl time.Duration) (string, time.Time, error) {
	return tc.issue(subject, ttl, false, true)
}

func (tc *TokenCodec) issue(subject TokenSubject, ttl time.Duration, refresh, resendOnly bool) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := &Claims{
		User:       subject,
		Refresh:    refresh,
		ResendOnly: resendOnly,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}

	encrypted, err := fernet.EncryptAndSign([]byte(signed), tc.encryptionKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return string(encrypted), expiresAt, nil
}

// Decode decrypts the token, verifies the inner signature and expiry and
// returns the claims. Every failure mode yields ErrInvalidToken.
func (tc *TokenCodec) Decode(token string) (*Claims, error) {
	signed := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{tc.encryptionKey})
	if signed == nil {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(string(signed), &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return tc.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateEncryptionKey returns a fresh base64 Fernet key, for provisioning.
func GenerateEncryptionKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", err
	}
	return key.Encode(), nil
}
