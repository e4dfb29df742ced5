package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"
	"time"

	"shelf/config"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	sessionTokenVersion    = 1
	sessionTokenVersionKey = "ver"
)

var errUnsupportedTokenVersion = errors.New("unsupported session token version")

// sessionClaims is the token payload. iat and exp are epoch milliseconds, not the
// RFC 7519 seconds, so the getters convert them for the jwt validator.
type sessionClaims struct {
	Subject   string `json:"sub"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt *int64 `json:"exp,omitempty"`
}

func (c sessionClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == nil {
		return nil, nil
	}

	return &jwt.NumericDate{Time: time.UnixMilli(*c.ExpiresAt)}, nil
}

func (c sessionClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return &jwt.NumericDate{Time: time.UnixMilli(c.IssuedAt)}, nil
}

func (c sessionClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

func (c sessionClaims) GetIssuer() (string, error) {
	return "", nil
}

func (c sessionClaims) GetSubject() (string, error) {
	return c.Subject, nil
}

func (c sessionClaims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}

// sessionTokenService issues HS256 tokens of the form header.payload.signature,
// each segment base64url without padding. Nothing is stored server-side, so a
// token stays valid until exp even if it leaks.
type sessionTokenService struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
	parser   *jwt.Parser
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.TokenService, error) {
	lifetime := time.Duration(0)
	if cfg.Session != nil {
		lifetime = cfg.Session.Lifetime
	}

	svc, err := newSessionTokenService(cfg.SecretKey.Session, lifetime, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newSessionTokenService(secret string, lifetime time.Duration, now func() time.Time) (*sessionTokenService, error) {
	if secret == "" {
		return nil, errors.New("session token secret must be provided")
	}
	if lifetime <= 0 {
		lifetime = 7 * 24 * time.Hour
	}

	return &sessionTokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
			jwt.WithStrictDecoding(),
		),
	}, nil
}

// IssueToken signs a token for subject that expires after the configured lifetime.
func (s *sessionTokenService) IssueToken(subject uuid.UUID) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.lifetime)
	exp := expiresAt.UnixMilli()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Subject:   subject.String(),
		IssuedAt:  issuedAt.UnixMilli(),
		ExpiresAt: &exp,
	})
	token.Header[sessionTokenVersionKey] = sessionTokenVersion

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return signed, time.UnixMilli(exp), nil
}

// VerifyToken maps every parser failure onto the three session token errors.
func (s *sessionTokenService) VerifyToken(tokenString string) (*service.SessionClaims, error) {
	claims := &sessionClaims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, s.keyFunc)
	if err != nil {
		return nil, classifyTokenError(tokenString, err)
	}
	if !s.signatureSegmentMatches(tokenString) {
		return nil, domainerrors.ErrInvalidSignature.WrapMessage("signature segment mismatch")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrMalformedToken.WrapMessage("subject is not an account id")
	}

	return &service.SessionClaims{
		Subject:   subject,
		IssuedAt:  time.UnixMilli(claims.IssuedAt),
		ExpiresAt: time.UnixMilli(*claims.ExpiresAt),
	}, nil
}

func (s *sessionTokenService) keyFunc(token *jwt.Token) (any, error) {
	version, ok := token.Header[sessionTokenVersionKey].(float64)
	if !ok || int(version) != sessionTokenVersion {
		return nil, errUnsupportedTokenVersion
	}

	return s.secret, nil
}

// signatureSegmentMatches compares the encoded signature text, not the decoded
// MAC, so no two spellings of one signature both verify.
func (s *sessionTokenService) signatureSegmentMatches(tokenString string) bool {
	dot := strings.LastIndexByte(tokenString, '.')
	if dot < 0 {
		return false
	}

	expected, err := jwt.SigningMethodHS256.Sign(tokenString[:dot], s.secret)
	if err != nil {
		return false
	}
	encoded := base64.RawURLEncoding.EncodeToString(expected)

	return subtle.ConstantTimeCompare([]byte(tokenString[dot+1:]), []byte(encoded)) == 1
}

func classifyTokenError(tokenString string, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domainerrors.ErrInvalidSignature.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenMalformed) && onlySignatureUndecodable(tokenString):
		return domainerrors.ErrInvalidSignature.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return domainerrors.ErrExpiredToken.WrapMessage(err.Error())
	default:
		// ErrTokenMalformed, ErrTokenUnverifiable and anything else the parser reports
		return domainerrors.ErrMalformedToken.WrapMessage(err.Error())
	}
}

// onlySignatureUndecodable reports a three-segment token whose header and payload
// decode but whose signature segment does not.
func onlySignatureUndecodable(tokenString string) bool {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return false
	}

	encoding := base64.RawURLEncoding.Strict()
	for _, segment := range parts[:2] {
		if _, err := encoding.DecodeString(segment); err != nil {
			return false
		}
	}
	_, err := encoding.DecodeString(parts[2])

	return err != nil
}
