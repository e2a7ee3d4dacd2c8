package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/dgrijalva/jwt-go"
)

// JwtTokenizer issues and validates HS256-signed access tokens.
// Implements i.Tokenizer.
type JwtTokenizer struct {
	secretKey string
	issuer    string
}

// NewJwtTokenizer creates a tokenizer with the provided signing secret
// and issuer claim.
func NewJwtTokenizer(secretKey, issuer string) i.Tokenizer {
	return &JwtTokenizer{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate creates a JWT carrying the given claims, expiring after
// expTime.
func (s *JwtTokenizer) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	jwtClaims := jwt.MapClaims{
		"exp": time.Now().UTC().Add(expTime).Unix(),
		"iss": s.issuer,
	}
	for key, val := range claims {
		jwtClaims[key] = val
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the claims if valid.
func (s *JwtTokenizer) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// getSigningKey returns the signing key for token validation.
func (s *JwtTokenizer) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
