package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/paveldk/go-blog-api/models"
)

// GenerateJWTToken issues an HMAC-SHA256 signed JWT for the given user.
//
// Claims carried by the token:
//   - Issuer    (iss): the issuing service
//   - Subject   (sub): the user ID as a decimal string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - role:            the account role at issuance time
//
// Every argument is required; an empty issuer or sign key, a zero duration,
// or an unknown role is rejected before signing.
func GenerateJWTToken(issuer string, userID int64, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || !role.Valid() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, UserID: userID, Role: role}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// The signature is checked against tokenSignKey, the iss claim against
// tokenIssuer, and the exp claim against the current time. The subject must
// be present and parse as an int64 user ID, and the role claim must belong
// to the known role set.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("validating JWT token: %w", err)
	}

	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errors.New("unexpected token claims type")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("reading token subject: %w", err)
	}
	if subject == "" {
		return models.Token{}, errors.New("token subject is empty")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("token subject is not a user ID: %w", err)
	}

	if !claims.Role.Valid() {
		return models.Token{}, errors.New("unknown role in token claims")
	}

	return models.Token{Token: token, UserID: userID, Role: claims.Role}, nil
}
