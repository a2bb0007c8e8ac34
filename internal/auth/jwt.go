package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ActorBusiness = "BUSINESS"
	ActorConsumer = "CONSUMER"
)

func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// GenerateBusinessToken issues a signed session token for a business actor.
func GenerateBusinessToken(businessID int, licenseNumber string) (string, error) {
	if businessID <= 0 {
		return "", errors.New("invalid businessID passed to GenerateBusinessToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":           strconv.Itoa(businessID),
		"actor":         ActorBusiness,
		"licenseNumber": licenseNumber,
		"exp":           time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GenerateConsumerToken issues a signed session token for a consumer actor.
func GenerateConsumerToken(consumerID, name string) (string, error) {
	if consumerID == "" {
		return "", errors.New("empty consumerID passed to GenerateConsumerToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":   consumerID,
		"actor": ActorConsumer,
		"name":  name,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken returns the subject and actor kind of a valid token.
func ValidateToken(tokenString string) (string, string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}

	subject, _ := claims["sub"].(string)
	actor, _ := claims["actor"].(string)

	return subject, actor, nil
}
