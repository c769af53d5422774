package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tobias-homewood/jobly/internal/models"
)

// Claims is the identity carried by a signed token.
type Claims struct {
	Username string
	IsAdmin  bool
}

// CreateToken signs a JWT for the given user.
func CreateToken(user models.User, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"isAdmin":  user.IsAdmin,
		"iat":      jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString([]byte(secret))
}

// VerifyToken parses and validates a token string, returning its claims.
func VerifyToken(tokenString, secret string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}

	username, _ := claims["username"].(string)
	isAdmin, _ := claims["isAdmin"].(bool)
	return Claims{Username: username, IsAdmin: isAdmin}, nil
}
