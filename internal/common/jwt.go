package common

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"contentshop/internal/config"
)

// Claims represents the data stored in a JWT token.
type Claims struct {
	UserID uint64 `json:"user_id"`
	Handle string `json:"handle"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    time.Duration(cfg.Auth.TokenHours) * time.Hour,
	}
}

func (tm *TokenManager) Generate(userID uint64, handle string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Handle: handle,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "contentshop",
			Subject:   "user-auth",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
