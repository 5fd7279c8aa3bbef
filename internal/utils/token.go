// internal/utils/token.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Admin areas. Each has its own shared secret and its own tokens; a
// products-area token does not open the orders dashboard.
const (
	AreaProducts = "products"
	AreaOrders   = "orders"
)

// AdminClaims is the capability carried by a dashboard login: which area
// it opens and until when.
type AdminClaims struct {
	Area string `json:"area"`
	jwt.RegisteredClaims
}

var tokenSecret = []byte("change-me-in-production")

func SetTokenSecret(secret string) {
	tokenSecret = []byte(secret)
}

func GenerateAdminToken(area string, ttlHours int) (string, error) {
	if area != AreaProducts && area != AreaOrders {
		return "", errors.New("unknown admin area")
	}

	claims := AdminClaims{
		Area: area,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "storefront-backend",
			Subject:   "admin:" + area,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tokenSecret)
}

func ValidateAdminToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tokenSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
