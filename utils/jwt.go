package utils

import (
	"errors"
	"time"

	"azulpool/config"

	"github.com/golang-jwt/jwt"
)

func sessionSecret() []byte {
	return []byte(config.AppConfig.SessionSecret)
}

// SignSessionToken wraps a session token in a signed JWT so the cookie value
// cannot be forged. The session store still decides whether the token is live.
func SignSessionToken(token string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": token,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signed.SignedString(sessionSecret())
}

// ParseSessionToken validates the JWT signature and expiry and returns the
// embedded session token.
func ParseSessionToken(signed string) (string, error) {
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sessionSecret(), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("session token missing 'sub' claim")
	}
	return sub, nil
}
