package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName holds the signed session token in the browser.
const SessionCookieName = "sessionid"

var ErrNoSession = errors.New("no session")

var (
	mu     sync.RWMutex
	secret = []byte("change-me")
	ttl    = 14 * 24 * time.Hour
)

// Configure sets the signing secret and lifetime for new tokens.
func Configure(signingSecret string, lifetime time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if signingSecret != "" {
		secret = []byte(signingSecret)
	}
	if lifetime > 0 {
		ttl = lifetime
	}
}

func TTL() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ttl
}

func CreateToken(userID uint) (string, error) {
	mu.RLock()
	key, lifetime := secret, ttl
	mu.RUnlock()

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func ParseToken(tokenString string) (uint, error) {
	mu.RLock()
	key := secret
	mu.RUnlock()

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return 0, err
	}
	uid, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid subject: %w", err)
	}
	return uint(uid), nil
}

// ExtractTokenID returns the user id carried by the request's session cookie.
func ExtractTokenID(r *http.Request) (uint, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return 0, ErrNoSession
	}
	return ParseToken(cookie.Value)
}
