package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie issued after a successful OAuth login.
const CookieName = "worklog_session"

const sessionTTL = 7 * 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
}

// SessionManager signs and verifies the session token carried in the cookie.
// The subject claim is the numeric user id.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: sessionTTL}
}

func (m *SessionManager) Issue(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString(m.secret)
}

func (m *SessionManager) Parse(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid session token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errors.New("invalid session subject")
	}
	return userID, nil
}

// TTL is exposed so the cookie's Max-Age can match the token's lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}
