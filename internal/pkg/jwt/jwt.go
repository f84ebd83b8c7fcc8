package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

var ErrInvalidToken = errors.New("invalid access token")

// Service issues and verifies HS256 access tokens. Tokens are minted by the
// identity provider in front of this service or by cmd/token for operators.
type Service interface {
	GenerateAccessToken(userID string, role user.Role) (token string, expiresAt int64, err error)
	ParseAccessToken(tokenString string) (user.Caller, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    tokenTypeAccess,
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// ParseAccessToken verifies signature and expiry and returns the caller.
func (j *JWTService) ParseAccessToken(tokenString string) (user.Caller, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return user.Caller{}, err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return user.Caller{}, ErrInvalidToken
	}
	return CallerFromClaims(claims)
}

// CallerFromClaims extracts the caller from verified access-token claims.
func CallerFromClaims(claims map[string]interface{}) (user.Caller, error) {
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != tokenTypeAccess {
		return user.Caller{}, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	caller := user.Caller{ID: userID, Role: user.Role(role)}
	if !caller.IsAuthenticated() {
		return user.Caller{}, ErrInvalidToken
	}
	return caller, nil
}
