package jwt

import (
	"context"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(userID int64, employeeID *int64, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID int64) (token string, jti string, expiresAt int64, err error)
	ParseRefreshToken(tokenString string) (userID int64, jti string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  time.Duration
	refreshTokenExpirationTime time.Duration
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpiration, refreshExpiration time.Duration) *JWTService {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessExpiration,
		refreshTokenExpirationTime: refreshExpiration,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID int64, employeeID *int64, role user.Role) (string, int64, error) {
	expiresAt := time.Now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
		"exp":     expiresAt,
	}
	if employeeID != nil {
		claims["employee_id"] = *employeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID int64) (string, string, int64, error) {
	expiresAt := time.Now().Add(j.refreshTokenExpirationTime).Unix()
	jti := uuid.NewString()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"jti":     jti,
		"type":    "refresh",
		"exp":     expiresAt,
	})
	return tokenString, jti, expiresAt, err
}

// ParseRefreshToken verifies the signature and expiry of a refresh token and
// returns its subject and JTI. Revocation state lives in storage, not here.
func (j *JWTService) ParseRefreshToken(tokenString string) (int64, string, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return 0, "", err
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return 0, "", err
	}

	if typ, _ := claims["type"].(string); typ != "refresh" {
		return 0, "", jwtauth.ErrUnauthorized
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return 0, "", jwtauth.ErrUnauthorized
	}

	userID, err := UserIDClaim(claims)
	if err != nil {
		return 0, "", err
	}
	return userID, jti, nil
}

// UserIDClaim extracts the user_id claim, tolerating the numeric types the
// JSON round trip can produce.
func UserIDClaim(claims map[string]interface{}) (int64, error) {
	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, jwtauth.ErrUnauthorized
	}
}

// EmployeeIDClaim extracts the optional employee_id claim.
func EmployeeIDClaim(claims map[string]interface{}) *int64 {
	switch v := claims["employee_id"].(type) {
	case float64:
		id := int64(v)
		return &id
	case int64:
		return &v
	default:
		return nil
	}
}
