package jwt

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
)

// QRClaims is the shift payload embedded in an attendance QR token. The
// frontend renders the token string as a QR image; scanning it back hands
// the punch-in handler the exact shift definition the code was minted for.
type QRClaims struct {
	ShiftID              string
	ShiftName            string
	ShiftType            string
	Start                string // "HH:MM"
	End                  string // "HH:MM"
	GraceMinutes         int
	HalfDayCutoffMinutes int
	ConveyanceAmount     string // decimal string
	DutyAmount           string // decimal string
}

type Service interface {
	GenerateAccessToken(userID string, email string, employeeID *string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	GenerateQRToken(claims QRClaims) (token string, expiresAt int64, err error)
	DecodeQRToken(tokenString string) (QRClaims, error)
	GenerateSSEToken(userID string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	qrTokenExpirationTime      string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func NewJWTService(secretKey, accessTokenExpirationTime, refreshTokenExpirationTime, qrTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		qrTokenExpirationTime:      qrTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, employeeID *string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"email":       email,
		"employee_id": j.returnValueOrNil(employeeID),
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	// The jti keeps two same-second logins from minting identical tokens,
	// which would otherwise share one revocation record.
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"jti":     uuid.NewString(),
		"user_id": userID,
		"exp":     expiresAt,
		"type":    "refresh",
	})
	return tokenString, expiresAt, err
}

// GenerateQRToken signs a shift definition into an attendance QR payload.
func (j *JWTService) GenerateQRToken(claims QRClaims) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.qrTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"type":             "qr",
		"shift_id":         claims.ShiftID,
		"shift_name":       claims.ShiftName,
		"shift_type":       claims.ShiftType,
		"start":            claims.Start,
		"end":              claims.End,
		"grace_minutes":    claims.GraceMinutes,
		"half_day_minutes": claims.HalfDayCutoffMinutes,
		"conveyance":       claims.ConveyanceAmount,
		"duty":             claims.DutyAmount,
		"exp":              expiresAt,
	})
	return tokenString, expiresAt, err
}

// DecodeQRToken verifies a scanned QR payload and returns the embedded
// shift definition.
func (j *JWTService) DecodeQRToken(tokenString string) (QRClaims, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return QRClaims{}, err
	}

	if tokenType, ok := token.Get("type"); !ok || tokenType != "qr" {
		return QRClaims{}, jwt.ErrInvalidJWT()
	}

	claims := QRClaims{
		ShiftID:   stringClaim(token, "shift_id"),
		ShiftName: stringClaim(token, "shift_name"),
		ShiftType: stringClaim(token, "shift_type"),
		Start:     stringClaim(token, "start"),
		End:       stringClaim(token, "end"),
		// jwx decodes numeric claims as float64
		GraceMinutes:         intClaim(token, "grace_minutes"),
		HalfDayCutoffMinutes: intClaim(token, "half_day_minutes"),
		ConveyanceAmount:     stringClaim(token, "conveyance"),
		DutyAmount:           stringClaim(token, "duty"),
	}
	if claims.ShiftID == "" || claims.Start == "" {
		return QRClaims{}, fmt.Errorf("qr token missing shift payload")
	}
	return claims, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(userID string) (token string, expiresIn int, err error) {
	expiresIn = 300 // 5 minutes
	expiresAt := time.Now().Add(5 * time.Minute).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "sse",
		"exp":     expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateSSEToken validates an SSE token and returns the user ID
func (j *JWTService) ValidateSSEToken(tokenString string) (userID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	if tokenType, ok := token.Get("type"); !ok || tokenType != "sse" {
		return "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	userID, ok = userIDVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return userID, nil
}

func (j *JWTService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func stringClaim(token jwt.Token, key string) string {
	v, ok := token.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func intClaim(token jwt.Token, key string) int {
	v, ok := token.Get(key)
	if !ok {
		return 0
	}
	f, _ := v.(float64)
	return int(f)
}
