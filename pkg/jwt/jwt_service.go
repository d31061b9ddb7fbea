package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/utils"
)

type (
	JWTService interface {
		GenerateToken(userID string, userType string, role string, storeID string) string
		ValidateToken(token string) (*jwt.Token, error)
		GetClaimsByToken(token string) (*UserClaims, error)
	}

	// UserClaims identifies either a system admin or a store employee.
	UserClaims struct {
		UserID   string `json:"user_id"`
		UserType string `json:"user_type"`
		Role     string `json:"role"`
		StoreID  string `json:"store_id,omitempty"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "BAR-MANAGEMENT",
	}
}

func (j *jwtService) GenerateToken(userID string, userType string, role string, storeID string) string {
	claims := UserClaims{
		UserID:   userID,
		UserType: userType,
		Role:     role,
		StoreID:  storeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 8)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &UserClaims{}, j.parseToken)
}

func (j *jwtService) GetClaimsByToken(token string) (*UserClaims, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*UserClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
