package jwt

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/internal/utils"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"log"
	"time"
)

type (
	JWTService interface {
		GenerateTokenHousehold(householdID string) string
		ValidateTokenHousehold(token string) (*jwt.Token, error)
		GetHouseholdIDByToken(token string) (string, error)
	}

	jwtHouseholdClaim struct {
		HouseholdID string `json:"household_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "KITCHENMIND",
	}
}

func (j *jwtService) GenerateTokenHousehold(householdID string) string {
	claims := jwtHouseholdClaim{
		householdID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24 * 30)),
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

func (j *jwtService) ValidateTokenHousehold(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtHouseholdClaim{}, j.parseToken)
}

func (j *jwtService) GetHouseholdIDByToken(token string) (string, error) {
	t_Token, err := j.ValidateTokenHousehold(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtHouseholdClaim)
	return claims.HouseholdID, nil
}
