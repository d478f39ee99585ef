package services

import (
	"errors"
	"fmt"
	"time"

	"pueblastay/config"
	"pueblastay/constants"
	"pueblastay/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no se encontró usuario con email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// CreateUser registra una cuenta nueva. El password llega plano y se
// guarda hasheado.
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("email y password son obligatorios")
	}

	if existing, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, fmt.Errorf("el email %s ya está en uso", existing.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
		Name:        input.Name,
		GoogleID:    input.GoogleID,
		Status:      constants.UserStatusActive,
	}

	if result := config.DB.Create(&user); result.Error != nil {
		return user, result.Error
	}

	return user, nil
}
