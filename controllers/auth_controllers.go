package controllers

import (
	"context"
	"log"

	"pueblastay/config"
	"pueblastay/constants"
	"pueblastay/dto"
	"pueblastay/models"
	"pueblastay/response"
	"pueblastay/services"
	"pueblastay/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

const tokenExpiryMinutes = 60 * 24 * 7 // una semana

func toAuthResponse(user *models.User, token string) dto.AuthResponse {
	return dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}
}

// Login autentica con email y password
func Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(request.Email)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toAuthResponse(&user, token))
}

// Register crea una cuenta de estudiante y su perfil
func Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        constants.RoleStudent,
	}

	if err := validator.ValidateUser(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, err := services.CreateUser(input)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// El perfil de estudiante se crea junto con la cuenta, o se liga si
	// ya existía por un inquiry anterior
	var profile models.StudentProfile
	if err := config.DB.Where("email = ?", user.Email).First(&profile).Error; err == nil {
		profile.UserID = &user.ID
		config.DB.Save(&profile)
	} else {
		profile = models.StudentProfile{
			UserID:     &user.ID,
			Name:       user.Name,
			Email:      user.Email,
			University: request.University,
			Country:    request.Country,
			Phone:      request.PhoneNumber,
		}
		if err := config.DB.Create(&profile).Error; err != nil {
			log.Printf("Error creando el perfil de estudiante: %v", err)
		}
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, toAuthResponse(&user, token))
}

// AuthGoogle valida el id_token de Google y crea la cuenta si no existe
func AuthGoogle(c *gin.Context) {
	var request dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := idtoken.Validate(context.Background(), request.IDToken, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}

	user, err := services.GetUserByEmail(email)
	if err != nil {
		user = models.User{
			Name:     name,
			Email:    email,
			Role:     constants.RoleStudent,
			GoogleID: payload.Subject,
			Status:   constants.UserStatusActive,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if user.GoogleID == "" {
		user.GoogleID = payload.Subject
		config.DB.Save(&user)
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toAuthResponse(&user, token))
}

// Logout no invalida nada del lado del servidor, el front tira el token
func Logout(c *gin.Context) {
	response.Success(c, nil)
}
