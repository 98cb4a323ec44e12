package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratemybandeco/backend/models"
	"github.com/ratemybandeco/backend/services"
	"github.com/ratemybandeco/backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB      *gorm.DB
	Mailer  services.Mailer
	BaseURL string
}

func NewAuthController(db *gorm.DB, mailer services.Mailer, baseURL string) *AuthController {
	return &AuthController{DB: db, Mailer: mailer, BaseURL: baseURL}
}

// Register creates an inactive account and emails the confirmation link.
// The account stays unusable until the token is redeemed.
func (ac *AuthController) Register(c *gin.Context) {
	type request struct {
		Username string `json:"username" binding:"required"`
		Course   string `json:"course" binding:"required"`
		Email    string `json:"email" binding:"required,email,uspemail"`
		Password string `json:"password" binding:"required,min=8"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("you must register with a valid @usp.br email, a username and a password of at least 8 characters"))
		return
	}

	var count int64
	if err := ac.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("this email is already registered"))
		return
	}
	if err := ac.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("this username is already taken"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token := uuid.NewString()
	user := models.User{
		Username:          req.Username,
		Course:            req.Course,
		Email:             req.Email,
		Password:          string(hashed),
		IsAdmin:           false,
		EmailConfirmed:    false,
		ConfirmationToken: &token,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	confirmLink := fmt.Sprintf("%s/confirm-email/%s", ac.BaseURL, token)
	if err := ac.Mailer.SendConfirmation(user.Email, user.Username, confirmLink); err != nil {
		// Account row already exists; report the delivery failure instead
		// of pretending the confirmation mail went out.
		utils.ErrorLogger.Printf("confirmation mail to %s failed: %v", user.Email, err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("could not send confirmation email"))
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (course=%s)", user.Email, user.Course)

	utils.RespondJSON(c, http.StatusCreated, "Registered, check your inbox for the confirmation link", gin.H{
		"user_id": user.ID,
	})
}

// ConfirmEmail redeems a confirmation token. The token is cleared on
// success, so a second call with the same token fails.
func (ac *AuthController) ConfirmEmail(c *gin.Context) {
	token := c.Param("token")

	var user models.User
	if err := ac.DB.Where("confirmation_token = ?", token).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("invalid confirmation token"))
		return
	}

	updates := map[string]interface{}{
		"email_confirmed":    true,
		"confirmation_token": nil,
	}
	if err := ac.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Email confirmed for user %s", user.Username)

	utils.RespondJSON(c, http.StatusOK, "Email confirmed, you can now log in", nil)
}

// Login -> JWT. Valid credentials on an unconfirmed non-admin account get
// a distinguished 403 rather than the generic credentials error.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}

	if !user.IsAdmin && !user.EmailConfirmed {
		utils.RespondError(c, http.StatusForbidden, errors.New("please confirm your email before logging in"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s (role=%s)", user.Username, user.Role())

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_role": user.Role(),
	})
}

// Logout blacklists the presented token for the rest of its lifetime.
func (ac *AuthController) Logout(c *gin.Context) {
	tokenInterface, exists := c.Get("token")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no token in request"))
		return
	}
	token, ok := tokenInterface.(string)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("invalid token type in context"))
		return
	}

	utils.BlacklistToken(token)
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}
