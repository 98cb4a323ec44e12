package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratemybandeco/backend/models"
	"github.com/ratemybandeco/backend/utils"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := pc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"course":   user.Course,
	})
}

// UpdateProfile lets a student change their course label.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var input struct {
		Course string `json:"course" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("course is required"))
		return
	}

	userID := c.GetUint("user_id")
	var user models.User
	if err := pc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := pc.DB.Model(&user).Update("course", input.Course).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile updated", gin.H{
		"course": input.Course,
	})
}
