package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ratemybandeco/backend/models"
	"github.com/ratemybandeco/backend/utils"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// SubmitReview records a star rating with an optional comment for a
// (restaurant, menu) pair. The author's course is snapshotted onto the
// review. Duplicate reviews by the same author are allowed.
func (rc *ReviewController) SubmitReview(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}
	menuID, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var input struct {
		Stars   int    `json:"stars" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if input.Stars < 1 || input.Stars > 5 {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("stars must be between 1 and 5"))
		return
	}

	// The menu lookup is scoped by restaurant, so a review can never tie a
	// menu to a restaurant it does not belong to.
	var menu models.Menu
	if err := rc.DB.Where("id = ? AND restaurant_id = ?", menuID, restaurantID).First(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu not found for this restaurant"))
		return
	}

	userID := c.GetUint("user_id")
	var author models.User
	if err := rc.DB.First(&author, userID).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("account not found"))
		return
	}

	review := models.Review{
		RestaurantID: menu.RestaurantID,
		MenuID:       menu.ID,
		UserID:       author.ID,
		Stars:        input.Stars,
		Comment:      input.Comment,
		Course:       author.Course,
	}

	if err := rc.DB.Create(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Review %d: %d stars for restaurant %d menu %d by user %d",
		review.ID, review.Stars, review.RestaurantID, review.MenuID, review.UserID)

	utils.RespondJSON(c, http.StatusCreated, "Review submitted", review)
}
