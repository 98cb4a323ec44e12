package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratemybandeco/backend/models"
	"github.com/ratemybandeco/backend/services"
	"github.com/ratemybandeco/backend/utils"
	"gorm.io/gorm"
)

type RestaurantController struct {
	DB    *gorm.DB
	Stats *services.StatsService
}

func NewRestaurantController(db *gorm.DB, stats *services.StatsService) *RestaurantController {
	return &RestaurantController{DB: db, Stats: stats}
}

type restaurantListItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Capacity     int     `json:"capacity"`
	AverageStars float64 `json:"average_stars"`
}

// ListRestaurants is the public JSON API: every restaurant with its
// all-time average rating (0 when unreviewed). Returns a bare array, not
// the envelope, as API consumers expect a plain list.
func (rc *RestaurantController) ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := rc.DB.Order("id").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	items := make([]restaurantListItem, 0, len(restaurants))
	for _, r := range restaurants {
		average, err := rc.Stats.RestaurantAverage(r.ID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		items = append(items, restaurantListItem{
			ID:           r.ID,
			Name:         r.Name,
			Unit:         r.Unit,
			Capacity:     r.MealCapacity,
			AverageStars: average,
		})
	}

	c.JSON(http.StatusOK, items)
}

// Home is the student landing view: who is logged in plus the restaurant
// list to pick from.
func (rc *RestaurantController) Home(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := rc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var restaurants []models.Restaurant
	if err := rc.DB.Order("id").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Home", gin.H{
		"username":    user.Username,
		"course":      user.Course,
		"restaurants": restaurants,
	})
}
