package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratemybandeco/backend/models"
	"github.com/ratemybandeco/backend/services"
	"github.com/ratemybandeco/backend/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	DB    *gorm.DB
	Stats *services.StatsService
}

func NewAdminController(db *gorm.DB, stats *services.StatsService) *AdminController {
	return &AdminController{DB: db, Stats: stats}
}

// GetPanel lists every restaurant for the admin landing page.
func (ac *AdminController) GetPanel(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := ac.DB.Order("id").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Admin panel", gin.H{
		"restaurants": restaurants,
	})
}

// GetRestaurantDashboard returns rating statistics for a restaurant's
// current menu: today's average/count and the Monday-to-Sunday week's.
func (ac *AdminController) GetRestaurantDashboard(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var restaurant models.Restaurant
	if err := ac.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	menu, err := currentMenu(ac.DB, restaurant.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	today := services.RatingSummary{}
	week := services.RatingSummary{}
	if menu != nil {
		now := time.Now()
		today, err = ac.Stats.DayStats(restaurant.ID, menu.ID, now)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		week, err = ac.Stats.WeekStats(restaurant.ID, menu.ID, now)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant dashboard", gin.H{
		"restaurant":   restaurant,
		"current_menu": menu,
		"today":        today,
		"week":         week,
	})
}
