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

type MenuController struct {
	DB    *gorm.DB
	Stats *services.StatsService
}

func NewMenuController(db *gorm.DB, stats *services.StatsService) *MenuController {
	return &MenuController{DB: db, Stats: stats}
}

// GetCurrentMenu returns the restaurant's latest menu with its reviews and
// their average rating. Public, no auth.
func (mc *MenuController) GetCurrentMenu(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var restaurant models.Restaurant
	if err := mc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	menu, err := currentMenu(mc.DB, restaurant.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if menu == nil {
		utils.RespondJSON(c, http.StatusOK, "Menu detail", gin.H{
			"restaurant":    restaurant,
			"menu":          nil,
			"reviews":       []models.Review{},
			"average_stars": 0.0,
		})
		return
	}

	var reviews []models.Review
	if err := mc.DB.Where("restaurant_id = ? AND menu_id = ?", restaurant.ID, menu.ID).
		Order("id").Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	average, err := mc.Stats.MenuAverage(restaurant.ID, menu.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", gin.H{
		"restaurant":    restaurant,
		"menu":          menu,
		"reviews":       reviews,
		"average_stars": average,
	})
}

// CreateMenu inserts a new dated menu entry for a restaurant. Admin only.
// No uniqueness on (restaurant, date): the latest entry wins as current.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var restaurant models.Restaurant
	if err := mc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	type request struct {
		Date             string `json:"date" binding:"required"`
		MealType         string `json:"meal_type" binding:"required"`
		SideDish         string `json:"side_dish"`
		MainDish         string `json:"main_dish" binding:"required"`
		SecondDish       string `json:"second_dish"`
		VegetarianOption string `json:"vegetarian_option"`
		Salads           string `json:"salads"`
		Dessert          string `json:"dessert"`
		Extras           string `json:"extras"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date must be in YYYY-MM-DD format"))
		return
	}

	menu := models.Menu{
		RestaurantID:     restaurant.ID,
		Date:             date,
		MealType:         req.MealType,
		SideDish:         req.SideDish,
		MainDish:         req.MainDish,
		SecondDish:       req.SecondDish,
		VegetarianOption: req.VegetarianOption,
		Salads:           req.Salads,
		Dessert:          req.Dessert,
		Extras:           req.Extras,
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New menu entry %d for restaurant %d (%s)", menu.ID, restaurant.ID, req.Date)

	utils.RespondJSON(c, http.StatusCreated, "Menu entry created", menu)
}

// currentMenu fetches the latest-dated menu entry; ties on date go to the
// most recently inserted one. Returns nil when the restaurant has none.
func currentMenu(db *gorm.DB, restaurantID uint) (*models.Menu, error) {
	var menu models.Menu
	err := db.Where("restaurant_id = ?", restaurantID).
		Order("date DESC").Order("id DESC").
		First(&menu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}
