package services

import (
	"database/sql"
	"math"
	"time"

	"github.com/ratemybandeco/backend/models"
	"gorm.io/gorm"
)

// StatsService computes rating aggregates over reviews. Averages are
// rounded to one decimal and are 0 for empty sets, never null.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// RatingSummary is an average/count pair for one scope of reviews.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// RestaurantAverage is the all-time average over every review of the
// restaurant, used by the public restaurant-list API.
func (ss *StatsService) RestaurantAverage(restaurantID uint) (float64, error) {
	return ss.average(ss.DB.Model(&models.Review{}).Where("restaurant_id = ?", restaurantID))
}

// MenuAverage scopes the average to one (restaurant, menu) pair, used by
// the menu-detail view.
func (ss *StatsService) MenuAverage(restaurantID, menuID uint) (float64, error) {
	return ss.average(ss.DB.Model(&models.Review{}).
		Where("restaurant_id = ? AND menu_id = ?", restaurantID, menuID))
}

// DayStats aggregates the (restaurant, menu) reviews created on the
// calendar day containing ref, in server-local time.
func (ss *StatsService) DayStats(restaurantID, menuID uint, ref time.Time) (RatingSummary, error) {
	start := startOfDay(ref)
	return ss.summary(restaurantID, menuID, start, start.AddDate(0, 0, 1))
}

// WeekStats aggregates over the Monday-to-Sunday week containing ref.
func (ss *StatsService) WeekStats(restaurantID, menuID uint, ref time.Time) (RatingSummary, error) {
	monday := startOfDay(ref).AddDate(0, 0, -mondayOffset(ref))
	return ss.summary(restaurantID, menuID, monday, monday.AddDate(0, 0, 7))
}

func (ss *StatsService) summary(restaurantID, menuID uint, from, to time.Time) (RatingSummary, error) {
	// A finished gorm chain cannot be reused, so the conditions are built
	// fresh for each finisher.
	scoped := func() *gorm.DB {
		return ss.DB.Model(&models.Review{}).
			Where("restaurant_id = ? AND menu_id = ?", restaurantID, menuID).
			Where("created_at >= ? AND created_at < ?", from, to)
	}

	var count int64
	if err := scoped().Count(&count).Error; err != nil {
		return RatingSummary{}, err
	}

	avg, err := ss.average(scoped())
	if err != nil {
		return RatingSummary{}, err
	}

	return RatingSummary{Average: avg, Count: count}, nil
}

func (ss *StatsService) average(query *gorm.DB) (float64, error) {
	var avg sql.NullFloat64
	row := query.Select("AVG(stars)").Row()
	if err := row.Scan(&avg); err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return RoundStars(avg.Float64), nil
}

// RoundStars rounds an average rating to one decimal place.
func RoundStars(v float64) float64 {
	return math.Round(v*10) / 10
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// mondayOffset is the number of days since the most recent Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
