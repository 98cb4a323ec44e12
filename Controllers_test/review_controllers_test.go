package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratemybandeco/backend/models"
)

func TestSubmitReviewAndListIt(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})

	restaurant := seedRestaurant(t, db, "Bandejão Central", "Campus Butantã")
	menu := seedMenu(t, db, restaurant.ID, "2026-08-31", "Strogonoff")
	seedUser(t, db, "joao", "joao@usp.br", "Engenharia", "password123", false, true)

	token := loginAs(t, r, "joao", "password123")

	w := doJSON(r, "POST", "/restaurants/1/menus/1/reviews", token, map[string]interface{}{
		"stars":   4,
		"comment": "Comida boa hoje",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var review models.Review
	require.NoError(t, db.First(&review).Error)
	assert.Equal(t, 4, review.Stars)
	assert.Equal(t, restaurant.ID, review.RestaurantID)
	assert.Equal(t, menu.ID, review.MenuID)
	// Course snapshotted from the author at submission time.
	assert.Equal(t, "Engenharia", review.Course)
	assert.False(t, review.CreatedAt.IsZero())

	wMenu := doJSON(r, "GET", "/restaurants/1/menu", "", nil)
	require.Equal(t, http.StatusOK, wMenu.Code)
	data := parseBody(t, wMenu)["data"].(map[string]interface{})
	reviews := data["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	assert.Equal(t, "Comida boa hoje", reviews[0].(map[string]interface{})["comment"])
	assert.Equal(t, 4.0, data["average_stars"])
}

func TestSubmitReviewRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})
	restaurant := seedRestaurant(t, db, "Bandejão Central", "Campus Butantã")
	seedMenu(t, db, restaurant.ID, "2026-08-31", "Strogonoff")

	w := doJSON(r, "POST", "/restaurants/1/menus/1/reviews", "", map[string]interface{}{
		"stars": 4,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitReviewStarsBounds(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})
	restaurant := seedRestaurant(t, db, "Bandejão Central", "Campus Butantã")
	seedMenu(t, db, restaurant.ID, "2026-08-31", "Strogonoff")
	seedUser(t, db, "joao", "joao@usp.br", "Engenharia", "password123", false, true)

	token := loginAs(t, r, "joao", "password123")

	for _, stars := range []int{-1, 6, 42} {
		w := doJSON(r, "POST", "/restaurants/1/menus/1/reviews", token, map[string]interface{}{
			"stars": stars,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "stars=%d", stars)
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmitReviewMenuMustBelongToRestaurant(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})

	first := seedRestaurant(t, db, "Bandejão Central", "Campus Butantã")
	other := seedRestaurant(t, db, "Bandejão Física", "Campus Butantã")
	seedMenu(t, db, first.ID, "2026-08-31", "Strogonoff")
	otherMenu := seedMenu(t, db, other.ID, "2026-08-31", "Feijoada")
	seedUser(t, db, "joao", "joao@usp.br", "Engenharia", "password123", false, true)

	token := loginAs(t, r, "joao", "password123")

	// Menu 2 belongs to restaurant 2, not restaurant 1.
	w := doJSON(r, "POST", "/restaurants/1/menus/2/reviews", token, map[string]interface{}{
		"stars": 5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	_ = otherMenu
	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmitReviewDuplicatesAllowed(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})
	restaurant := seedRestaurant(t, db, "Bandejão Central", "Campus Butantã")
	seedMenu(t, db, restaurant.ID, "2026-08-31", "Strogonoff")
	seedUser(t, db, "joao", "joao@usp.br", "Engenharia", "password123", false, true)

	token := loginAs(t, r, "joao", "password123")

	for _, stars := range []int{5, 3} {
		w := doJSON(r, "POST", "/restaurants/1/menus/1/reviews", token, map[string]interface{}{
			"stars": stars,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(2), count)
}
