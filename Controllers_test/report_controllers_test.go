package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ratemybandeco/backend/models"
)

// seedReviewWithReport builds restaurant -> menu -> review -> report and
// returns the db handles needed by the moderation tests.
func seedReviewWithReport(t *testing.T, db *gorm.DB) (models.Review, models.Report) {
	restaurant := seedRestaurant(t, db, "Bandejão Central", "Campus Butantã")
	menu := seedMenu(t, db, restaurant.ID, "2026-08-31", "Strogonoff")
	author := seedUser(t, db, "autor", "autor@usp.br", "Engenharia", "password123", false, true)
	reporter := seedUser(t, db, "denunciante", "denunciante@usp.br", "Letras", "password123", false, true)

	review := models.Review{
		RestaurantID: restaurant.ID,
		MenuID:       menu.ID,
		UserID:       author.ID,
		Stars:        1,
		Comment:      "comentário ofensivo",
		Course:       author.Course,
	}
	require.NoError(t, db.Create(&review).Error)

	report := models.Report{
		ReviewID: review.ID,
		UserID:   reporter.ID,
		Reason:   models.ReasonOffensive,
		Status:   models.ReportUnderReview,
	}
	require.NoError(t, db.Create(&report).Error)

	return review, report
}

func TestCreateReport(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})

	restaurant := seedRestaurant(t, db, "Bandejão Central", "Campus Butantã")
	menu := seedMenu(t, db, restaurant.ID, "2026-08-31", "Strogonoff")
	author := seedUser(t, db, "autor", "autor@usp.br", "Engenharia", "password123", false, true)
	seedUser(t, db, "denunciante", "denunciante@usp.br", "Letras", "password123", false, true)

	review := models.Review{
		RestaurantID: restaurant.ID, MenuID: menu.ID, UserID: author.ID,
		Stars: 1, Comment: "spam spam spam", Course: author.Course,
	}
	require.NoError(t, db.Create(&review).Error)

	token := loginAs(t, r, "denunciante", "password123")

	w := doJSON(r, "POST", "/reviews/1/reports", token, map[string]string{"reason": "spam"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var report models.Report
	require.NoError(t, db.First(&report).Error)
	assert.Equal(t, models.ReportUnderReview, report.Status)
	assert.Equal(t, "spam", report.Reason)
}

func TestCreateReportUnknownReason(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})
	seedReviewWithReport(t, db)

	token := loginAs(t, r, "denunciante", "password123")

	w := doJSON(r, "POST", "/reviews/1/reports", token, map[string]string{"reason": "disliked"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateReportMissingReview(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})
	seedUser(t, db, "joao", "joao@usp.br", "Engenharia", "password123", false, true)

	token := loginAs(t, r, "joao", "password123")

	w := doJSON(r, "POST", "/reviews/99/reports", token, map[string]string{"reason": "spam"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModerateRemoveDeletesReviewAndReports(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})

	review, report := seedReviewWithReport(t, db)
	// A second report against the same review must vanish with it.
	second := models.Report{ReviewID: review.ID, UserID: report.UserID, Reason: models.ReasonSpam, Status: models.ReportUnderReview}
	require.NoError(t, db.Create(&second).Error)

	seedUser(t, db, "chefe", "chefe@usp.br", "", "password123", true, true)
	token := loginAs(t, r, "chefe", "password123")

	w := doJSON(r, "POST", "/admin/reports/1/moderate", token, map[string]string{"action": "remove"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reviewCount, reportCount int64
	db.Model(&models.Review{}).Where("id = ?", review.ID).Count(&reviewCount)
	db.Model(&models.Report{}).Where("review_id = ?", review.ID).Count(&reportCount)
	assert.Equal(t, int64(0), reviewCount)
	assert.Equal(t, int64(0), reportCount)
}

func TestModerateDismissKeepsReview(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})

	review, report := seedReviewWithReport(t, db)
	seedUser(t, db, "chefe", "chefe@usp.br", "", "password123", true, true)
	token := loginAs(t, r, "chefe", "password123")

	w := doJSON(r, "POST", "/admin/reports/1/moderate", token, map[string]string{"action": "dismiss"})
	require.Equal(t, http.StatusOK, w.Code)

	var reviewCount int64
	db.Model(&models.Review{}).Where("id = ?", review.ID).Count(&reviewCount)
	assert.Equal(t, int64(1), reviewCount)

	var updated models.Report
	require.NoError(t, db.First(&updated, report.ID).Error)
	assert.Equal(t, models.ReportDismissed, updated.Status)
}

func TestModerateResolvedReportConflicts(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})

	_, report := seedReviewWithReport(t, db)
	require.NoError(t, db.Model(&report).Update("status", models.ReportDismissed).Error)

	seedUser(t, db, "chefe", "chefe@usp.br", "", "password123", true, true)
	token := loginAs(t, r, "chefe", "password123")

	w := doJSON(r, "POST", "/admin/reports/1/moderate", token, map[string]string{"action": "remove"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestModerateUnknownAction(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})

	seedReviewWithReport(t, db)
	seedUser(t, db, "chefe", "chefe@usp.br", "", "password123", true, true)
	token := loginAs(t, r, "chefe", "password123")

	w := doJSON(r, "POST", "/admin/reports/1/moderate", token, map[string]string{"action": "escalate"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListPendingReportsAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db, &fakeMailer{})

	seedReviewWithReport(t, db)

	token := loginAs(t, r, "denunciante", "password123")
	w := doJSON(r, "GET", "/admin/reports", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	seedUser(t, db, "chefe", "chefe@usp.br", "", "password123", true, true)
	adminToken := loginAs(t, r, "chefe", "password123")
	w = doJSON(r, "GET", "/admin/reports", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := parseBody(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "under_review", first["status"])
	// The offending review rides along for the moderation queue.
	assert.Equal(t, "comentário ofensivo", first["review"].(map[string]interface{})["comment"])
}
