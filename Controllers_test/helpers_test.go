package Controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ratemybandeco/backend/config"
	"github.com/ratemybandeco/backend/models"
	"github.com/ratemybandeco/backend/router"
	"github.com/ratemybandeco/backend/utils"
)

func init() {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
}

// fakeMailer records confirmation mails instead of delivering them.
type fakeMailer struct {
	sent []sentMail
	fail bool
}

type sentMail struct {
	To       string
	Username string
	Link     string
}

func (m *fakeMailer) SendConfirmation(toEmail, username, confirmLink string) error {
	if m.fail {
		return errors.New("smtp relay unreachable")
	}
	m.sent = append(m.sent, sentMail{To: toEmail, Username: username, Link: confirmLink})
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Menu{},
		&models.Review{},
		&models.Report{},
	)
	require.NoError(t, err)

	return db
}

func setupRouterForTest(db *gorm.DB, mailer *fakeMailer) *gin.Engine {
	cfg := &config.Config{BaseURL: "http://testserver"}
	return router.SetupRouter(db, mailer, cfg)
}

func seedUser(t *testing.T, db *gorm.DB, username, email, course, password string, admin, confirmed bool) models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Username:       username,
		Email:          email,
		Course:         course,
		Password:       string(hashed),
		IsAdmin:        admin,
		EmailConfirmed: confirmed,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedRestaurant(t *testing.T, db *gorm.DB, name, unit string) models.Restaurant {
	restaurant := models.Restaurant{Name: name, Unit: unit, MealCapacity: 1500}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func seedMenu(t *testing.T, db *gorm.DB, restaurantID uint, date, mainDish string) models.Menu {
	menu := models.Menu{
		RestaurantID: restaurantID,
		Date:         mustParseDate(t, date),
		MealType:     "lunch",
		MainDish:     mainDish,
	}
	require.NoError(t, db.Create(&menu).Error)
	return menu
}

func mustParseDate(t *testing.T, date string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	require.NoError(t, err)
	return parsed
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return parsed
}

func loginAs(t *testing.T, r *gin.Engine, username, password string) string {
	w := doJSON(r, "POST", "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := parseBody(t, w)["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	return token
}
