package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	userController "medishare/controllers/user"
	"medishare/middleware"
	"medishare/models"
	"medishare/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type profileView struct {
	Name               string                   `json:"name"`
	Address            string                   `json:"address"`
	Phone              string                   `json:"phone"`
	Rating             float64                  `json:"rating"`
	Feedback           []map[string]interface{} `json:"feedback"`
	DonatedMedicines   []string                 `json:"donatedMedicines"`
	RequestedMedicines []string                 `json:"requestedMedicines"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Medicine{},
		&models.Request{},
		&models.Feedback{},
	))

	app := fiber.New()
	userRoutes.SetupUserRoutes(app, userController.New(db), testSecret)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "x", Address: "12 Lake Road", Phone: "9876543210"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func getProfile(t *testing.T, app *fiber.App, path, token string) (*http.Response, profileView) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	var view profileView
	if env.Data != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(env.Data, &view))
	}
	return resp, view
}

func TestProfileRatingAverage(t *testing.T) {
	app, db := setupApp(t)
	rated := createUser(t, db, "Ravi Donor", "ravi@example.com")
	rater := createUser(t, db, "Asha Verma", "asha@example.com")

	for _, rating := range []int{3, 5} {
		require.NoError(t, db.Create(&models.Feedback{
			UserID:      rater.ID,
			RatedUserID: rated.ID,
			Rating:      rating,
			Comment:     "ok",
		}).Error)
	}

	resp, view := getProfile(t, app, fmt.Sprintf("/api/profile/%d", rated.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4.0, view.Rating)
	assert.Len(t, view.Feedback, 2)

	// No feedback reports a concrete zero, not null
	resp, view = getProfile(t, app, fmt.Sprintf("/api/profile/%d", rater.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0.0, view.Rating)
	assert.Empty(t, view.Feedback)
}

func TestProfileAggregation(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db, "Ravi Donor", "ravi@example.com")

	require.NoError(t, db.Create(&models.Medicine{
		MedicineName: "Paracetamol", Address: "a", Phone: "p", Description: "d", UserID: user.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Request{
		MedicineName: "Ibuprofen", UserID: user.ID, Reference: "ref-1", Requested: true,
	}).Error)

	token, err := middleware.GenerateJWT(user.ID, testSecret)
	require.NoError(t, err)

	// Self profile and public profile share the same aggregation
	for _, path := range []string{"/api/profile", fmt.Sprintf("/api/profile/%d", user.ID)} {
		resp, view := getProfile(t, app, path, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Ravi Donor", view.Name)
		assert.Equal(t, []string{"Paracetamol"}, view.DonatedMedicines)
		assert.Equal(t, []string{"Ibuprofen"}, view.RequestedMedicines)
	}
}

func TestProfileNotFound(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := getProfile(t, app, "/api/profile/424242", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = getProfile(t, app, "/api/profile/not-a-number", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitFeedback(t *testing.T) {
	app, db := setupApp(t)
	rated := createUser(t, db, "Ravi Donor", "ravi@example.com")
	rater := createUser(t, db, "Asha Verma", "asha@example.com")

	token, err := middleware.GenerateJWT(rater.ID, testSecret)
	require.NoError(t, err)

	post := func(body fiber.Map) *http.Response {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := post(fiber.Map{"ratedUserId": rated.ID, "rating": 5, "comment": "prompt and kind"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var feedback models.Feedback
	require.NoError(t, db.Where("rated_user_id = ?", rated.ID).First(&feedback).Error)
	assert.Equal(t, rater.ID, feedback.UserID)
	assert.Equal(t, 5, feedback.Rating)

	// Out-of-range ratings are rejected before any write
	assert.Equal(t, http.StatusBadRequest, post(fiber.Map{"ratedUserId": rated.ID, "rating": 6}).StatusCode)
	assert.Equal(t, http.StatusBadRequest, post(fiber.Map{"ratedUserId": rated.ID, "rating": 0}).StatusCode)

	// A second rating between the same pair is allowed and counts
	resp = post(fiber.Map{"ratedUserId": rated.ID, "rating": 3})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Feedback{}).Where("rated_user_id = ?", rated.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
