package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elsonbaty123/wagbty2/config"
	"github.com/elsonbaty123/wagbty2/middleware"
	"github.com/elsonbaty123/wagbty2/models"
	"github.com/elsonbaty123/wagbty2/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.InitDB(":memory:")
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, u models.User) (models.User, string) {
	t.Helper()
	if u.PasswordHash == "" {
		u.PasswordHash = "x"
	}
	require.NoError(t, config.DB.Create(&u).Error)
	token, err := middleware.GenerateToken(&u)
	require.NoError(t, err)
	return u, token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateProfileEndpoint(t *testing.T) {
	r := setupRouter(t)
	user, token := createUser(t, models.User{
		Name: "Sara", Email: "sara@example.com", Role: models.RoleCustomer,
		Address: "Old Street", DeliveryZone: "zone-a",
	})

	t.Run("requires auth", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/settings/profile", "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an invalid email before touching the database", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/settings/profile", token, gin.H{
			"name": "Sara", "email": "1bad@mail.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Error in email", resp["error"])
		assert.Equal(t, "Email must start with a letter.", resp["description"])

		var stored models.User
		require.NoError(t, config.DB.First(&stored, "id = ?", user.ID).Error)
		assert.Equal(t, "sara@example.com", stored.Email)
	})

	t.Run("saves customer fields", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/settings/profile", token, gin.H{
			"name": "Sara Updated", "email": "sara@example.com",
			"phone": "0100000000", "address": "New Street 5", "delivery_zone": "zone-b",
			"specialty": "never stored", "bio": "never stored",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stored models.User
		require.NoError(t, config.DB.First(&stored, "id = ?", user.ID).Error)
		assert.Equal(t, "Sara Updated", stored.Name)
		assert.Equal(t, "New Street 5", stored.Address)
		assert.Equal(t, "zone-b", stored.DeliveryZone)
		assert.Empty(t, stored.Specialty, "chef fields must not leak into a customer update")
		assert.Empty(t, stored.Bio)
	})
}

func TestRemoveAvatarEndpoint(t *testing.T) {
	r := setupRouter(t)
	user, token := createUser(t, models.User{
		Name: "Aya", Email: "aya@example.com", Role: models.RoleChef,
		ImageURL: "data:image/png;base64,abc",
	})

	w := doJSON(r, http.MethodDelete, "/api/settings/avatar", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.User
	require.NoError(t, config.DB.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, models.DefaultChefAvatar, stored.ImageURL)
}

func TestResolveLocationEndpoint(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, models.User{
		Name: "Sara", Email: "sara@example.com", Role: models.RoleCustomer,
	})

	t.Run("unsupported device", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/settings/location", token, gin.H{"unsupported": true})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Geolocation is not supported by your browser.", resp["error"])
	})

	t.Run("permission denied error code", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/settings/location", token, gin.H{"error_code": 1})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp["description"], "allow location access")
	})

	t.Run("missing key falls back to raw coordinates with a warning", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/settings/location", token, gin.H{
			"lat": 30.04441, "lng": 31.23571,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Lat: 30.0444, Lng: 31.2357", resp["address"])
		assert.Equal(t, "Configuration Error", resp["warning"])
	})

	t.Run("neither coordinates nor error code", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/settings/location", token, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSetAvailabilityEndpoint(t *testing.T) {
	r := setupRouter(t)
	chef, chefToken := createUser(t, models.User{
		Name: "Aya", Email: "aya@example.com", Role: models.RoleChef,
		AvailabilityStatus: models.StatusBusy,
	})
	_, customerToken := createUser(t, models.User{
		Name: "Sara", Email: "sara@example.com", Role: models.RoleCustomer,
	})

	require.NoError(t, config.DB.Create(&models.Order{
		CustomerID: "c-1", ChefID: chef.ID, Status: models.StatusWaitingForChef,
	}).Error)

	t.Run("customer is blocked by the role guard", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/chef/availability", customerToken, gin.H{"status": "busy"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/chef/availability", chefToken, gin.H{"status": "on_vacation"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("busy to available notifies about the queued order", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/chef/availability", chefToken, gin.H{"status": "available"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stored models.User
		require.NoError(t, config.DB.First(&stored, "id = ?", chef.ID).Error)
		assert.Equal(t, models.StatusAvailable, stored.AvailabilityStatus)

		var notifications []models.Notification
		require.NoError(t, config.DB.Where("recipient_id = ?", chef.ID).Find(&notifications).Error)
		require.Len(t, notifications, 1)
		assert.Equal(t, "you_have_pending_orders", notifications[0].TitleKey)
		assert.Equal(t, "/chef/orders", notifications[0].Link)
	})

	t.Run("available to busy stays silent", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/chef/availability", chefToken, gin.H{"status": "busy"})
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		config.DB.Model(&models.Notification{}).Where("recipient_id = ?", chef.ID).Count(&count)
		assert.EqualValues(t, 1, count, "no second notification")
	})
}

func TestGetNavigationEndpoint(t *testing.T) {
	r := setupRouter(t)
	_, chefToken := createUser(t, models.User{
		Name: "Aya", Email: "aya@example.com", Role: models.RoleChef,
	})

	t.Run("guest sees the login entry", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/navigation", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Dashboard struct {
				Path string `json:"path"`
				Icon string `json:"icon"`
			} `json:"dashboard"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "/login", resp.Dashboard.Path)
		assert.Equal(t, "person", resp.Dashboard.Icon)
	})

	t.Run("chef sees the chef dashboard", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/navigation", chefToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Dashboard struct {
				Path string `json:"path"`
			} `json:"dashboard"`
			Label string `json:"label"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "/chef/dashboard", resp.Dashboard.Path)
		assert.Equal(t, "Dashboard", resp.Label)
	})
}
