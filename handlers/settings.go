package handlers

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"

	"github.com/elsonbaty123/wagbty2/config"
	"github.com/elsonbaty123/wagbty2/geocode"
	"github.com/elsonbaty123/wagbty2/i18n"
	"github.com/elsonbaty123/wagbty2/middleware"
	"github.com/elsonbaty123/wagbty2/models"
	"github.com/elsonbaty123/wagbty2/nav"
	"github.com/elsonbaty123/wagbty2/settings"

	"github.com/gin-gonic/gin"
)

// MapsAPIKey is set at boot from config; empty disables the geocoding path.
var MapsAPIKey string

func requestLanguage(c *gin.Context) string {
	return i18n.DetectLanguage(c.GetHeader("Accept-Language"))
}

func translate(c *gin.Context, key string) string {
	return i18n.T(requestLanguage(c), key)
}

// gorm-backed collaborators for the settings workflow

type dbUserStore struct{}

func (dbUserStore) UpdateUser(ctx context.Context, userID string, fields map[string]any) error {
	return config.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(fields).Error
}

type dbOrderQuery struct{}

func (dbOrderQuery) OrdersByChef(chefID string) []models.Order {
	var orders []models.Order
	config.DB.Where("chef_id = ?", chefID).Find(&orders)
	return orders
}

type dbNotifier struct{}

func (dbNotifier) CreateNotification(ctx context.Context, n models.Notification) {
	// Fire-and-forget: a lost notification must not fail the caller.
	if err := config.DB.WithContext(ctx).Create(&n).Error; err != nil {
		log.Printf("notification create failed for recipient %s: %v", n.RecipientID, err)
	}
}

// requestLocator adapts the coordinates (or categorized error) reported by
// the client device into the one-shot Locator contract.
type requestLocator struct {
	coord     geocode.Coordinate
	errorCode int
}

func (l requestLocator) CurrentPosition(ctx context.Context) (geocode.Coordinate, error) {
	if l.errorCode != 0 {
		return geocode.Coordinate{}, &geocode.PositionError{Code: l.errorCode}
	}
	return l.coord, nil
}

func newSettingsSession(c *gin.Context, locator geocode.Locator) (*settings.Session, bool) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found", "redirect": "/login"})
		return nil, false
	}

	deps := settings.Deps{
		Users:      dbUserStore{},
		Orders:     dbOrderQuery{},
		Notifier:   dbNotifier{},
		Locator:    locator,
		MapsAPIKey: MapsAPIKey,
		Language:   requestLanguage(c),
	}
	if MapsAPIKey != "" {
		deps.Geocoder = geocode.NewClient(MapsAPIKey)
	}

	session, err := settings.NewSession(&user, deps)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated", "redirect": "/login"})
		return nil, false
	}
	return session, true
}

// failureResponse renders a settings.Failure as a localized toast payload.
func failureResponse(c *gin.Context, status int, f *settings.Failure) {
	desc := f.Detail
	if desc == "" {
		desc = translate(c, f.MessageKey)
	}
	c.JSON(status, gin.H{
		"error":       translate(c, f.TitleKey),
		"description": desc,
	})
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
	// ImageData is an optional base64-encoded replacement picture
	ImageData string `json:"image_data"`
	ImageMime string `json:"image_mime"`

	// Customer-only
	Address      string `json:"address"`
	DeliveryZone string `json:"delivery_zone"`

	// Chef-only
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
}

// UpdateProfile edits the caller's profile through the settings workflow
func UpdateProfile(c *gin.Context) {
	session, ok := newSettingsSession(c, nil)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session.Draft.Name = req.Name
	session.Draft.Email = req.Email
	session.Draft.Phone = req.Phone
	session.Draft.Address = req.Address
	session.Draft.DeliveryZone = req.DeliveryZone
	session.Draft.Specialty = req.Specialty
	session.Draft.Bio = req.Bio

	if req.ImageData != "" {
		raw, err := base64.StdEncoding.DecodeString(req.ImageData)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image_data is not valid base64"})
			return
		}
		session.AttachImage(raw, req.ImageMime)
	}

	if err := session.Save(c.Request.Context()); err != nil {
		if f, isFailure := err.(*settings.Failure); isFailure {
			status := http.StatusBadGateway
			if f.TitleKey == "error_in_email" {
				status = http.StatusBadRequest
			}
			failureResponse(c, status, f)
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     translate(c, "profile_updated"),
		"description": translate(c, "profile_updated_desc"),
		"user":        session.User(),
	})
}

// RemoveAvatar restores the role default avatar immediately
func RemoveAvatar(c *gin.Context) {
	session, ok := newSettingsSession(c, nil)
	if !ok {
		return
	}

	if err := session.RemoveImage(c.Request.Context()); err != nil {
		if f, isFailure := err.(*settings.Failure); isFailure {
			failureResponse(c, http.StatusBadGateway, f)
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     translate(c, "profile_picture_removed"),
		"description": translate(c, "profile_picture_restored_to_default"),
		"image_url":   session.User().ImageURL,
	})
}

type ResolveLocationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
	// ErrorCode relays a device geolocation failure: 1=permission denied,
	// 2=position unavailable, 3=timeout.
	ErrorCode int `json:"error_code"`
	// Unsupported is set when the device has no geolocation capability.
	Unsupported bool `json:"unsupported"`
}

// ResolveLocation turns a device coordinate into a formatted address
func ResolveLocation(c *gin.Context) {
	var req ResolveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var locator geocode.Locator
	if !req.Unsupported {
		loc := requestLocator{errorCode: req.ErrorCode}
		if req.Lat != nil && req.Lng != nil {
			loc.coord = geocode.Coordinate{Lat: *req.Lat, Lng: *req.Lng}
		} else if req.ErrorCode == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat/lng or error_code required"})
			return
		}
		locator = loc
	}

	session, ok := newSettingsSession(c, locator)
	if !ok {
		return
	}

	result, err := session.ResolveLocation(c.Request.Context())
	if err != nil {
		if f, isFailure := err.(*settings.Failure); isFailure {
			failureResponse(c, http.StatusUnprocessableEntity, f)
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"message": translate(c, "location_retrieved_successfully"),
		"address": result.Address,
	}
	if result.Warning != nil {
		resp["warning"] = translate(c, result.Warning.TitleKey)
		resp["warning_description"] = translate(c, result.Warning.MessageKey)
	}
	c.JSON(http.StatusOK, resp)
}

type SetAvailabilityRequest struct {
	Status models.AvailabilityStatus `json:"status" binding:"required"`
}

// SetAvailability transitions a chef's availability status
func SetAvailability(c *gin.Context) {
	session, ok := newSettingsSession(c, nil)
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.SetAvailability(c.Request.Context(), req.Status); err != nil {
		switch {
		case err == settings.ErrNotChef:
			c.JSON(http.StatusForbidden, gin.H{"error": "Only chefs have an availability status"})
		case err == settings.ErrInvalidAvailability:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be: available, busy, or closed"})
		default:
			if f, isFailure := err.(*settings.Failure); isFailure {
				failureResponse(c, http.StatusBadGateway, f)
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": translate(c, "availability_status_updated"),
		"status":  session.User().AvailabilityStatus,
	})
}

// GetNavigation returns the header's role-aware dashboard entry
func GetNavigation(c *gin.Context) {
	var user *models.User
	if userID, exists := c.Get("userID"); exists {
		var u models.User
		if err := config.DB.First(&u, "id = ?", userID).Error; err == nil {
			user = &u
		}
	}
	item := nav.Dashboard(user)
	c.JSON(http.StatusOK, gin.H{
		"dashboard": item,
		"label":     translate(c, item.Label),
	})
}
