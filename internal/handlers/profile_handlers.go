package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nileshsn/shopeasy-api/internal/models"
)

//
// --- Profile Handlers (Authenticated) ---
//

// profileUser flattens the auth identity and the profile row into the
// single "user" object the frontend expects.
func profileUser(userID int64, email string, p models.Profile) gin.H {
	return gin.H{
		"id":          userID,
		"email":       email, // from the token, never writable
		"full_name":   p.FullName,
		"phone":       p.Phone,
		"address":     p.Address,
		"city":        p.City,
		"state":       p.State,
		"country":     p.Country,
		"postal_code": p.PostalCode,
		"updated_at":  p.UpdatedAt,
	}
}

func (h *Handlers) loadProfile(userID int64) (models.Profile, error) {
	var p models.Profile
	err := h.DB.QueryRow(`
		SELECT id, full_name, phone, address, city, state, country, postal_code, updated_at
		FROM profiles
		WHERE id = ?`, userID,
	).Scan(&p.ID, &p.FullName, &p.Phone, &p.Address, &p.City, &p.State, &p.Country, &p.PostalCode, &p.UpdatedAt)
	return p, err
}

// GetProfile is the handler for GET /v1/profile.
// A missing profile row is not an error: the response carries empty fields
// until the user saves their details.
func (h *Handlers) GetProfile(c *gin.Context) {
	userID := callerID(c)
	email := callerEmail(c)

	profile, err := h.loadProfile(userID)
	if err != nil && err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	profile.ID = userID

	orders, err := h.loadUserOrders(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   profileUser(userID, email, profile),
		"orders": orders,
	})
}

// UpdateProfileInput defines the JSON for saving the profile.
// Every field is optional; omitted fields are written as NULL.
type UpdateProfileInput struct {
	FullName   *string `json:"full_name"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
}

// UpdateProfile is the handler for PUT /v1/profile.
// Update-only: the row was created at registration, so there is no
// insert-on-missing path here.
func (h *Handlers) UpdateProfile(c *gin.Context) {
	userID := callerID(c)
	email := callerEmail(c)

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.DB.Exec(`
		UPDATE profiles
		SET full_name = ?, phone = ?, address = ?, city = ?, state = ?, country = ?, postal_code = ?, updated_at = ?
		WHERE id = ?`,
		input.FullName, input.Phone, input.Address, input.City, input.State,
		input.Country, input.PostalCode, time.Now(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	profile, err := h.loadProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": profileUser(userID, email, profile),
	})
}

// GetProfileStats is the handler for GET /v1/profile/stats.
func (h *Handlers) GetProfileStats(c *gin.Context) {
	userID := callerID(c)

	var ordersCount int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM orders WHERE user_id = ?", userID).Scan(&ordersCount); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	var wishlistCount int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM wishlist WHERE user_id = ?", userID).Scan(&wishlistCount); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ordersCount":   ordersCount,
		"wishlistCount": wishlistCount,
	})
}
