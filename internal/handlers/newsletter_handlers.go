package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//
// --- Newsletter Handlers (Public) ---
//

// SubscribeInput defines the JSON for the newsletter signup.
type SubscribeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe is the handler for POST /v1/newsletter.
// Unlike wishlist-add, a duplicate here IS surfaced to the user: the 400
// tells them they are already on the list.
func (h *Handlers) Subscribe(c *gin.Context) {
	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	_, err := h.DB.Exec(
		"INSERT INTO newsletter_subscribers (email, created_at) VALUES (?, ?)",
		input.Email, time.Now(),
	)
	if err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already subscribed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully subscribed!",
	})
}
