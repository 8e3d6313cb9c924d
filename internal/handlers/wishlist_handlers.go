package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nileshsn/shopeasy-api/internal/models"
)

//
// --- Wishlist Handlers (Authenticated) ---
//

// GetWishlist is the handler for GET /v1/wishlist.
func (h *Handlers) GetWishlist(c *gin.Context) {
	userID := callerID(c)

	rows, err := h.DB.Query(`
		SELECT
			w.id, w.user_id, w.product_id, w.created_at,
			`+productCols+`
		FROM wishlist w
		JOIN products p ON w.product_id = p.id
		WHERE w.user_id = ?
		ORDER BY w.created_at DESC`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	items := []models.WishlistItem{}
	for rows.Next() {
		var item models.WishlistItem
		var product models.Product
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt,
			&product.ID, &product.Name, &product.Category, &product.ImageURL,
			&product.NewPrice, &product.OldPrice, &product.Description, &product.Stock,
			&product.Rating, &product.ReviewCount, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan wishlist item"})
			return
		}
		item.Product = &product
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddToWishlistInput defines the JSON for adding a product to the wishlist.
type AddToWishlistInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// AddToWishlist is the handler for POST /v1/wishlist.
// Add is idempotent: a duplicate insert is absorbed and reported as
// success, so two clicks on the heart never error.
func (h *Handlers) AddToWishlist(c *gin.Context) {
	userID := callerID(c)

	var input AddToWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	result, err := h.DB.Exec(
		"INSERT INTO wishlist (user_id, product_id, created_at) VALUES (?, ?, ?)",
		userID, input.ProductID, now,
	)
	if err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusOK, gin.H{"message": "Already in wishlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	itemID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, models.WishlistItem{
		ID:        itemID,
		UserID:    userID,
		ProductID: input.ProductID,
		CreatedAt: now,
	})
}

// RemoveFromWishlist is the handler for DELETE /v1/wishlist?product_id=N.
func (h *Handlers) RemoveFromWishlist(c *gin.Context) {
	userID := callerID(c)

	productID := c.Query("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id required"})
		return
	}

	_, err := h.DB.Exec(
		"DELETE FROM wishlist WHERE product_id = ? AND user_id = ?",
		productID, userID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}
