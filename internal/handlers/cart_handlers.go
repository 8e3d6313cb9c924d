package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nileshsn/shopeasy-api/internal/models"
)

//
// --- Cart Handlers (Authenticated) ---
//

// GetCart is the handler for GET /v1/cart.
// It returns the caller's cart rows, each joined with its product.
func (h *Handlers) GetCart(c *gin.Context) {
	userID := callerID(c)

	query := `
		SELECT
			ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
			` + productCols + `
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = ?`

	rows, err := h.DB.Query(query, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var product models.Product
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&product.ID, &product.Name, &product.Category, &product.ImageURL,
			&product.NewPrice, &product.OldPrice, &product.Description, &product.Stock,
			&product.Rating, &product.ReviewCount, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan cart item"})
			return
		}
		item.Product = &product
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cartItems": items})
}

// AddToCartInput defines the JSON for adding an item to the cart.
// Quantity is optional and defaults to 1.
type AddToCartInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// AddToCart is the handler for POST /v1/cart.
// If a row for (user, product) already exists, its quantity is incremented
// by the requested amount. The unique key on (user_id, product_id) makes
// the merge a single atomic statement, so two concurrent adds can never
// produce duplicate rows.
func (h *Handlers) AddToCart(c *gin.Context) {
	userID := callerID(c)

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Quantity < 1 {
		input.Quantity = 1
	}

	now := time.Now()
	_, err := h.DB.Exec(`
		INSERT INTO cart_items (user_id, product_id, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			quantity = quantity + VALUES(quantity),
			updated_at = VALUES(updated_at)`,
		userID, input.ProductID, input.Quantity, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateCartItemInput defines the JSON for updating an item's quantity.
// A quantity of zero or less deletes the row.
type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem is the handler for PATCH /v1/cart/:id.
// The mutation is scoped to the caller by filtering on user_id: an id
// owned by someone else affects zero rows and still reports success.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	userID := callerID(c)
	itemID := c.Param("id")

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *input.Quantity <= 0 {
		h.deleteOwnedCartItem(c, userID, itemID)
		return
	}

	_, err := h.DB.Exec(
		"UPDATE cart_items SET quantity = ?, updated_at = ? WHERE id = ? AND user_id = ?",
		*input.Quantity, time.Now(), itemID, userID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteCartItem is the handler for DELETE /v1/cart/:id.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	h.deleteOwnedCartItem(c, callerID(c), c.Param("id"))
}

// deleteOwnedCartItem removes a cart row, but only if the caller owns it.
// The ownership predicate is the WHERE clause itself.
func (h *Handlers) deleteOwnedCartItem(c *gin.Context, userID int64, itemID string) {
	_, err := h.DB.Exec("DELETE FROM cart_items WHERE id = ? AND user_id = ?", itemID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
