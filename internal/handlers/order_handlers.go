package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nileshsn/shopeasy-api/internal/events"
	"github.com/nileshsn/shopeasy-api/internal/middleware"
	"github.com/nileshsn/shopeasy-api/internal/models"
)

//
// --- Order Handlers (Authenticated) ---
//

// Orders of 50 and above ship free; everything else pays a flat fee.
const (
	freeShippingThreshold = 50.0
	standardShippingFee   = 5.0
)

func shippingFee(subtotal float64) float64 {
	if subtotal >= freeShippingThreshold {
		return 0
	}
	return standardShippingFee
}

// PlaceOrderInput defines the JSON for checkout.
type PlaceOrderInput struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

// checkoutLine is a helper struct for fetching cart items during checkout.
type checkoutLine struct {
	ProductID int64
	Quantity  int
	Price     float64 // current product price, snapshotted into order_items
}

// PlaceOrder is the handler for POST /v1/orders.
// The whole pipeline (read cart, insert order, insert items, clear cart)
// runs in a single serializable transaction: either the order exists with
// all its items and an empty cart, or nothing happened.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middleware.RecordStoreOperation("order_create", ok)
	}()

	userID := callerID(c)

	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping address is required"})
		return
	}

	tx, err := h.DB.BeginTx(c, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback() // Safety net

	// Read the cart with current prices, locking the rows for the
	// duration of the transaction.
	rows, err := tx.Query(`
		SELECT ci.product_id, ci.quantity, p.new_price
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = ?
		FOR UPDATE`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}

	var lines []checkoutLine
	var subtotal float64
	for rows.Next() {
		var line checkoutLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.Price); err != nil {
			rows.Close()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan cart item"})
			return
		}
		subtotal += line.Price * float64(line.Quantity)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rows.Close()

	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	shipping := shippingFee(subtotal)
	totalAmount := subtotal + shipping
	now := time.Now()

	result, err := tx.Exec(`
		INSERT INTO orders (user_id, total_amount, status, shipping_address, created_at)
		VALUES (?, ?, 'pending', ?, ?)`,
		userID, totalAmount, input.ShippingAddress, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new order ID"})
		return
	}

	order := models.Order{
		ID:              orderID,
		UserID:          userID,
		TotalAmount:     totalAmount,
		Status:          "pending",
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       now,
		Items:           make([]models.OrderItem, 0, len(lines)),
	}

	for _, line := range lines {
		itemResult, err := tx.Exec(`
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES (?, ?, ?, ?)`,
			orderID, line.ProductID, line.Quantity, line.Price)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order item"})
			return
		}
		itemID, _ := itemResult.LastInsertId()
		order.Items = append(order.Items, models.OrderItem{
			ID:        itemID,
			OrderID:   orderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	if _, err := tx.Exec("DELETE FROM cart_items WHERE user_id = ?", userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	// Best-effort event after commit; the order stands even if the broker
	// is unreachable.
	if err := h.Events.PublishOrderCreated(events.OrderCreated{
		OrderID:     orderID,
		UserID:      userID,
		TotalAmount: totalAmount,
		ItemCount:   len(order.Items),
		CreatedAt:   now,
	}); err != nil {
		log.Printf("order %d created but event publish failed: %v", orderID, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"order":   order,
	})
}

// GetMyOrders is the handler for GET /v1/orders.
// Orders come back newest first, each with its items and their product
// snapshots.
func (h *Handlers) GetMyOrders(c *gin.Context) {
	orders, err := h.loadUserOrders(callerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// loadUserOrders fetches a user's orders with items. Shared between the
// orders listing and the profile page.
func (h *Handlers) loadUserOrders(userID int64) ([]models.Order, error) {
	rows, err := h.DB.Query(`
		SELECT id, user_id, total_amount, status, shipping_address, created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	index := map[int64]int{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.ShippingAddress, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Items = []models.OrderItem{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := h.DB.Query(`
		SELECT
			oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
			`+productCols+`
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		JOIN products p ON oi.product_id = p.id
		WHERE o.user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.OrderItem
		var product models.Product
		if err := itemRows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&product.ID, &product.Name, &product.Category, &product.ImageURL,
			&product.NewPrice, &product.OldPrice, &product.Description, &product.Stock,
			&product.Rating, &product.ReviewCount, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.Product = &product
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
