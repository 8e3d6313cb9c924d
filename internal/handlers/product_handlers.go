package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nileshsn/shopeasy-api/internal/models"
)

//
// --- Product Handlers (Public) ---
//

// productCols is the canonical column list for scanning a product row.
// Joined queries (cart, wishlist, orders) reuse it so every product
// snapshot in a response has the same shape.
const productCols = "p.id, p.name, p.category, p.image_url, p.new_price, p.old_price, p.description, p.stock, p.rating, p.review_count, p.created_at, p.updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner, p *models.Product) error {
	return s.Scan(
		&p.ID, &p.Name, &p.Category, &p.ImageURL,
		&p.NewPrice, &p.OldPrice, &p.Description, &p.Stock,
		&p.Rating, &p.ReviewCount, &p.CreatedAt, &p.UpdatedAt,
	)
}

// GetProducts is the handler for GET /v1/products.
// An optional ?category= filter narrows the list; an unknown category
// simply matches nothing.
func (h *Handlers) GetProducts(c *gin.Context) {
	query := "SELECT " + productCols + " FROM products p"
	args := []any{}

	if category := c.Query("category"); category != "" {
		query += " WHERE p.category = ?"
		args = append(args, category)
	}
	query += " ORDER BY p.id ASC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product"})
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /v1/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	var p models.Product
	err := scanProduct(h.DB.QueryRow(
		"SELECT "+productCols+" FROM products p WHERE p.id = ?",
		c.Param("id"),
	), &p)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": p})
}
