package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nileshsn/shopeasy-api/internal/middleware"
	"github.com/nileshsn/shopeasy-api/internal/models"
)

//
// --- Review Handlers ---
//

// GetReviews is the handler for GET /v1/reviews/:productId (public).
// Reviewer emails come from the users join.
func (h *Handlers) GetReviews(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT r.id, r.product_id, r.user_id, r.rating, r.comment, r.created_at, u.email
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.product_id = ?
		ORDER BY r.created_at DESC`, c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.ProductID, &r.UserID, &r.Rating, &r.Comment, &r.CreatedAt, &r.UserEmail); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan review"})
			return
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// SubmitReviewInput defines the JSON for posting a review.
// A rating outside [1,5] (or a non-numeric one) fails binding with a 400
// before anything is written.
type SubmitReviewInput struct {
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment *string `json:"comment"`
}

// SubmitReview is the handler for POST /v1/reviews/:productId.
// The upsert on (product_id, user_id) is the sole write path: a second
// submission by the same user replaces their prior rating and comment.
// The product's aggregate rating is refreshed afterwards, best-effort.
func (h *Handlers) SubmitReview(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middleware.RecordStoreOperation("review_submit", ok)
	}()

	userID := callerID(c)
	productID := c.Param("productId")

	var input SubmitReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating (1-5)"})
		return
	}

	_, err := h.DB.Exec(`
		INSERT INTO reviews (product_id, user_id, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			rating = VALUES(rating),
			comment = VALUES(comment)`,
		productID, userID, input.Rating, input.Comment, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The review is committed from here on. A failed aggregate refresh
	// leaves the product rating stale, never the request failed.
	if err := h.refreshProductRating(productID); err != nil {
		log.Printf("review saved but rating refresh failed for product %s: %v", productID, err)
	}

	var review models.Review
	err = h.DB.QueryRow(`
		SELECT id, product_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE product_id = ? AND user_id = ?`,
		productID, userID,
	).Scan(&review.ID, &review.ProductID, &review.UserID, &review.Rating, &review.Comment, &review.CreatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// refreshProductRating re-reads all reviews for a product and overwrites
// the product's rating (mean, rounded to one decimal) and review count.
func (h *Handlers) refreshProductRating(productID string) error {
	var avg float64
	var count int
	err := h.DB.QueryRow(
		"SELECT COALESCE(ROUND(AVG(rating), 1), 0), COUNT(*) FROM reviews WHERE product_id = ?",
		productID,
	).Scan(&avg, &count)
	if err != nil {
		return err
	}

	_, err = h.DB.Exec(
		"UPDATE products SET rating = ?, review_count = ?, updated_at = ? WHERE id = ?",
		avg, count, time.Now(), productID,
	)
	return err
}
