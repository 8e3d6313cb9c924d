package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testUserID int64 = 7

var sampleTime = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

// newTestHandlers returns a Handlers backed by a sqlmock database.
func newTestHandlers(t *testing.T) (*Handlers, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Handlers{DB: db}, mock
}

// newTestRouter builds a Gin engine with the full route surface, replacing
// the JWT middleware with a stub that authenticates everyone as testUserID.
func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/v1/products", h.GetProducts)
	r.GET("/v1/products/:id", h.GetProduct)
	r.GET("/v1/reviews/:productId", h.GetReviews)
	r.POST("/v1/newsletter", h.Subscribe)
	r.POST("/v1/login", h.Login)

	auth := r.Group("/v1")
	auth.Use(func(c *gin.Context) {
		c.Set("userID", testUserID)
		c.Set("userEmail", "shopper@example.com")
	})
	{
		auth.GET("/cart", h.GetCart)
		auth.POST("/cart", h.AddToCart)
		auth.PATCH("/cart/:id", h.UpdateCartItem)
		auth.DELETE("/cart/:id", h.DeleteCartItem)
		auth.POST("/orders", h.PlaceOrder)
		auth.GET("/orders", h.GetMyOrders)
		auth.POST("/reviews/:productId", h.SubmitReview)
		auth.GET("/wishlist", h.GetWishlist)
		auth.POST("/wishlist", h.AddToWishlist)
		auth.DELETE("/wishlist", h.RemoveFromWishlist)
		auth.GET("/profile", h.GetProfile)
		auth.PUT("/profile", h.UpdateProfile)
		auth.GET("/profile/stats", h.GetProfileStats)
	}

	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
