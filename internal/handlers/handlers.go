package handlers

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/nileshsn/shopeasy-api/internal/events"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB     *sql.DB           // Primary connection pool
	Events *events.Publisher // Optional; nil when RabbitMQ is not configured
}

// callerID returns the authenticated user's ID, set by the auth middleware.
func callerID(c *gin.Context) int64 {
	userIDRaw, _ := c.Get("userID")
	return userIDRaw.(int64)
}

// callerEmail returns the authenticated user's email claim.
func callerEmail(c *gin.Context) string {
	emailRaw, _ := c.Get("userEmail")
	email, _ := emailRaw.(string)
	return email
}

// isDuplicateKey reports whether err is a MySQL unique-constraint violation
// (error 1062). Wishlist-add and newsletter signup both key off it: the
// first absorbs the conflict as success, the second surfaces it as a 400.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
