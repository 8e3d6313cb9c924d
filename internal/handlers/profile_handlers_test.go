package handlers

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGetProfileStats(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := newTestRouter(h)

	mock.ExpectQuery("SELECT COUNT.+ FROM orders WHERE user_id").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT COUNT.+ FROM wishlist WHERE user_id").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	w := doRequest(r, "GET", "/v1/profile/stats", "")

	requireStatus(t, w, 200)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp["ordersCount"])
	require.Equal(t, 5, resp["wishlistCount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// A user who never saved a profile still gets a 200 with empty fields; the
// email always comes from the token, never from storage.
func TestGetProfileMissingRowIsEmptyProfile(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := newTestRouter(h)

	mock.ExpectQuery("FROM profiles").
		WithArgs(testUserID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT id, user_id, total_amount, status, shipping_address, created_at").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "status", "shipping_address", "created_at"}))

	w := doRequest(r, "GET", "/v1/profile", "")

	requireStatus(t, w, 200)

	var resp struct {
		User struct {
			ID       int64   `json:"id"`
			Email    string  `json:"email"`
			FullName *string `json:"full_name"`
		} `json:"user"`
		Orders []any `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, testUserID, resp.User.ID)
	require.Equal(t, "shopper@example.com", resp.User.Email)
	require.Nil(t, resp.User.FullName)
	require.Empty(t, resp.Orders)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Omitted fields are written as NULL, not left alone.
func TestUpdateProfileWritesNullsForOmittedFields(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := newTestRouter(h)

	mock.ExpectExec("UPDATE profiles").
		WithArgs("Nilesh", nil, nil, nil, nil, nil, nil, sqlmock.AnyArg(), testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM profiles").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "phone", "address", "city", "state", "country", "postal_code", "updated_at"}).
			AddRow(testUserID, "Nilesh", nil, nil, nil, nil, nil, nil, sampleTime))

	w := doRequest(r, "PUT", "/v1/profile", `{"full_name": "Nilesh"}`)

	requireStatus(t, w, 200)

	var resp struct {
		User struct {
			FullName *string `json:"full_name"`
			Phone    *string `json:"phone"`
			Email    string  `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User.FullName)
	require.Equal(t, "Nilesh", *resp.User.FullName)
	require.Nil(t, resp.User.Phone)
	require.Equal(t, "shopper@example.com", resp.User.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}
