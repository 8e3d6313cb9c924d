package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nileshsn/shopeasy-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewRejectsInvalidRating(t *testing.T) {
	cases := map[string]string{
		"zero":        `{"rating": 0}`,
		"six":         `{"rating": 6}`,
		"non-numeric": `{"rating": "five"}`,
		"missing":     `{"comment": "nice"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			h, mock := newTestHandlers(t)
			r := newTestRouter(h)

			w := doRequest(r, "POST", "/v1/reviews/42", body)

			requireStatus(t, w, 400)
			// Nothing was written.
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubmitReviewUpsertsAndRefreshesAggregate(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := newTestRouter(h)

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs("42", testUserID, 4.0, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("COUNT.* FROM reviews WHERE product_id").
		WithArgs("42").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))
	mock.ExpectExec("UPDATE products SET rating").
		WithArgs(4.5, 2, sqlmock.AnyArg(), "42").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, product_id, user_id, rating, comment, created_at").
		WithArgs("42", testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "user_id", "rating", "comment", "created_at"}).
			AddRow(int64(5), int64(42), testUserID, 4.0, nil, sampleTime))

	w := doRequest(r, "POST", "/v1/reviews/42", `{"rating": 4}`)

	requireStatus(t, w, 201)

	var review models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	require.Equal(t, 4.0, review.Rating)
	require.Equal(t, int64(42), review.ProductID)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A failed aggregate refresh leaves the rating stale but never fails the
// request: the review write already happened.
func TestSubmitReviewAggregateFailureStillSucceeds(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := newTestRouter(h)

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs("42", testUserID, 3.0, "meh", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(6, 1))
	mock.ExpectQuery("COUNT.* FROM reviews WHERE product_id").
		WithArgs("42").
		WillReturnError(errors.New("db gone"))
	mock.ExpectQuery("SELECT id, product_id, user_id, rating, comment, created_at").
		WithArgs("42", testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "user_id", "rating", "comment", "created_at"}).
			AddRow(int64(6), int64(42), testUserID, 3.0, "meh", sampleTime))

	w := doRequest(r, "POST", "/v1/reviews/42", `{"rating": 3, "comment": "meh"}`)

	requireStatus(t, w, 201)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReviewsIncludesReviewerEmail(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := newTestRouter(h)

	mock.ExpectQuery("FROM reviews r").
		WithArgs("42").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "user_id", "rating", "comment", "created_at", "email"}).
			AddRow(int64(5), int64(42), testUserID, 4.0, "solid", sampleTime, "shopper@example.com").
			AddRow(int64(4), int64(42), int64(8), 5.0, nil, sampleTime, "other@example.com"))

	w := doRequest(r, "GET", "/v1/reviews/42", "")

	requireStatus(t, w, 200)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 2)
	require.Equal(t, "shopper@example.com", reviews[0].UserEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}
