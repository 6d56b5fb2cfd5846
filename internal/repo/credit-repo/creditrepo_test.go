package creditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/dkovalev/creditplan/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

const findQuery = `
        SELECT id, user_id, issuance_date, return_date, actual_return_date, body, percent
        FROM credits
        WHERE user_id = $1
        ORDER BY id ASC
    `

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	closedAt := date(2023, time.March, 1)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    []domain.Credit
	}{
		{
			name:   "Returns open and closed credits",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "issuance_date", "return_date", "actual_return_date", "body", "percent"}).
					AddRow(1, 1, date(2023, time.January, 10), date(2023, time.July, 10), nil, 50000.0, 1500.0).
					AddRow(2, 1, date(2022, time.May, 1), date(2023, time.February, 1), &closedAt, 30000.0, 900.0)
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: []domain.Credit{
				{ID: 1, UserID: 1, IssuanceDate: date(2023, time.January, 10), ReturnDate: date(2023, time.July, 10), Body: 50000, Percent: 1500},
				{ID: 2, UserID: 1, IssuanceDate: date(2022, time.May, 1), ReturnDate: date(2023, time.February, 1), ActualReturnDate: &closedAt, Body: 30000, Percent: 900},
			},
		},
		{
			name:   "No credits",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "issuance_date", "return_date", "actual_return_date", "body", "percent"})
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.FindByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_SumBodyByIssuancePeriod(t *testing.T) {
	repo, mock := NewMock(t)

	from := date(2023, time.July, 1)
	to := date(2023, time.August, 1)
	sumQuery := `
        SELECT COALESCE(SUM(body), 0)
        FROM credits
        WHERE issuance_date >= $1 AND issuance_date < $2
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    float64
	}{
		{
			name: "Sums issued bodies",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(80000.0)
				mock.ExpectQuery(regexp.QuoteMeta(sumQuery)).
					WithArgs(from, to).
					WillReturnRows(rows)
			},
			result: 80000,
		},
		{
			name: "Empty month sums to zero",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(0.0)
				mock.ExpectQuery(regexp.QuoteMeta(sumQuery)).
					WithArgs(from, to).
					WillReturnRows(rows)
			},
			result: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(sumQuery)).
					WithArgs(from, to).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.SumBodyByIssuancePeriod(context.Background(), from, to)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
