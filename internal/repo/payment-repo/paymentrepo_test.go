package paymentrepo

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

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	findQuery := `
        SELECT p.id, p.credit_id, p.payment_date, p.sum, p.type_id, d.name
        FROM payments p
        JOIN credits c ON c.id = p.credit_id
        JOIN dictionary d ON d.id = p.type_id
        WHERE c.user_id = $1
        ORDER BY p.id ASC
    `

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    []domain.Payment
	}{
		{
			name:   "Returns payments with category names",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "credit_id", "payment_date", "sum", "type_id", "name"}).
					AddRow(1, 10, date(2023, time.June, 5), 20000.0, 1, "principal").
					AddRow(2, 10, date(2023, time.June, 5), 600.0, 2, "interest")
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: []domain.Payment{
				{ID: 1, CreditID: 10, PaymentDate: date(2023, time.June, 5), Sum: 20000, TypeID: 1, CategoryName: "principal"},
				{ID: 2, CreditID: 10, PaymentDate: date(2023, time.June, 5), Sum: 600, TypeID: 2, CategoryName: "interest"},
			},
		},
		{
			name:   "No payments",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "credit_id", "payment_date", "sum", "type_id", "name"})
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

func TestRepository_SumByPaymentPeriod(t *testing.T) {
	repo, mock := NewMock(t)

	from := date(2023, time.July, 1)
	to := date(2023, time.August, 1)
	sumQuery := `
        SELECT COALESCE(SUM(sum), 0)
        FROM payments
        WHERE payment_date >= $1 AND payment_date < $2
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    float64
	}{
		{
			name: "Sums payments in the window",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(50000.0)
				mock.ExpectQuery(regexp.QuoteMeta(sumQuery)).
					WithArgs(from, to).
					WillReturnRows(rows)
			},
			result: 50000,
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

			result, err := repo.SumByPaymentPeriod(context.Background(), from, to)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
