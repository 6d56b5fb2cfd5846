package domain

import "time"

type User struct {
	ID               int       `db:"id"`
	Login            string    `db:"login"`
	RegistrationDate time.Time `db:"registration_date"`
}

type Credit struct {
	ID               int        `db:"id"`
	UserID           int        `db:"user_id"`
	IssuanceDate     time.Time  `db:"issuance_date"`
	ReturnDate       time.Time  `db:"return_date"`
	ActualReturnDate *time.Time `db:"actual_return_date"`
	Body             float64    `db:"body"`
	Percent          float64    `db:"percent"`
}

// Closed reports whether the credit has been repaid. A credit is open
// exactly while actual_return_date stays NULL.
func (c *Credit) Closed() bool {
	return c.ActualReturnDate != nil
}

type Payment struct {
	ID          int       `db:"id"`
	CreditID    int       `db:"credit_id"`
	PaymentDate time.Time `db:"payment_date"`
	Sum         float64   `db:"sum"`
	TypeID      int       `db:"type_id"`
	// CategoryName is filled by queries that join the dictionary table.
	CategoryName string `db:"-"`
}

type Category struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type Plan struct {
	ID         int       `db:"id"`
	Period     time.Time `db:"period"`
	Sum        int       `db:"sum"`
	CategoryID int       `db:"category_id"`
	// CategoryName is filled by queries that join the dictionary table.
	CategoryName string `db:"-"`
}
