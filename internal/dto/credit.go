package dto

type ActiveCreditDTO struct {
	IssuanceDate    string  `json:"issuance_date" example:"2023-05-10"`
	ReturnDate      string  `json:"return_date" example:"2023-11-10"`
	OverdueDays     int     `json:"overdue_days" example:"12"`
	Body            float64 `json:"body" example:"50000"`
	Percent         float64 `json:"percent" example:"1500"`
	BodyPayments    float64 `json:"body_payments" example:"20000"`
	PercentPayments float64 `json:"percent_payments" example:"600"`
}

type ClosedCreditDTO struct {
	IssuanceDate     string  `json:"issuance_date" example:"2022-01-15"`
	ActualReturnDate string  `json:"actual_return_date" example:"2022-09-03"`
	Body             float64 `json:"body" example:"5000"`
	Percent          float64 `json:"percent" example:"150"`
	TotalPayment     float64 `json:"total_payment" example:"5150"`
}
