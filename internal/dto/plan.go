package dto

type InsertPlansResponseDTO struct {
	Message  string `json:"message" example:"plans inserted"`
	Inserted int    `json:"inserted" example:"2"`
}

type PlanPerformanceDTO struct {
	Month                 string  `json:"month" example:"2023-07"`
	Category              string  `json:"category" example:"disbursement"`
	PlanAmount            int     `json:"plan_amount" example:"214000"`
	ActualAmount          float64 `json:"actual_amount" example:"80000"`
	PerformancePercentage float64 `json:"performance_percentage" example:"37.38"`
}
