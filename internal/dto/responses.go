package dto

// ErrorResponse — стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse — стандартный формат успешного ответа с данными.
type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// CanReviewResponse — ответ проверки права на отзыв.
type CanReviewResponse struct {
	CanReview bool `json:"can_review"`
}

// TargetRatingResponse — сводка отзывов о цели.
type TargetRatingResponse struct {
	AverageScore float64 `json:"average_score"`
	TotalReviews int     `json:"total_reviews"`
}
