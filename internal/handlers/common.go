package handlers

import "quiz-ingest-backend/internal/models"

type MessageResponse struct {
	Message string `json:"message" example:"✅ Data saved successfully to quiz_data.csv"`
}

// Type alias so swag can resolve the request model in annotations.
type QuizItem = models.QuizItem

const (
	invalidFormatMessage = "Invalid data format. Expected an array."
	bodyTooLargeMessage  = "Request body too large."
)
