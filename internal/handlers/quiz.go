package handlers

import (
	"errors"
	"log"
	"net/http"

	"quiz-ingest-backend/internal/services"
	"quiz-ingest-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService  *services.QuizService
	hub          *ws.Hub
	maxBodyBytes int64
}

// NewQuizHandler wires the save endpoint. hub may be nil when the event
// feed is disabled; maxBodyBytes <= 0 leaves the body unbounded.
func NewQuizHandler(quizService *services.QuizService, hub *ws.Hub, maxBodyBytes int64) *QuizHandler {
	return &QuizHandler{quizService: quizService, hub: hub, maxBodyBytes: maxBodyBytes}
}

type QuizSavedEvent struct {
	BatchID string `json:"batch_id"`
	Rows    int    `json:"rows"`
	File    string `json:"file"`
}

// SaveQuiz godoc
// @Summary      Save quiz items
// @Description  Append quiz items to the CSV file, creating it with a header if absent
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body []QuizItem true "Quiz items"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} MessageResponse
// @Failure      413 {object} MessageResponse
// @Failure      500 {object} MessageResponse
// @Router       /save-quiz [post]
func (h *QuizHandler) SaveQuiz(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, MessageResponse{Message: bodyTooLargeMessage})
			return
		}
		c.JSON(http.StatusBadRequest, MessageResponse{Message: invalidFormatMessage})
		return
	}

	raw, err := services.DecodeBatch(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: invalidFormatMessage})
		return
	}

	result, err := h.quizService.Save(c.Request.Context(), raw)
	if err != nil {
		log.Printf("save-quiz [%s]: %v", c.GetString("request_id"), err)
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "❌ Failed to save data to " + h.quizService.FileName()})
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(ws.WSMessage{
			Type: "quiz_saved",
			Data: QuizSavedEvent{BatchID: result.BatchID, Rows: result.Rows, File: result.File},
		})
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "✅ Data saved successfully to " + result.File})
}
