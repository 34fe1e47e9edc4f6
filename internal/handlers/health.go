package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const healthMessage = "✅ Backend is running fine!"

// Health godoc
// @Summary      Health check
// @Description  Confirms the server is running
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "✅ Backend is running fine!"
// @Router       / [get]
func Health(c *gin.Context) {
	c.String(http.StatusOK, healthMessage)
}
