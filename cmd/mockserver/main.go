package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sleepstars/deepgate/internal/models"
)

// Stub DeepSeek upstream for exercising the gateway locally. Prompts
// containing "fail:<status>" trigger the corresponding error status so the
// failure paths can be tested end to end.
func main() {
	port := flag.String("port", "8001", "Port to run the server on")
	flag.Parse()

	r := gin.Default()

	r.POST("/chat/completions", func(c *gin.Context) {
		var req models.ChatCompletionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		prompt := ""
		if len(req.Messages) > 0 {
			prompt = req.Messages[len(req.Messages)-1].Content
		}

		switch {
		case strings.Contains(prompt, "fail:401"):
			c.String(http.StatusUnauthorized, "invalid api key")
			return
		case strings.Contains(prompt, "fail:429"):
			c.String(http.StatusTooManyRequests, "rate limit exceeded")
			return
		case strings.Contains(prompt, "fail:500"):
			c.String(http.StatusInternalServerError, "internal error")
			return
		}

		resp := &models.ChatCompletionResponse{
			ID:      fmt.Sprintf("chatcmpl-mock-%d", time.Now().UnixNano()),
			Object:  "chat.completion",
			Created: time.Now().Unix(),
			Model:   req.Model,
			Choices: []models.ChatCompletionChoice{
				{
					Message: &models.ChatMessage{
						Role:    models.RoleAssistant,
						Content: fmt.Sprintf("Mock reply to: %s", prompt),
					},
					FinishReason: "stop",
				},
			},
			Usage: &models.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		}

		c.JSON(http.StatusOK, resp)
	})

	r.GET("/models", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"object": "list",
			"data": []gin.H{
				{"id": "deepseek-chat", "object": "model", "owned_by": "deepseek"},
				{"id": "deepseek-reasoner", "object": "model", "owned_by": "deepseek"},
			},
		})
	})

	if err := r.Run(":" + *port); err != nil {
		log.Fatal(err)
	}
}
