package handler

import (
	"net/http"

	"newshub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topicService service.TopicService
}

func NewTopicHandler(topicService service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

func (h *TopicHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/topics", h.List)
}

// List returns every topic
// GET /api/topics
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topicService.ListTopics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
