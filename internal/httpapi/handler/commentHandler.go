package handler

import (
	"net/http"
	"strconv"
	"strings"

	"newshub/internal/httpapi/dto"
	"newshub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment-related routes
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Article comments
	articleComments := router.Group("/articles/:article_id/comments")
	{
		articleComments.GET("", h.ListByArticle)
		articleComments.POST("", h.Create)
	}

	// Comment operations
	comments := router.Group("/comments")
	{
		comments.DELETE("/:comment_id", h.Delete)
	}
}

// ListByArticle returns all comments for an article, newest first
// GET /api/articles/:article_id/comments
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid article ID"})
		return
	}

	comments, err := h.commentService.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create posts a new comment on an article
// POST /api/articles/:article_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid article ID"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}
	// presence and shape checks run before any existence lookups
	if req.Body == nil || strings.TrimSpace(*req.Body) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Comment body is invalid"})
		return
	}
	if req.Username == nil || strings.TrimSpace(*req.Username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Comment author is invalid"})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), articleID, *req.Username, *req.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Delete removes a comment by id
// DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid comment ID"})
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), commentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
