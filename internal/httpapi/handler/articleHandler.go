package handler

import (
	"net/http"
	"strconv"

	"newshub/internal/httpapi/dto"
	"newshub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService service.ArticleService
}

func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// RegisterRoutes registers article-related routes
func (h *ArticleHandler) RegisterRoutes(router *gin.RouterGroup) {
	articles := router.Group("/articles")
	{
		articles.GET("", h.List)               // List articles with sort/order/topic queries
		articles.GET("/:article_id", h.GetByID)
		articles.PATCH("/:article_id", h.PatchVotes)
	}
}

// List lists articles without bodies, newest first by default
// GET /api/articles?sort_by=&order=&topic=
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleService.ListArticles(
		c.Request.Context(),
		c.Query("sort_by"),
		c.Query("order"),
		c.Query("topic"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetByID returns a single article including its body and comment count
// GET /api/articles/:article_id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		// format errors gate before the lookup; out-of-range ints fall
		// through and 404 instead
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid article ID"})
		return
	}

	article, err := h.articleService.GetArticleByID(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// PatchVotes adjusts an article's vote count by inc_votes
// PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchVotes(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid article ID"})
		return
	}

	var req dto.PatchVotesDTO
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Votes entry is invalid"})
		return
	}

	article, err := h.articleService.IncrementVotes(c.Request.Context(), articleID, *req.IncVotes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}
