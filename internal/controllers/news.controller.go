package controllers

import (
	"net/http"
	"strconv"

	"localnews/internal/middleware"
	"localnews/internal/models"
	"localnews/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NewsController struct {
	service *services.NewsService
	log     *zap.Logger
}

func NewNewsController(service *services.NewsService, log *zap.Logger) *NewsController {
	return &NewsController{service: service, log: log}
}

// NewsRequest is the body of create and update requests. On update, Slug is
// the new slug; leaving it blank keeps the current one.
type NewsRequest struct {
	Title          string `json:"title" binding:"required" example:"Flood warning issued"`
	Slug           string `json:"slug" binding:"omitempty,max=255" example:"flood-warning-issued"`
	Content        string `json:"content" binding:"required" example:"Para1\nPara2"`
	Image          string `json:"image" example:"data:image/png;base64,iVBORw0KGgo="`
	YoutubeVideoID string `json:"youtubeVideoId" example:"https://youtu.be/abcdefghijk"`
}

func (r NewsRequest) input() services.ArticleInput {
	return services.ArticleInput{
		Title:          r.Title,
		Slug:           r.Slug,
		Content:        r.Content,
		Image:          r.Image,
		YoutubeVideoID: r.YoutubeVideoID,
	}
}

type ListResponse struct {
	Success    bool             `json:"success"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	TotalItems int64            `json:"totalItems"`
	Data       []models.Article `json:"data"`
}

type SearchResponse struct {
	Success bool             `json:"success"`
	Data    []models.Article `json:"data"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

type CountResponse struct {
	Success bool  `json:"success"`
	Total   int64 `json:"total"`
}

type NewsResponse struct {
	Success bool            `json:"success"`
	News    *models.Article `json:"news"`
}

type CreatedResponse struct {
	Success bool            `json:"success"`
	Data    *models.Article `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// pagination reads page and limit from the query string. Missing or
// malformed values fall back to the defaults.
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return services.NormalizePage(page, limit)
}

// ListNews godoc
// @Summary List news
// @Description Newest first, paginated
// @Tags news
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(6)
// @Success 200 {object} ListResponse
// @Failure 500 {object} ErrorResponse
// @Router /news [get]
func (nc *NewsController) ListNews(c *gin.Context) {
	page, limit := pagination(c)

	result, err := nc.service.List(c.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(c, nc.log, err, "Failed to fetch news")
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Success:    true,
		Page:       result.Page,
		TotalPages: result.TotalPages(),
		TotalItems: result.Total,
		Data:       result.Items,
	})
}

// SearchNews godoc
// @Summary Search news by title
// @Description Case-insensitive substring match on the title
// @Tags news
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(6)
// @Success 200 {object} SearchResponse
// @Failure 500 {object} ErrorResponse
// @Router /news/search [get]
func (nc *NewsController) SearchNews(c *gin.Context) {
	page, limit := pagination(c)

	result, err := nc.service.Search(c.Request.Context(), c.Query("q"), page, limit)
	if err != nil {
		handleServiceError(c, nc.log, err, "Search failed")
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Success: true,
		Data:    result.Items,
		Total:   result.Total,
		Page:    result.Page,
		Limit:   result.Limit,
	})
}

// CountNews godoc
// @Summary Count news
// @Tags news
// @Produce json
// @Success 200 {object} CountResponse
// @Failure 500 {object} ErrorResponse
// @Router /news/count [get]
func (nc *NewsController) CountNews(c *gin.Context) {
	total, err := nc.service.Count(c.Request.Context())
	if err != nil {
		handleServiceError(c, nc.log, err, "Failed to count news")
		return
	}
	c.JSON(http.StatusOK, CountResponse{Success: true, Total: total})
}

// GetNewsBySlug godoc
// @Summary Get news by slug
// @Tags news
// @Produce json
// @Param slug path string true "News slug"
// @Success 200 {object} NewsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /news/slug/{slug} [get]
func (nc *NewsController) GetNewsBySlug(c *gin.Context) {
	article, err := nc.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, nc.log, err, "Failed to fetch news")
		return
	}
	c.JSON(http.StatusOK, NewsResponse{Success: true, News: article})
}

// GetNewsByID godoc
// @Summary Get news by id
// @Tags news
// @Produce json
// @Param key path string true "News id"
// @Success 200 {object} NewsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /news/{key} [get]
func (nc *NewsController) GetNewsByID(c *gin.Context) {
	article, err := nc.service.GetByID(c.Request.Context(), c.Param("key"))
	if err != nil {
		handleServiceError(c, nc.log, err, "Failed to fetch news")
		return
	}
	c.JSON(http.StatusOK, NewsResponse{Success: true, News: article})
}

// CreateNews godoc
// @Summary Create news
// @Description Requires either image or youtubeVideoId. The slug is derived from the title when omitted and suffixed when taken.
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param news body NewsRequest true "News data"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /news [post]
func (nc *NewsController) CreateNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields (title, content, and either image or YouTube URL)", KindValidation)
		return
	}

	article, err := nc.service.Create(c.Request.Context(), req.input())
	if err != nil {
		handleServiceError(c, nc.log, err, "Failed to create post")
		return
	}

	nc.log.Info("news created", zap.String("id", article.ID), zap.String("slug", article.Slug),
		zap.String("by", c.GetString(middleware.UsernameKey)))
	c.JSON(http.StatusCreated, CreatedResponse{Success: true, Data: article})
}

// UpdateNews godoc
// @Summary Update news
// @Description Replaces title, content, image and video. key is the news id or its slug.
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "News id or slug"
// @Param news body NewsRequest true "News data"
// @Success 200 {object} NewsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /news/{key} [put]
func (nc *NewsController) UpdateNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Title and content are required", KindValidation)
		return
	}

	article, err := nc.service.Update(c.Request.Context(), c.Param("key"), req.input())
	if err != nil {
		handleServiceError(c, nc.log, err, "Failed to update news")
		return
	}

	nc.log.Info("news updated", zap.String("id", article.ID), zap.String("slug", article.Slug),
		zap.String("by", c.GetString(middleware.UsernameKey)))
	c.JSON(http.StatusOK, NewsResponse{Success: true, News: article})
}

// DeleteNews godoc
// @Summary Delete news
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param key path string true "News id or slug"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /news/{key} [delete]
func (nc *NewsController) DeleteNews(c *gin.Context) {
	key := c.Param("key")
	if err := nc.service.Delete(c.Request.Context(), key); err != nil {
		handleServiceError(c, nc.log, err, "Failed to delete news")
		return
	}

	nc.log.Info("news deleted", zap.String("key", key), zap.String("by", c.GetString(middleware.UsernameKey)))
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Deleted successfully"})
}
