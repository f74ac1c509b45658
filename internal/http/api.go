package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"game-catalog/internal/domain"
	"game-catalog/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	games service.GameService
	users service.UserService
}

func NewHandler(games service.GameService, users service.UserService) *Handler {
	return &Handler{
		games: games,
		users: users,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api/v1")
	{
		api.POST("/register", h.register)
		api.POST("/token", h.login)
		api.GET("/users/me", h.requireActiveUser(), h.currentUser)

		api.GET("/games", h.listGames)
		api.POST("/games", h.createGame)
		api.GET("/games/:id", h.getGame)
		api.PUT("/games/:id", h.updateGame)
		api.DELETE("/games/:id", h.deleteGame)

		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type gameRequest struct {
	Title         string `json:"title" binding:"required"`
	Genre         string `json:"genre" binding:"required"`
	Platform      string `json:"platform" binding:"required"`
	ReleaseDate   string `json:"release_date" binding:"required"`
	Developer     string `json:"developer" binding:"required"`
	Publisher     string `json:"publisher" binding:"required"`
	Rating        string `json:"rating" binding:"required"`
	Description   string `json:"description" binding:"required"`
	CoverImageURL string `json:"cover_image_url" binding:"required"`
}

type GameResponse struct {
	ID            int64  `json:"games_id"`
	Title         string `json:"title"`
	Genre         string `json:"genre"`
	Platform      string `json:"platform"`
	ReleaseDate   string `json:"release_date"`
	Developer     string `json:"developer"`
	Publisher     string `json:"publisher"`
	Rating        string `json:"rating"`
	Description   string `json:"description"`
	CoverImageURL string `json:"cover_image_url"`
}

type paginatedGamesResponse struct {
	Data     []GameResponse `json:"data"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
}

func (h *Handler) listGames(c *gin.Context) {
	page, err := positiveQueryInt(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid page"})
		return
	}
	pageSize, err := positiveQueryInt(c, "page_size", 20)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid page_size"})
		return
	}

	games, err := h.games.ListGames(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list games"})
		return
	}

	resp := paginatedGamesResponse{
		Data: make([]GameResponse, len(games)),
		Next: pageLink(c, page+1, pageSize),
	}
	for i := range games {
		resp.Data[i] = gameToResponse(games[i])
	}
	if page > 1 {
		resp.Previous = pageLink(c, page-1, pageSize)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getGame(c *gin.Context) {
	id, ok := gameID(c)
	if !ok {
		return
	}

	game, err := h.games.GetGame(c.Request.Context(), id)
	if err != nil {
		h.gameError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gameToResponse(*game)})
}

func (h *Handler) createGame(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	game, err := h.games.CreateGame(c.Request.Context(), req.toDomain(0))
	if err != nil {
		h.gameError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gameToResponse(*game)})
}

func (h *Handler) updateGame(c *gin.Context) {
	id, ok := gameID(c)
	if !ok {
		return
	}

	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	game, err := h.games.UpdateGame(c.Request.Context(), req.toDomain(id))
	if err != nil {
		h.gameError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gameToResponse(*game)})
}

func (h *Handler) deleteGame(c *gin.Context) {
	id, ok := gameID(c)
	if !ok {
		return
	}

	if err := h.games.DeleteGame(c.Request.Context(), id); err != nil {
		h.gameError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) gameError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Game not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
}

func gameID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid game id"})
		return 0, false
	}
	return id, true
}

func positiveQueryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.DefaultQuery(key, strconv.Itoa(fallback))
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return value, nil
}

// pageLink rebuilds the request URL with new paging parameters, mirroring
// how the list endpoint advertises its neighbours.
func pageLink(c *gin.Context, page, pageSize int) *string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	link := fmt.Sprintf("%s://%s%s?page=%d&page_size=%d", scheme, c.Request.Host, c.Request.URL.Path, page, pageSize)
	return &link
}

func (r gameRequest) toDomain(id int64) *domain.Game {
	return &domain.Game{
		ID:            id,
		Title:         r.Title,
		Genre:         r.Genre,
		Platform:      r.Platform,
		ReleaseDate:   r.ReleaseDate,
		Developer:     r.Developer,
		Publisher:     r.Publisher,
		Rating:        r.Rating,
		Description:   r.Description,
		CoverImageURL: r.CoverImageURL,
	}
}

func gameToResponse(game domain.Game) GameResponse {
	return GameResponse{
		ID:            game.ID,
		Title:         game.Title,
		Genre:         game.Genre,
		Platform:      game.Platform,
		ReleaseDate:   game.ReleaseDate,
		Developer:     game.Developer,
		Publisher:     game.Publisher,
		Rating:        game.Rating,
		Description:   game.Description,
		CoverImageURL: game.CoverImageURL,
	}
}
