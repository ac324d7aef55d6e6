package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/buscart/buscart-backend/internal/dto"
	"github.com/buscart/buscart-backend/internal/http/handlers/common"
	"github.com/buscart/buscart-backend/internal/models"
	"github.com/buscart/buscart-backend/internal/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListArtists GET /artists
func (h *CatalogHandler) ListArtists(c *gin.Context) {
	limit, offset := common.GetPagination(c)

	var city *string
	if v := c.Query("city"); v != "" {
		city = &v
	}
	var categoryID *int64
	if v := c.Query("category_id"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			common.RespondBadRequest(c, "category_id должен быть числом")
			return
		}
		categoryID = &parsed
	}

	artists, err := h.catalog.ListArtists(c.Request.Context(), city, categoryID, limit, offset)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

// GetArtist GET /artists/:id
func (h *CatalogHandler) GetArtist(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	artist, err := h.catalog.GetArtist(c.Request.Context(), id)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, artist)
}

// CreateArtist POST /artists
func (h *CatalogHandler) CreateArtist(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "сценическое имя обязательно")
		return
	}

	artist := &models.Artist{
		UserID:      userID,
		StageName:   req.StageName,
		CategoryID:  req.CategoryID,
		City:        req.City,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Description: req.Description,
	}
	if err := h.catalog.CreateArtist(c.Request.Context(), artist); err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, artist)
}

// ListVenues GET /venues
func (h *CatalogHandler) ListVenues(c *gin.Context) {
	limit, offset := common.GetPagination(c)

	var city *string
	if v := c.Query("city"); v != "" {
		city = &v
	}

	venues, err := h.catalog.ListVenues(c.Request.Context(), city, limit, offset)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// GetVenue GET /venues/:id
func (h *CatalogHandler) GetVenue(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	venue, err := h.catalog.GetVenue(c.Request.Context(), id)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, venue)
}

// CreateVenue POST /venues
func (h *CatalogHandler) CreateVenue(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "название площадки обязательно")
		return
	}

	venue := &models.Venue{
		OwnerID:     userID,
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if err := h.catalog.CreateVenue(c.Request.Context(), venue); err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, venue)
}

// ListCategories GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
