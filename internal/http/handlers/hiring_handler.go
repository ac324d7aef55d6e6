package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buscart/buscart-backend/internal/dto"
	"github.com/buscart/buscart-backend/internal/http/handlers/common"
	"github.com/buscart/buscart-backend/internal/service"
)

type HiringHandler struct {
	hiring *service.HiringService
}

func NewHiringHandler(hiring *service.HiringService) *HiringHandler {
	return &HiringHandler{hiring: hiring}
}

// ListActiveRequests GET /hiring/requests
func (h *HiringHandler) ListActiveRequests(c *gin.Context) {
	requests, err := h.hiring.ListActiveRequests(c.Request.Context())
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetRequest GET /hiring/requests/:id
func (h *HiringHandler) GetRequest(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	request, err := h.hiring.GetRequest(c.Request.Context(), id)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListMyRequests GET /hiring/requests/mine
func (h *HiringHandler) ListMyRequests(c *gin.Context) {
	clientID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	requests, err := h.hiring.ListClientRequests(c.Request.Context(), clientID)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// CreateRequest POST /hiring/requests
func (h *HiringHandler) CreateRequest(c *gin.Context) {
	clientID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateHiringRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "дата события и описание обязательны")
		return
	}

	eventDate, err := dto.ParseEventDate(req.EventDate)
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	request, err := h.hiring.CreateRequest(c.Request.Context(), service.CreateRequestInput{
		ClientID:  clientID,
		ArtistID:  req.ArtistID,
		VenueID:   req.VenueID,
		EventDate: eventDate,
		Details:   req.Details,
	})
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// CreateResponse POST /hiring/requests/:id/responses
func (h *HiringHandler) CreateResponse(c *gin.Context) {
	if _, err := common.CurrentUserID(c); err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	requestID, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.CreateHiringResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "предложение, артист и флаг принятия обязательны")
		return
	}

	response, err := h.hiring.Respond(c.Request.Context(), service.RespondInput{
		RequestID: requestID,
		ArtistID:  req.ArtistID,
		Proposal:  req.Proposal,
		Accepted:  *req.Accepted,
		Message:   req.Message,
	})
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
