package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buscart/buscart-backend/internal/dto"
	"github.com/buscart/buscart-backend/internal/http/handlers/common"
	"github.com/buscart/buscart-backend/internal/models"
	"github.com/buscart/buscart-backend/internal/service"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// targetFromPath собирает цель отзыва из параметров пути :type/:id.
func targetFromPath(c *gin.Context) (models.ReviewTarget, bool) {
	targetType := models.TargetType(c.Param("type"))
	if !targetType.IsValid() {
		common.RespondBadRequest(c, "тип цели должен быть artist, event или venue")
		return models.ReviewTarget{}, false
	}

	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return models.ReviewTarget{}, false
	}

	return models.ReviewTarget{Type: targetType, ID: id}, true
}

// GetReviews GET /reviews/:type/:id
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	target, ok := targetFromPath(c)
	if !ok {
		return
	}

	reviews, err := h.reviews.GetReviews(c.Request.Context(), target)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	avg, count, err := h.reviews.GetTargetRating(c.Request.Context(), target)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"rating":  dto.TargetRatingResponse{AverageScore: avg, TotalReviews: count},
	})
}

// CanReview GET /reviews/:type/:id/can-review
func (h *ReviewHandler) CanReview(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	target, ok := targetFromPath(c)
	if !ok {
		return
	}

	canReview, err := h.reviews.CanUserReview(c.Request.Context(), userID, target)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CanReviewResponse{CanReview: canReview})
}

// CreateReview POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "тип цели, её идентификатор и оценка обязательны")
		return
	}

	review, err := h.reviews.CreateReview(c.Request.Context(), service.CreateReviewInput{
		UserID: userID,
		Target: models.ReviewTarget{Type: models.TargetType(req.Type), ID: req.TargetID},
		Score:  req.Score,
		Reason: req.Reason,
	})
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
