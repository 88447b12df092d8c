package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tabletaste/tabletaste-app/reviews"
	"github.com/tabletaste/tabletaste-app/utils"
	"github.com/tabletaste/tabletaste-app/validation"
)

type ReviewController struct {
	Manager *reviews.Manager
}

func NewReviewController(mgr *reviews.Manager) *ReviewController {
	return &ReviewController{Manager: mgr}
}

func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of reviews", rc.Manager.List())
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req reviews.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	review, err := rc.Manager.Submit(req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			utils.RespondJSON(c, http.StatusBadRequest, verr.Error(), gin.H{"fields": verr.Fields})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Review submitted", review)
}
