package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tabletaste/tabletaste-app/livefeed"
	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/reservations"
	"github.com/tabletaste/tabletaste-app/utils"
	"github.com/tabletaste/tabletaste-app/validation"
)

type ReservationController struct {
	Manager *reservations.Manager
}

func NewReservationController(mgr *reservations.Manager) *ReservationController {
	return &ReservationController{Manager: mgr}
}

func (rc *ReservationController) GetTimeSlots(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Time slots", reservations.TimeSlots())
}

func (rc *ReservationController) GetState(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Workflow state", gin.H{
		"workflow": rc.Manager.State(),
		"draft":    rc.Manager.Draft(),
	})
}

type lookupRequest struct {
	ConfirmationCode string `json:"confirmation_code"`
	Email            string `json:"email"`
}

func (rc *ReservationController) Lookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	res, err := rc.Manager.Lookup(req.ConfirmationCode, req.Email)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation found", res)
}

type submitRequest struct {
	models.ReservationDraft
	IsModifying bool `json:"is_modifying"`
}

func (rc *ReservationController) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	res, err := rc.Manager.Submit(req.ReservationDraft, req.IsModifying)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	livefeed.BroadcastReservationUpdate(res)
	if req.IsModifying {
		utils.RespondJSON(c, http.StatusOK, "Reservation updated", res)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Reservation request submitted", res)
}

func (rc *ReservationController) BeginModify(c *gin.Context) {
	draft, err := rc.Manager.BeginModify()
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation loaded for modification", draft)
}

func (rc *ReservationController) CancelModify(c *gin.Context) {
	if err := rc.Manager.CancelModify(); err != nil {
		respondWorkflowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Modification cancelled", rc.Manager.State())
}

type cancelRequest struct {
	ID string `json:"id" binding:"required"`
}

func (rc *ReservationController) Cancel(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := rc.Manager.Cancel(req.ID); err != nil {
		respondWorkflowError(c, err)
		return
	}

	livefeed.BroadcastReservationUpdate(rc.Manager.State())
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", rc.Manager.State())
}

// respondWorkflowError maps workflow errors onto HTTP statuses: validation
// failures are 400 with the field list, a failed lookup is 404, and an
// out-of-order transition is 409.
func respondWorkflowError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		utils.RespondJSON(c, http.StatusBadRequest, verr.Error(), gin.H{"fields": verr.Fields})
	case errors.Is(err, reservations.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, reservations.ErrInvalidState):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
