package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/meeting-planner-api/internal/dto"
	"github.com/noah-isme/meeting-planner-api/internal/models"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
	"github.com/noah-isme/meeting-planner-api/pkg/response"
)

type draftService interface {
	Create(ctx context.Context, req dto.CreateDraftRequest) (*models.Draft, error)
	Get(ctx context.Context, id string) (*models.Draft, error)
	List(ctx context.Context, filter models.DraftFilter) ([]models.Draft, *models.Pagination, error)
	Delete(ctx context.Context, id string) error
	AddUser(ctx context.Context, id string) (*models.Draft, error)
	RemoveUser(ctx context.Context, id string, userID int) (*models.Draft, error)
	AddBusySlot(ctx context.Context, id string, userID int) (*models.Draft, error)
	RemoveBusySlot(ctx context.Context, id string, userID, index int) (*models.Draft, error)
	UpdateBusySlot(ctx context.Context, id string, userID, index int, req dto.UpdateBusySlotRequest) (*models.Draft, error)
	Submit(ctx context.Context, id string) (*dto.SubmitDraftResponse, error)
}

// DraftHandler exposes schedule editor sessions.
type DraftHandler struct {
	service draftService
}

// NewDraftHandler builds a new handler.
func NewDraftHandler(service draftService) *DraftHandler {
	return &DraftHandler{service: service}
}

// Create godoc
// @Summary Start a schedule draft
// @Tags Drafts
// @Accept json
// @Produce json
// @Param example query bool false "Seed with the sample schedules"
// @Param payload body dto.CreateDraftRequest false "Initial users"
// @Success 201 {object} response.Envelope
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	var req dto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid draft payload"))
		return
	}
	if example, _ := strconv.ParseBool(c.Query("example")); example {
		req.Example = true
	}
	draft, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, draft)
}

// List godoc
// @Summary List drafts
// @Tags Drafts
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /drafts [get]
func (h *DraftHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	drafts, pagination, err := h.service.List(c.Request.Context(), models.DraftFilter{Page: page, PageSize: size})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, drafts, pagination)
}

// Get godoc
// @Summary Get a draft
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Envelope
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	draft, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// Delete godoc
// @Summary Discard a draft
// @Tags Drafts
// @Param id path string true "Draft ID"
// @Success 204
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddUser godoc
// @Summary Add a user with the next free id
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Envelope
// @Router /drafts/{id}/users [post]
func (h *DraftHandler) AddUser(c *gin.Context) {
	draft, err := h.service.AddUser(c.Request.Context(), c.Param("id"))
	h.respond(c, draft, err)
}

// RemoveUser godoc
// @Summary Remove a user
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param userId path int true "User ID"
// @Success 200 {object} response.Envelope
// @Router /drafts/{id}/users/{userId} [delete]
func (h *DraftHandler) RemoveUser(c *gin.Context) {
	userID, err := intParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	draft, err := h.service.RemoveUser(c.Request.Context(), c.Param("id"), userID)
	h.respond(c, draft, err)
}

// AddBusySlot godoc
// @Summary Append the default busy slot (09:00-10:00)
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param userId path int true "User ID"
// @Success 200 {object} response.Envelope
// @Router /drafts/{id}/users/{userId}/busy [post]
func (h *DraftHandler) AddBusySlot(c *gin.Context) {
	userID, err := intParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	draft, err := h.service.AddBusySlot(c.Request.Context(), c.Param("id"), userID)
	h.respond(c, draft, err)
}

// UpdateBusySlot godoc
// @Summary Replace a busy slot
// @Tags Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param userId path int true "User ID"
// @Param index path int true "Slot index"
// @Param payload body dto.UpdateBusySlotRequest true "New interval"
// @Success 200 {object} response.Envelope
// @Router /drafts/{id}/users/{userId}/busy/{index} [put]
func (h *DraftHandler) UpdateBusySlot(c *gin.Context) {
	userID, index, ok := h.slotParams(c)
	if !ok {
		return
	}
	var req dto.UpdateBusySlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid busy slot payload"))
		return
	}
	draft, err := h.service.UpdateBusySlot(c.Request.Context(), c.Param("id"), userID, index, req)
	h.respond(c, draft, err)
}

// RemoveBusySlot godoc
// @Summary Remove a busy slot
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param userId path int true "User ID"
// @Param index path int true "Slot index"
// @Success 200 {object} response.Envelope
// @Router /drafts/{id}/users/{userId}/busy/{index} [delete]
func (h *DraftHandler) RemoveBusySlot(c *gin.Context) {
	userID, index, ok := h.slotParams(c)
	if !ok {
		return
	}
	draft, err := h.service.RemoveBusySlot(c.Request.Context(), c.Param("id"), userID, index)
	h.respond(c, draft, err)
}

// Submit godoc
// @Summary Submit a draft to the scheduling backend
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	result, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

func (h *DraftHandler) slotParams(c *gin.Context) (int, int, bool) {
	userID, err := intParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return 0, 0, false
	}
	index, err := intParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return 0, 0, false
	}
	return userID, index, true
}

func (h *DraftHandler) respond(c *gin.Context, draft *models.Draft, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}
