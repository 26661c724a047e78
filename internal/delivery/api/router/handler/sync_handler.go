package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"profilesync/internal/delivery/api/middleware"
	"profilesync/internal/delivery/api/response"
	"profilesync/internal/domain/entity"
	"profilesync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC     usecase.SyncUsecase
	ConflictUC usecase.ConflictUsecase
	Logger     *slog.Logger
}

// SyncHandler serves synchronization and conflict endpoints.
type SyncHandler struct {
	syncUC     usecase.SyncUsecase
	conflictUC usecase.ConflictUsecase
	logger     *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC:     params.SyncUC,
		conflictUC: params.ConflictUC,
		logger:     params.Logger,
	}
}

// queuedResponse acknowledges a background synchronization.
type queuedResponse struct {
	Status string `json:"status"`
}

// Synchronize merges both providers into a new snapshot. An empty body
// retains every section. With ?async=true the run is handed to the sync
// worker and the request returns 202 at once.
func (h *SyncHandler) Synchronize(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var selection entity.SyncSelection
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&selection); err != nil {
			return response.InvalidInput(c, "Invalid synchronization input")
		}
	}

	async := false
	if raw := c.QueryParam("async"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.InvalidInput(c, "async must be a boolean")
		}
		async = parsed
	}

	if async {
		if err := h.syncUC.RequestSync(c.Request().Context(), userID, selection); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusAccepted, queuedResponse{Status: "queued"})
	}

	result, err := h.syncUC.SynchronizeData(c.Request().Context(), userID, selection)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// A failed run is still a well-formed result; the body explains it.
	return response.Success(c, http.StatusOK, result)
}

// GetSnapshot returns the last synchronized snapshot.
func (h *SyncHandler) GetSnapshot(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	snapshot, err := h.syncUC.GetSnapshot(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// ClearAll removes every stored key of the caller.
func (h *SyncHandler) ClearAll(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.syncUC.ClearAllData(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetConflicts lists stored conflicts, resolved ones included.
func (h *SyncHandler) GetConflicts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	conflicts, err := h.conflictUC.GetConflicts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conflicts)
}

// ResolveConflict settles one conflict.
func (h *SyncHandler) ResolveConflict(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.ResolveConflictInput
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid resolution input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	conflict, err := h.conflictUC.ResolveConflict(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conflict)
}
