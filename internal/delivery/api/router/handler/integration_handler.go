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

// IntegrationHandlerParams holds dependencies for IntegrationHandler, injected by Fx.
type IntegrationHandlerParams struct {
	fx.In

	TokenUC        usecase.TokenUsecase
	ProviderDataUC usecase.ProviderDataUsecase
	Logger         *slog.Logger
}

// IntegrationHandler serves the per-provider connection endpoints.
type IntegrationHandler struct {
	tokenUC        usecase.TokenUsecase
	providerDataUC usecase.ProviderDataUsecase
	logger         *slog.Logger
}

// NewIntegrationHandler is the constructor for IntegrationHandler
func NewIntegrationHandler(params IntegrationHandlerParams) *IntegrationHandler {
	return &IntegrationHandler{
		tokenUC:        params.TokenUC,
		providerDataUC: params.ProviderDataUC,
		logger:         params.Logger,
	}
}

// Authorize returns the provider consent URL, or redirects to it with ?redirect=true.
func (h *IntegrationHandler) Authorize(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	provider, err := providerParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.tokenUC.AuthorizationURL(c.Request().Context(), userID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if redirect, _ := strconv.ParseBool(c.QueryParam("redirect")); redirect {
		return c.Redirect(http.StatusTemporaryRedirect, output.URL)
	}

	return response.Success(c, http.StatusOK, output)
}

// Authenticate completes the OAuth flow with the code returned by the provider.
func (h *IntegrationHandler) Authenticate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	provider, err := providerParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.AuthenticateInput
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid authentication input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	ctx := c.Request().Context()
	if _, err := h.tokenUC.Authenticate(ctx, userID, provider, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	// Tokens never leave the server; report the connection instead.
	status, err := h.tokenUC.Status(ctx, userID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// Status reports whether the provider is connected.
func (h *IntegrationHandler) Status(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	provider, err := providerParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.tokenUC.Status(c.Request().Context(), userID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// GetData fetches fresh provider data, or the cached copy with ?cached=true.
func (h *IntegrationHandler) GetData(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	provider, err := providerParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	var data entity.ProviderProfileData
	if cached, _ := strconv.ParseBool(c.QueryParam("cached")); cached {
		data, err = h.providerDataUC.GetCached(ctx, userID, provider)
		if err == nil && data == nil {
			return response.NotFound(c, "CACHE_MISS", "No fresh cached data for this provider")
		}
	} else {
		data, err = h.providerDataUC.FetchProviderData(ctx, userID, provider)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, data)
}

// Disconnect revokes the provider connection.
func (h *IntegrationHandler) Disconnect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	provider, err := providerParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.tokenUC.Revoke(c.Request().Context(), userID, provider); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
