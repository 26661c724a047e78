// Package handler contains the HTTP handlers of the integration API.
package handler

import (
	"net/http"

	"profilesync/internal/delivery/api/response"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

func providerParam(c echo.Context) (entity.ProviderType, error) {
	provider, err := entity.ParseProviderType(c.Param("provider"))
	if err != nil {
		return "", domainerrors.ErrUnsupportedProvider.WithDetails(err.Error())
	}

	return provider, nil
}
