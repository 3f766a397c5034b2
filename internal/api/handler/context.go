package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hirehub/hirehub-api/internal/api/middleware"
	"github.com/hirehub/hirehub-api/internal/core/domain"
)

// actorID resolves the acting user for a privileged call. A verified Bearer
// identity wins; otherwise the documented caller-supplied query parameter is
// trusted for parity with the original client contract. All downstream role
// and ownership checks happen in the service layer either way.
func actorID(c echo.Context, queryParam string) (string, error) {
	if id, ok := middleware.FromContext(c); ok && id.UserID != "" {
		return id.UserID, nil
	}
	v := c.QueryParam(queryParam)
	if v == "" {
		return "", domain.Validationf("%s is required", queryParam)
	}
	return v, nil
}
