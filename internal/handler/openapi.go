package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/static"
)

// OpenAPIHandler serves the API documentation UI. The page itself loads
// /static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

// ServeOpenAPIUI serves the embedded openapi.html.
//
// Cache-Control is set to "no-cache" so browsers pick up new docs.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := static.FS.ReadFile("openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
