package http

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openapiDocument []byte

// LoadOpenAPIDocument parses and validates the embedded OpenAPI document.
// Validation runs at startup so a broken document fails the process
// instead of serving garbage.
func LoadOpenAPIDocument(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// RegisterOpenAPIRoute serves the raw document at GET /openapi.json.
func RegisterOpenAPIRoute(e *echo.Echo) {
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, openapiDocument)
	})
}
