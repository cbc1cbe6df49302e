//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "basePath": "{{.BasePath}}",
    "paths": {
        "/predict": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Classify one iris measurement vector",
                "responses": {
                    "200": {"description": "prediction"},
                    "400": {"description": "invalid body"},
                    "404": {"description": "unknown model"},
                    "422": {"description": "unusable measurements"},
                    "429": {"description": "backpressure"},
                    "503": {"description": "model unavailable"}
                }
            }
        },
        "/models": {"get": {"produces": ["application/json"], "summary": "List model artifacts", "responses": {"200": {"description": "registry"}}}},
        "/status": {"get": {"produces": ["application/json"], "summary": "Service status", "responses": {"200": {"description": "status"}}}},
        "/healthz": {"get": {"summary": "Liveness probe", "responses": {"200": {"description": "ok"}}}},
        "/readyz": {"get": {"summary": "Readiness probe", "responses": {"200": {"description": "ready"}, "503": {"description": "loading"}}}}
    }
}`

var swaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "irisd API",
	Description:      "HTTP prediction API for a pre-trained iris classifier.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(swaggerInfo.InstanceName(), swaggerInfo)
}

// MountSwagger serves the swagger UI under /docs.
func MountSwagger(r chi.Router) {
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))
}
