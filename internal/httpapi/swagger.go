//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

// swaggerDoc describes the JSON endpoints. The HTML pages are left out.
const swaggerDoc = `{
  "swagger": "2.0",
  "info": {"title": "{{.Title}}", "description": "{{escape .Description}}", "version": "{{.Version}}"},
  "basePath": "{{.BasePath}}",
  "schemes": {{ marshal .Schemes }},
  "paths": {
    "/api/ask": {"post": {
      "summary": "Answer a farming question",
      "consumes": ["application/json"], "produces": ["application/json"],
      "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.AskRequest"}}],
      "responses": {
        "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.AskResponse"}},
        "400": {"description": "Empty prompt or bad body", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
        "415": {"description": "Content-Type is not JSON", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
        "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
        "503": {"description": "Model unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
      }}},
    "/health": {"get": {"summary": "Liveness probe", "produces": ["application/json"],
      "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthResponse"}}}}},
    "/status": {"get": {"summary": "Model handle status", "produces": ["application/json"],
      "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}}}},
    "/readyz": {"get": {"summary": "Readiness probe", "produces": ["text/plain"],
      "responses": {"200": {"description": "ready"}, "503": {"description": "loading"}}}}
  },
  "definitions": {
    "types.AskRequest": {"type": "object", "properties": {"prompt": {"type": "string", "example": "How do I rotate crops?"}}},
    "types.AskResponse": {"type": "object", "properties": {"response": {"type": "string", "example": "Rotate corn, soy, and clover each season."}}},
    "types.HealthResponse": {"type": "object", "properties": {"status": {"type": "string", "example": "healthy"}, "model_loaded": {"type": "boolean"}}},
    "types.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "integer"}}},
    "types.StatusResponse": {"type": "object", "properties": {
      "state": {"type": "string"}, "model_path": {"type": "string"}, "model_loaded": {"type": "boolean"},
      "error": {"type": "string"}, "load_attempts": {"type": "integer"}, "llama_built": {"type": "boolean"},
      "max_tokens": {"type": "integer"}, "temperature": {"type": "number"}, "uptime_seconds": {"type": "integer"}}}
  }
}`

// SwaggerInfo holds the exported Swagger metadata.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "ruralai API",
	Description:      "JSON API of the offline rural assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  swaggerDoc,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// MountSwagger serves the Swagger UI under /swagger/.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}
