package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the Swagger UI and the OpenAPI document.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>revisaai-api: Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document for the REST contract served by this backend.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "revisaai-api", "version": "v1.0.0" },
  "components": {
    "securitySchemes": { "bearer": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" } }
  },
  "security": [ { "bearer": [] } ],
  "paths": {
    "/auth/login": { "post": { "summary": "Login with email and password", "security": [], "responses": { "200": { "description": "user and token" }, "401": { "description": "invalid credentials" } } } },
    "/auth/register": { "post": { "summary": "Create an account", "security": [], "responses": { "201": { "description": "user and token" }, "409": { "description": "email already registered" } } } },
    "/auth/logout": { "post": { "summary": "Revoke the current access token", "responses": { "204": { "description": "logged out" } } } },
    "/users/{id}": {
      "put": { "summary": "Update own profile", "responses": { "200": { "description": "updated user" }, "403": { "description": "other account" } } },
      "delete": { "summary": "Delete own account with its motos and revoke the token", "responses": { "204": { "description": "deleted" }, "403": { "description": "other account" } } }
    },
    "/users/{id}/avatar": { "post": { "summary": "Upload avatar (multipart field avatar)", "responses": { "200": { "description": "updated user" } } } },
    "/motos": {
      "get": { "summary": "List the caller's motos", "responses": { "200": { "description": "moto list" } } },
      "post": { "summary": "Create moto", "responses": { "201": { "description": "created moto" } } }
    },
    "/motos/{id}": {
      "put": { "summary": "Update moto", "responses": { "200": { "description": "updated moto" }, "403": { "description": "another user's moto" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Update moto", "responses": { "200": { "description": "updated moto" }, "403": { "description": "another user's moto" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete moto with its revisions and notifications", "responses": { "204": { "description": "deleted" }, "403": { "description": "another user's moto" } } }
    },
    "/motos/{id}/revisions": { "get": { "summary": "List revisions of a moto", "responses": { "200": { "description": "revision list" } } } },
    "/revisions": {
      "get": { "summary": "List revisions", "responses": { "200": { "description": "revision list" } } },
      "post": { "summary": "Create revision on one of the caller's motos", "responses": { "201": { "description": "created revision" }, "403": { "description": "another user's moto" } } }
    },
    "/revisions/{id}": {
      "patch": { "summary": "Update revision", "responses": { "200": { "description": "updated revision" } } },
      "delete": { "summary": "Delete revision with its notifications", "responses": { "204": { "description": "deleted" } } }
    },
    "/notifications": {
      "get": { "summary": "List notifications", "responses": { "200": { "description": "notification list" } } },
      "post": { "summary": "Create notification", "responses": { "201": { "description": "created notification" } } }
    },
    "/notifications/{id}": {
      "patch": { "summary": "Set notification status", "responses": { "200": { "description": "updated notification" } } },
      "delete": { "summary": "Delete notification", "responses": { "204": { "description": "deleted" } } }
    },
    "/notifications/revision/{revisionId}": {
      "patch": { "summary": "Set status of every notification of a revision", "responses": { "200": { "description": "updated notifications" } } },
      "delete": { "summary": "Delete every notification of a revision", "responses": { "204": { "description": "deleted" } } }
    },
    "/workshops": { "get": { "summary": "Search workshops (q)", "security": [], "responses": { "200": { "description": "workshop list" } } } },
    "/health": { "get": { "summary": "Liveness check", "security": [], "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "security": [], "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
