// Package docs holds the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/api/v1/items": {
            "get": {
                "tags": ["items"],
                "summary": "List or search items",
                "parameters": [{"type": "string", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ItemListResponse"}}}
            },
            "post": {
                "tags": ["items"],
                "summary": "Add item",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ItemRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Item"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/items/restore": {
            "post": {
                "tags": ["items"],
                "summary": "Restore a deleted item",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Item"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Item"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/items/{id}": {
            "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
            "get": {
                "tags": ["items"],
                "summary": "Get item",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Item"}}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["items"],
                "summary": "Replace item",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ItemRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Item"}}}
            },
            "patch": {
                "tags": ["items"],
                "summary": "Update some item fields",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ItemRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Item"}}}
            },
            "delete": {
                "tags": ["items"],
                "summary": "Delete item",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Item"}}}
            }
        },
        "/api/v1/categories": {
            "get": {
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Category"}}}}
            },
            "post": {
                "tags": ["categories"],
                "summary": "Add category",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Category"}}, "409": {"description": "Conflict"}}
            }
        },
        "/api/v1/categories/{id}": {
            "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
            "get": {
                "tags": ["categories"],
                "summary": "Get category",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Category"}}}
            },
            "put": {
                "tags": ["categories"],
                "summary": "Rename category",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CategoryRequest"}}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["categories"],
                "summary": "Delete an empty category",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Category"}}, "409": {"description": "Conflict"}}
            }
        },
        "/api/v1/stats": {
            "get": {"tags": ["stats"], "summary": "Dashboard statistics", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/reports/export": {
            "get": {
                "tags": ["reports"],
                "summary": "Export a CSV report",
                "produces": ["text/csv"],
                "parameters": [
                    {"type": "string", "enum": ["full", "summary", "value", "warranty"], "name": "type", "in": "query"},
                    {"type": "string", "name": "categories", "in": "query"},
                    {"type": "boolean", "name": "include_warranty", "in": "query"},
                    {"type": "boolean", "name": "include_images", "in": "query"},
                    {"type": "boolean", "name": "include_receipts", "in": "query"}
                ],
                "responses": {"200": {"description": "CSV file"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/events": {
            "get": {
                "tags": ["events"],
                "summary": "Server-sent inventory events",
                "produces": ["text/event-stream"],
                "parameters": [{"type": "string", "name": "types", "in": "query"}],
                "responses": {"200": {"description": "Event stream"}}
            }
        },
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness check", "security": [], "responses": {"200": {"description": "OK"}}}},
        "/readyz": {"get": {"tags": ["health"], "summary": "Readiness check", "security": [], "responses": {"200": {"description": "OK"}, "503": {"description": "Unavailable"}}}},
        "/version": {"get": {"tags": ["health"], "summary": "Build information", "security": [], "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "fields": {"type": "object", "additionalProperties": {"type": "string"}}}
        },
        "Warranty": {
            "type": "object",
            "properties": {"provider": {"type": "string"}, "expiry_date": {"type": "string"}, "details": {"type": "string"}}
        },
        "Receipt": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "date": {"type": "string"}, "url": {"type": "string"}, "data": {"type": "string"}}
        },
        "ItemRequest": {
            "type": "object",
            "required": ["name", "category", "purchase_date", "purchase_price"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "purchase_date": {"type": "string", "example": "2024-01-31"},
                "purchase_price": {"type": "number"},
                "current_value": {"type": "number"},
                "location": {"type": "string"},
                "serial_number": {"type": "string"},
                "model": {"type": "string"},
                "warranty": {"$ref": "#/definitions/Warranty"},
                "notes": {"type": "string"},
                "receipts": {"type": "array", "items": {"$ref": "#/definitions/Receipt"}},
                "images": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Item": {
            "allOf": [
                {"$ref": "#/definitions/ItemRequest"},
                {"type": "object", "properties": {"id": {"type": "string"}, "timestamp": {"type": "string", "format": "date-time"}}}
            ]
        },
        "ItemListResponse": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/Item"}}, "count": {"type": "integer"}, "query": {"type": "string"}}
        },
        "Category": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "item_count": {"type": "integer"}}
        },
        "CategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Home Inventory API",
	Description:      "Tracks household items, categories, warranties and receipts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
