// Package docs holds the OpenAPI document served at /swagger, in the layout
// swag init produces.
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
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "List every registered route",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/server.SitemapEntry"}}}
                }
            }
        },
        "/people": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List characters",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Character"}}}
                }
            }
        },
        "/people/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a character",
                "parameters": [{"type": "integer", "description": "Character ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Character"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/planets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List planets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Planet"}}}
                }
            }
        },
        "/planets/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a planet",
                "parameters": [{"type": "integer", "description": "Planet ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Planet"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/vehicles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List vehicles",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Vehicle"}}}
                }
            }
        },
        "/vehicles/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a vehicle",
                "parameters": [{"type": "integer", "description": "Vehicle ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Vehicle"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}}
                }
            }
        },
        "/users/favorites": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Favorites of the current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserFavorites"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/favorite/{kind}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "List the current user's favorite rows of a kind",
                "parameters": [{"type": "string", "description": "people, planet or vehicle", "name": "kind", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Add a favorite",
                "parameters": [
                    {"type": "string", "description": "people, planet or vehicle", "name": "kind", "in": "path", "required": true},
                    {"description": "Entity id for the kind", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/server.favoriteBody"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/favorite/{kind}/{entityId}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Add a favorite with the entity id in the path",
                "parameters": [
                    {"type": "string", "description": "people, planet or vehicle", "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "description": "Entity ID, takes precedence over the body field", "name": "entityId", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/favorite/{kind}/{favoriteId}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Point an existing favorite at another entity",
                "parameters": [
                    {"type": "string", "description": "people, planet or vehicle", "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "description": "Favorite row ID", "name": "favoriteId", "in": "path", "required": true},
                    {"description": "New entity id for the kind", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/server.favoriteBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Delete a favorite by its row id",
                "parameters": [
                    {"type": "string", "description": "people, planet or vehicle", "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "description": "Favorite row ID", "name": "favoriteId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Character": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "birth_year": {"type": "string"},
                "gender": {"type": "string"},
                "height": {"type": "string"},
                "skin_color": {"type": "string"},
                "eye_color": {"type": "string"}
            }
        },
        "models.Planet": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "climate": {"type": "string"},
                "diameter": {"type": "string"},
                "population": {"type": "string"},
                "terrain": {"type": "string"}
            }
        },
        "models.Vehicle": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "model": {"type": "string"},
                "manufacturer": {"type": "string"},
                "cost_in_credits": {"type": "string"},
                "passengers": {"type": "string"},
                "vehicle_class": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.UserFavorites": {
            "type": "object",
            "properties": {
                "favorite_characters": {"type": "array", "items": {"$ref": "#/definitions/models.Character"}},
                "favorite_planets": {"type": "array", "items": {"$ref": "#/definitions/models.Planet"}},
                "favorite_vehicles": {"type": "array", "items": {"$ref": "#/definitions/models.Vehicle"}}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"msg": {"type": "string"}}
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {"msg": {"type": "string"}}
        },
        "server.SitemapEntry": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "methods": {"type": "array", "items": {"type": "string"}}
            }
        },
        "server.favoriteBody": {
            "type": "object",
            "properties": {
                "character_id": {"type": "integer"},
                "planet_id": {"type": "integer"},
                "vehicle_id": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Holocron API",
	Description:      "Star Wars catalog with per-user favorites.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
