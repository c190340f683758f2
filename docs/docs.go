// Package docs registers the OpenAPI document served under /swagger.
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
        "/roles/add": {"post": {"tags": ["roles"], "summary": "Create or rename a role", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Role"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/roles/get-by-id/{roleId}": {"get": {"tags": ["roles"], "summary": "Get role by id", "parameters": [{"type": "integer", "name": "roleId", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Role"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/roles/get-all": {"get": {"tags": ["roles"], "summary": "List roles", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Role"}}}}}},
        "/roles/delete/{roleId}": {"delete": {"tags": ["roles"], "summary": "Delete role", "parameters": [{"type": "integer", "name": "roleId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/roles/update/{roleId}": {"put": {"tags": ["roles"], "summary": "Rename role", "parameters": [{"type": "integer", "name": "roleId", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Role"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/users/signup": {"post": {"tags": ["users"], "summary": "Register user with the default role", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/users/login": {"post": {"tags": ["users"], "summary": "Verify email and password", "parameters": [{"type": "string", "name": "email", "in": "query"}, {"type": "string", "name": "password", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/users/exists": {"get": {"tags": ["users"], "summary": "Check whether a username or email is taken", "parameters": [{"type": "string", "name": "username", "in": "query"}, {"type": "string", "name": "email", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/users/get-by-id/{id}": {"get": {"tags": ["users"], "summary": "Get user by id", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/users/get-by-username/{username}": {"get": {"tags": ["users"], "summary": "Get user by username", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/users/get-by-email/{email}": {"get": {"tags": ["users"], "summary": "Get user by email", "parameters": [{"type": "string", "name": "email", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/users/get-all": {"get": {"tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.User"}}}}}},
        "/users/delete/{userId}": {"delete": {"tags": ["users"], "summary": "Delete user", "parameters": [{"type": "integer", "name": "userId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/users/update/{userId}": {"put": {"tags": ["users"], "summary": "Update username, email and password", "parameters": [{"type": "integer", "name": "userId", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}}
    },
    "definitions": {
        "errors.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "string"}}},
        "model.Role": {"type": "object", "properties": {"roleId": {"type": "integer"}, "roleName": {"type": "string"}}},
        "model.User": {"type": "object", "properties": {"userId": {"type": "integer"}, "username": {"type": "string"}, "email": {"type": "string"}, "contactNumber": {"type": "string"}, "state": {"type": "string"}, "role": {"$ref": "#/definitions/model.Role"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/user-service",
	Schemes:          []string{"http"},
	Title:            "User Service API",
	Description:      "Users, roles, signup and credential checks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
