// Package docs registers the OpenAPI description served at /docs/.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/health": {
            "get": {"produces": ["text/plain"], "tags": ["Health"], "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}}
        },
        "/api/auth/google": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Auth"],
                "summary": "Sign in with a Google ID token",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SignInInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SessionResponse"}},
                    "400": {"description": "Missing, invalid or incomplete credential", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "500": {"description": "Provider or store unavailable", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }}
        },
        "/api/auth/google/login": {
            "get": {"tags": ["Auth"], "summary": "Start the Google redirect flow",
                "parameters": [{"type": "string", "name": "next", "in": "query"}],
                "responses": {"307": {"description": "Temporary Redirect"}}}
        },
        "/api/auth/google/callback": {
            "get": {"tags": ["Auth"], "summary": "Finish the Google redirect flow",
                "parameters": [{"type": "string", "name": "state", "in": "query", "required": true}, {"type": "string", "name": "code", "in": "query", "required": true}],
                "responses": {"307": {"description": "Temporary Redirect"}, "400": {"description": "Invalid state or code", "schema": {"$ref": "#/definitions/utils.Payload"}}}}
        },
        "/api/auth/me": {
            "get": {"produces": ["application/json"], "tags": ["Auth"], "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SessionResponse"}}, "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/utils.Payload"}}}}
        },
        "/api/auth/logout": {
            "post": {"produces": ["application/json"], "tags": ["Auth"], "summary": "Sign out",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}}, "500": {"description": "Session could not be destroyed", "schema": {"$ref": "#/definitions/utils.Payload"}}}}
        },
        "/api/passwords": {
            "get": {"produces": ["application/json"], "tags": ["Passwords"], "summary": "List password entries",
                "parameters": [{"type": "string", "name": "q", "in": "query"}, {"type": "string", "name": "category", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.PasswordEntry"}}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Payload"}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Passwords"], "summary": "Create a password entry",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/vault.CreatePasswordInput"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.PasswordEntry"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}}}}
        },
        "/api/passwords/stats": {
            "get": {"produces": ["application/json"], "tags": ["Passwords"], "summary": "Entry counts per dashboard category",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PasswordStats"}}}}
        },
        "/api/passwords/export": {
            "post": {"produces": ["application/json"], "tags": ["Passwords"], "summary": "Export the vault",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/vault.ExportResult"}}}}
        },
        "/api/passwords/{id}": {
            "get": {"produces": ["application/json"], "tags": ["Passwords"], "summary": "Get a password entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PasswordEntry"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}}},
            "patch": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Passwords"], "summary": "Partially update a password entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/vault.UpdatePasswordInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PasswordEntry"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}}},
            "delete": {"produces": ["application/json"], "tags": ["Passwords"], "summary": "Delete a password entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}}}
        },
        "/api/passwords/{id}/share": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Passwords"], "summary": "Share an entry with a family",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/vault.ShareInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}}}}
        },
        "/api/families": {
            "post": {"produces": ["application/json"], "tags": ["Families"], "summary": "Create a family",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.CreateFamilyResponse"}}}}
        },
        "/api/families/{familyId}/members": {
            "get": {"produces": ["application/json"], "tags": ["Families"], "summary": "List family members",
                "parameters": [{"type": "string", "name": "familyId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.FamilyMember"}}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Families"], "summary": "Add a member by email",
                "parameters": [{"type": "string", "name": "familyId", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/vault.AddMemberInput"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.FamilyMember"}}}}
        },
        "/api/families/{familyId}/passwords": {
            "get": {"produces": ["application/json"], "tags": ["Families"], "summary": "Entries shared with a family",
                "parameters": [{"type": "string", "name": "familyId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.PasswordEntry"}}}}}
        },
        "/api/tools/generate": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Tools"], "summary": "Generate a random password",
                "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/handlers.GenerateInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.GenerateResponse"}}}}
        },
        "/api/tools/strength": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Tools"], "summary": "Classify password strength",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StrengthInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.StrengthResponse"}}}}
        }
    },
    "definitions": {
        "utils.Payload": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "data": {}}},
        "handlers.SignInInput": {"type": "object", "required": ["credential"], "properties": {"credential": {"type": "string"}}},
        "handlers.SecretProtection": {"type": "object", "properties": {"level": {"type": "string", "enum": ["reversible-encoding", "encrypted-at-rest"]}, "notice": {"type": "string"}}},
        "handlers.SessionResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/models.SessionUser"}, "secretProtection": {"$ref": "#/definitions/handlers.SecretProtection"}}},
        "handlers.CreateFamilyResponse": {"type": "object", "properties": {"familyId": {"type": "string"}}},
        "handlers.GenerateInput": {"type": "object", "properties": {"length": {"type": "integer", "minimum": 8, "maximum": 128}}},
        "handlers.GenerateResponse": {"type": "object", "properties": {"password": {"type": "string"}, "strength": {"type": "string"}}},
        "handlers.StrengthInput": {"type": "object", "required": ["password"], "properties": {"password": {"type": "string"}}},
        "handlers.StrengthResponse": {"type": "object", "properties": {"strength": {"type": "string"}}},
        "models.SessionUser": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "picture": {"type": "string"}}},
        "models.PasswordEntry": {"type": "object", "properties": {
            "id": {"type": "string"}, "userId": {"type": "string"}, "title": {"type": "string"}, "username": {"type": "string"},
            "secret": {"type": "string"}, "website": {"type": "string"}, "icon": {"type": "string"},
            "isFavorite": {"type": "boolean"}, "isShared": {"type": "boolean"},
            "strength": {"type": "string", "enum": ["weak", "medium", "strong"]},
            "lastUsed": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "models.PasswordStats": {"type": "object", "properties": {"all": {"type": "integer"}, "favorites": {"type": "integer"}, "shared": {"type": "integer"}, "weak": {"type": "integer"}}},
        "models.FamilyMember": {"type": "object", "properties": {"id": {"type": "string"}, "familyId": {"type": "string"}, "userId": {"type": "string"}, "role": {"type": "string"}, "createdAt": {"type": "string"}, "user": {"$ref": "#/definitions/models.User"}}},
        "models.User": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "picture": {"type": "string"}, "createdAt": {"type": "string"}}},
        "vault.CreatePasswordInput": {"type": "object", "required": ["title", "username", "secret"], "properties": {
            "title": {"type": "string"}, "username": {"type": "string"}, "secret": {"type": "string"}, "website": {"type": "string"}, "icon": {"type": "string"},
            "isFavorite": {"type": "boolean"}, "strength": {"type": "string", "enum": ["weak", "medium", "strong"]}, "lastUsed": {"type": "string"}}},
        "vault.UpdatePasswordInput": {"type": "object", "properties": {
            "title": {"type": "string"}, "username": {"type": "string"}, "secret": {"type": "string"}, "website": {"type": "string"}, "icon": {"type": "string"},
            "isFavorite": {"type": "boolean"}, "isShared": {"type": "boolean"}, "strength": {"type": "string", "enum": ["weak", "medium", "strong"]}, "lastUsed": {"type": "string"}}},
        "vault.ShareInput": {"type": "object", "required": ["familyId"], "properties": {"familyId": {"type": "string"}}},
        "vault.AddMemberInput": {"type": "object", "required": ["email"], "properties": {"email": {"type": "string"}}},
        "vault.ExportResult": {"type": "object", "properties": {"url": {"type": "string"}, "expiresIn": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "passvault API",
	Description:      "Password manager backend with Google sign-in and server-side sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
