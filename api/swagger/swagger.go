package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Administration API",
        "description": "University scheduling and administration portal backend",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Departments", "description": "Department registry"},
        {"name": "Buildings", "description": "Campus buildings"},
        {"name": "Courses", "description": "Degree programmes"},
        {"name": "Modules", "description": "Teaching units"},
        {"name": "Staff", "description": "Staff roster"},
        {"name": "Constraints", "description": "Scheduling constraints"},
        {"name": "Uploads", "description": "Profile image uploads"}
    ],
    "parameters": {
        "page": {"name": "page", "in": "query", "type": "integer", "minimum": 1, "description": "1-based page number"},
        "pageSize": {"name": "pageSize", "in": "query", "type": "integer", "minimum": 1, "description": "Items per page (max 100)"},
        "search": {"name": "search", "in": "query", "type": "string", "description": "Case-insensitive substring match"},
        "sortColumn": {"name": "sortColumn", "in": "query", "type": "string", "description": "Allowlisted sort column"},
        "sortOrder": {"name": "sortOrder", "in": "query", "type": "string", "enum": ["ASC", "DESC"]}
    },
    "paths": {
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "parameters": [
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/pageSize"},
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/sortColumn"},
                    {"$ref": "#/parameters/sortOrder"},
                    {"name": "departmentId", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Page envelope", "schema": {"$ref": "#/definitions/PageEnvelope"}},
                    "400": {"description": "Invalid pagination", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Constraint violation", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Course DTO"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Updated DTO"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/uploads": {
            "post": {
                "tags": ["Uploads"],
                "summary": "Upload a staff profile image",
                "consumes": ["multipart/form-data"],
                "parameters": [{"name": "image", "in": "formData", "type": "file", "required": true}],
                "responses": {
                    "200": {"description": "{message, imageUrl}"},
                    "400": {"description": "{message}"}
                }
            }
        }
    },
    "definitions": {
        "PageEnvelope": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}},
                "currentPage": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "totalItems": {"type": "integer"},
                "pageSize": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document. Buildings, departments, modules,
// staff and constraints expose the same route shapes as courses.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
