package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Suraksha Training Portal API",
        "description": "Role-based training record management backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login, token refresh and session management"},
        {"name": "Professionals", "description": "Medical professional roster (admin only)"},
        {"name": "Trainees", "description": "Trainee records scoped by owning professional"},
        {"name": "Trainings", "description": "Training sessions scoped by conducting professional"},
        {"name": "Dashboard", "description": "Aggregate statistics"},
        {"name": "Exports", "description": "CSV/PDF exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate a user",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/get_professionals": {
            "get": {
                "tags": ["Professionals"],
                "summary": "List professionals with search/filter/sort",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Admin only"}
                }
            }
        },
        "/api/get_trainees": {
            "get": {
                "tags": ["Trainees"],
                "summary": "List trainees visible to the caller",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/get_trainings": {
            "get": {
                "tags": ["Trainings"],
                "summary": "List trainings visible to the caller",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "MessageEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
