// Package docs holds the OpenAPI description served at /swagger.
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
        "/api/v1/tasks/parse": {
            "post": {
                "description": "Turn a free-text task description into a structured task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Parse task",
                "parameters": [
                    {
                        "description": "Free-text input",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object", "properties": {"input": {"type": "string"}}}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid input"},
                    "429": {"description": "Rate limited"},
                    "502": {"description": "Malformed model output"},
                    "503": {"description": "Model unreachable"}
                }
            }
        },
        "/api/v1/tasks/summary": {
            "post": {
                "description": "Analyze a task collection and generate an AI summary",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Summary"],
                "summary": "Summarize tasks",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid input"},
                    "429": {"description": "Rate limited"},
                    "502": {"description": "Malformed model output"},
                    "503": {"description": "Model unreachable"}
                }
            }
        },
        "/api/v1/tasks/analytics": {
            "post": {
                "description": "Compute the analytics snapshot without calling the model",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Summary"],
                "summary": "Analyze tasks",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid input"}
                }
            }
        },
        "/api/v1/tips": {
            "get": {
                "description": "Get one short productivity tip",
                "produces": ["application/json"],
                "tags": ["Summary"],
                "summary": "Productivity tip",
                "responses": {
                    "200": {"description": "OK"},
                    "429": {"description": "Rate limited"},
                    "503": {"description": "Model unreachable"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready"},
                    "503": {"description": "A dependency is unavailable"}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "AI Task Assistant API",
	Description:      "Natural-language task parsing, task analytics and AI generated summaries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
