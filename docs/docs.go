// Package docs holds the Swagger 2.0 document served at /swagger/.
// It is maintained by hand; keep paths and definitions in line with the
// @Router and @Success annotations in internal/api.
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
        "/evaluate": {
            "post": {
                "description": "Builds the rubric for the test type, sends it with the essay to the local model and returns the evaluation text.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Relay"],
                "summary": "Evaluate an essay",
                "parameters": [
                    {
                        "description": "Essay to evaluate",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.EvaluateEssayRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.EvaluateEssayResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/generate-prompt": {
            "get": {
                "description": "Asks the local model for exactly one essay prompt of the requested test type.",
                "produces": ["application/json"],
                "tags": ["Relay"],
                "summary": "Generate a writing prompt",
                "parameters": [
                    {
                        "type": "string",
                        "description": "IELTS, SAT, GRE-ISSUE or GRE-ARGUMENT (case-insensitive)",
                        "name": "test_type",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.GeneratePromptResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/history": {
            "get": {
                "description": "Returns the most recent evaluation and prompt-generation calls, newest first. Essay text is never stored.",
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "List relay history",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Maximum number of records (1-500, default 50)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/store.Record"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/history/{recordID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "Get a history record",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.Record"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "error": {"type": "string", "example": "Invalid JSON"}
            }
        },
        "api.EvaluateEssayRequest": {
            "type": "object",
            "properties": {
                "essay": {"type": "string", "example": "Climate change is one of the most pressing issues..."},
                "prompt": {"type": "string", "example": "Some people think governments should tax carbon. Discuss."},
                "test_type": {"type": "string", "example": "IELTS"}
            }
        },
        "api.EvaluateEssayResponse": {
            "type": "object",
            "properties": {
                "evaluation": {"type": "string", "example": "Task Response: 6\nCoherence and Cohesion: 6..."}
            }
        },
        "api.GeneratePromptResponse": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string", "example": "Some people believe that university education should be free. To what extent do you agree or disagree?"}
            }
        },
        "store.Record": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "duration_ms": {"type": "integer", "example": 5321},
                "error": {"type": "string"},
                "essay_length": {"type": "integer", "example": 1842},
                "id": {"type": "string", "example": "01J9Z3K6Q0W8N4V2B7X5C1D3E9"},
                "kind": {"type": "string", "example": "evaluation"},
                "output": {"type": "string"},
                "status": {"type": "integer", "example": 200},
                "test_type": {"type": "string", "example": "IELTS"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EvaluateHub API",
	Description:      "Relays essays to a local language model for IELTS, SAT and GRE grading, and generates writing prompts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
