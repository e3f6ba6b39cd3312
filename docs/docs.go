// Package docs registers the Swagger specification served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/titles": {
            "post": {
                "description": "Generate ten title suggestions for a topic. Category and tone are echoed back.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generators"],
                "summary": "Generate video titles",
                "parameters": [
                    {"type": "string", "description": "Session identifier", "name": "X-Session-ID", "in": "header"},
                    {"description": "Title request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/generator.TitleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/generator.TitleResult"}},
                    "204": {"description": "Blank topic, nothing generated"},
                    "400": {"description": "Invalid option or input over its maxLength", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Generation already in progress", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/descriptions": {
            "post": {
                "description": "Build a structured description from a title, key points and a call to action",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generators"],
                "summary": "Generate a video description",
                "parameters": [
                    {"type": "string", "description": "Session identifier", "name": "X-Session-ID", "in": "header"},
                    {"description": "Description request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/generator.DescriptionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/generator.DescriptionResult"}},
                    "204": {"description": "Blank title, nothing generated"},
                    "400": {"description": "Invalid option or input over its maxLength", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Generation already in progress", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/seo/analyze": {
            "post": {
                "description": "Score a title, description and tag list",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generators"],
                "summary": "Analyze SEO",
                "parameters": [
                    {"type": "string", "description": "Session identifier", "name": "X-Session-ID", "in": "header"},
                    {"description": "SEO request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/generator.SEORequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/generator.SEOResult"}},
                    "204": {"description": "Blank title, nothing analyzed"},
                    "400": {"description": "Invalid option or input over its maxLength", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Analysis already in progress", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/options": {
            "get": {
                "description": "Category, tone and call-to-action values with display labels",
                "produces": ["application/json"],
                "tags": ["generators"],
                "summary": "List generator options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.OptionsResponse"}}
                }
            }
        },
        "/stats": {
            "get": {
                "description": "Generation counters per generator for today and all time",
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Usage statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SuccessResponse"}},
                    "503": {"description": "Counter store unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/status": {
            "get": {
                "description": "Current state of every generator for a session, plus recent events when the event log is enabled",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Session status",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SuccessResponse"}},
                    "400": {"description": "Invalid session ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports ok when every configured store answers, degraded otherwise",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "generator.TitleRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string", "maxLength": 200, "example": "Home Workouts"},
                "category": {"type": "string", "enum": ["general", "gaming", "tech", "lifestyle", "education", "entertainment", "music", "fitness"]},
                "tone": {"type": "string", "enum": ["engaging", "professional", "casual", "exciting", "informative", "funny"]}
            }
        },
        "generator.TitleResult": {
            "type": "object",
            "properties": {
                "titles": {"type": "array", "items": {"type": "string"}},
                "category": {"type": "string"},
                "tone": {"type": "string"}
            }
        },
        "generator.DescriptionRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 500},
                "key_points": {"type": "string", "maxLength": 5000, "description": "One key point per line"},
                "call_to_action": {"type": "string", "enum": ["subscribe", "comment", "follow", "custom"]},
                "include_hashtags": {"type": "boolean"},
                "include_timestamps": {"type": "boolean"}
            }
        },
        "generator.DescriptionResult": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "character_count": {"type": "integer"},
                "character_limit": {"type": "integer", "example": 5000},
                "within_limit": {"type": "boolean"}
            }
        },
        "generator.SEORequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 500, "description": "Titles outside 30-60 characters are scored, not rejected"},
                "description": {"type": "string", "maxLength": 5000},
                "tags": {"type": "string", "maxLength": 1000, "description": "Comma separated tags"}
            }
        },
        "generator.SEOResult": {
            "type": "object",
            "properties": {
                "score": {"type": "integer", "example": 85},
                "score_band": {"type": "string", "enum": ["good", "fair", "poor"]},
                "title_analysis": {
                    "type": "object",
                    "properties": {
                        "length": {"type": "integer"},
                        "optimal": {"type": "boolean"},
                        "keywords": {"type": "array", "items": {"type": "string"}},
                        "engagement": {"type": "string"}
                    }
                },
                "suggestions": {"type": "array", "items": {"type": "string"}},
                "keywords": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "keyword": {"type": "string"},
                            "search_volume": {"type": "integer"},
                            "difficulty": {"type": "string", "enum": ["Low", "Medium", "High"]},
                            "difficulty_band": {"type": "string"},
                            "relevance": {"type": "integer"}
                        }
                    }
                },
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "generator.Option": {
            "type": "object",
            "properties": {
                "value": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "handlers.OptionsResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/generator.Option"}},
                "tones": {"type": "array", "items": {"$ref": "#/definitions/generator.Option"}},
                "calls_to_action": {"type": "array", "items": {"$ref": "#/definitions/generator.Option"}}
            }
        },
        "handlers.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string"},
                "data": {"type": "object"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "Something went wrong"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Creator Toolkit API",
	Description:      "Title, description and SEO helpers for video creators",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
