// Package docs registers the OpenAPI document served under /swagger/.
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
        "/api/bmi": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bmi"],
                "summary": "Calculate BMI",
                "parameters": [
                    {
                        "description": "weight_kg plus height_m or height_cm",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.BMIRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.BMIResult"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    }
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.BMIRequest": {
            "type": "object",
            "properties": {
                "height_cm": {"description": "number or numeric string", "type": "number"},
                "height_m": {"description": "number or numeric string; wins over height_cm", "type": "number"},
                "weight_kg": {"description": "number or numeric string", "type": "number"}
            }
        },
        "domain.BMIResult": {
            "type": "object",
            "properties": {
                "bmi": {"type": "number"},
                "category": {
                    "type": "string",
                    "enum": ["Underweight", "Normal", "Overweight", "Obesity"]
                },
                "healthy_weight_max_kg": {"type": "number"},
                "healthy_weight_min_kg": {"type": "number"},
                "height_m": {"type": "number"},
                "note": {"type": "string"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BMI Calculator API",
	Description:      "Computes a BMI category and healthy weight range from weight and height.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
