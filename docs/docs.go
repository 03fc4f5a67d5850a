// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

// Package docs holds the Swagger 2.0 document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/nutriprofile/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.StatusResponse"
                        }
                    }
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.HealthResponse"
                        }
                    }
                }
            }
        },
        "/api/schema": {
            "get": {
                "description": "Required keys, allowed categorical values and per-field JSON types",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Input schema",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Schema"
                        }
                    }
                }
            }
        },
        "/api/test": {
            "get": {
                "description": "Static payload for front-end development. Accepts GET or POST and ignores any body.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Mock recommendation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RecommendationResult"
                        }
                    }
                }
            },
            "post": {
                "description": "Static payload for front-end development. Accepts GET or POST and ignores any body.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Mock recommendation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RecommendationResult"
                        }
                    }
                }
            }
        },
        "/api/recommend": {
            "post": {
                "description": "Validates the ten health fields, assigns the record to one of six\nhealth-profile clusters and returns up to ten foods ranked by\nProtein*2 - Fat*1.5 - Calories/50.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recommendations"
                ],
                "summary": "Recommend foods for a health profile",
                "parameters": [
                    {
                        "description": "Health metrics",
                        "name": "record",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.HealthRecord"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RecommendationResult"
                        }
                    },
                    "400": {
                        "description": "Validation failure",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "413": {
                        "description": "Body too large",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limited",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Configuration or internal failure",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.HealthRecord": {
            "type": "object",
            "required": [
                "Age",
                "BMI",
                "Chronic_Disease",
                "Blood_Pressure_Systolic",
                "Blood_Sugar_Level",
                "Daily_Steps",
                "Exercise_Frequency",
                "Alcohol_Consumption",
                "Smoking_Habit",
                "Dietary_Habits"
            ],
            "properties": {
                "Age": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 100
                },
                "BMI": {
                    "type": "number",
                    "minimum": 10,
                    "maximum": 60
                },
                "Chronic_Disease": {
                    "type": "string",
                    "enum": [
                        "None",
                        "Diabetes",
                        "Heart Disease",
                        "Hypertension",
                        "Obesity"
                    ]
                },
                "Blood_Pressure_Systolic": {
                    "type": "integer",
                    "minimum": 80,
                    "maximum": 200
                },
                "Blood_Sugar_Level": {
                    "type": "integer",
                    "minimum": 50,
                    "maximum": 400
                },
                "Daily_Steps": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 30000
                },
                "Exercise_Frequency": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 7
                },
                "Alcohol_Consumption": {
                    "type": "string",
                    "enum": [
                        "No",
                        "Yes"
                    ]
                },
                "Smoking_Habit": {
                    "type": "string",
                    "enum": [
                        "No",
                        "Yes"
                    ]
                },
                "Dietary_Habits": {
                    "type": "string",
                    "enum": [
                        "Regular",
                        "Vegetarian",
                        "Vegan",
                        "Keto"
                    ]
                }
            }
        },
        "models.FoodView": {
            "type": "object",
            "properties": {
                "Food": {
                    "type": "string"
                },
                "Category": {
                    "type": "string"
                },
                "Protein": {
                    "type": "number"
                },
                "Fat": {
                    "type": "number"
                },
                "Carbs": {
                    "type": "number"
                },
                "Calories": {
                    "type": "number"
                }
            }
        },
        "models.RecommendationResult": {
            "type": "object",
            "properties": {
                "profile_name": {
                    "type": "string"
                },
                "recommendation_type": {
                    "type": "string"
                },
                "recommended_foods": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.FoodView"
                    }
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "allowed": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        },
        "models.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean"
                }
            }
        },
        "models.Schema": {
            "type": "object",
            "properties": {
                "required_keys": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "allowed_values": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                },
                "field_types": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        }
    },
    "tags": [
        {
            "description": "Liveness, health, schema and mock endpoints",
            "name": "Core"
        },
        {
            "description": "Health-profile classification and food ranking",
            "name": "Recommendations"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "NutriProfile API",
	Description:      "Health-profile clustering and food recommendation service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
