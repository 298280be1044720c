// Package docs holds the OpenAPI description served under /swagger.
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
        "/workers": {
            "get": {
                "tags": [
                    "workers"
                ],
                "summary": "List workers",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "profession",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "nationality",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "religion",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "marital_status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "search",
                        "in": "query",
                        "description": "Case-insensitive substring over name, profession, nationality, skills, languages"
                    },
                    {
                        "type": "integer",
                        "name": "min_age",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "max_age",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "min_experience",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "ordering",
                        "in": "query",
                        "description": "name, age, created_at, experience_years or salary_expectation, optionally prefixed with -"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.workerSummaryResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "workers"
                ],
                "summary": "Create worker",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "worker",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.createWorkerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.workerResponse"
                        }
                    },
                    "400": {
                        "description": "Field-keyed validation errors",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/workers/export": {
            "get": {
                "tags": [
                    "workers"
                ],
                "summary": "Export workers as XLSX",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/workers/{id}": {
            "get": {
                "tags": [
                    "workers"
                ],
                "summary": "Get worker",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.workerResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/api.errorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "workers"
                ],
                "summary": "Delete worker and its bookings",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/api.errorResponse"
                        }
                    }
                }
            }
        },
        "/workers/{id}/status": {
            "patch": {
                "tags": [
                    "workers"
                ],
                "summary": "Set worker status",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.workerStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.workerResponse"
                        }
                    },
                    "400": {
                        "description": "Field-keyed validation errors",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/api.errorResponse"
                        }
                    }
                }
            }
        },
        "/bookings": {
            "get": {
                "tags": [
                    "bookings"
                ],
                "summary": "List booking requests",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "worker_profession",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "worker_nationality",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "ordering",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.bookingResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "bookings"
                ],
                "summary": "Create booking request",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "booking",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.createBookingRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.bookingResponse"
                        }
                    },
                    "400": {
                        "description": "Field-keyed validation errors",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/bookings/export": {
            "get": {
                "tags": [
                    "bookings"
                ],
                "summary": "Export booking requests as XLSX",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/bookings/{id}": {
            "get": {
                "tags": [
                    "bookings"
                ],
                "summary": "Get booking request",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.bookingResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/api.errorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "bookings"
                ],
                "summary": "Update booking status",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.updateBookingRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.bookingResponse"
                        }
                    },
                    "400": {
                        "description": "Field-keyed validation errors",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/api.errorResponse"
                        }
                    }
                }
            }
        },
        "/stats/workers": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Worker statistics",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.WorkerStats"
                        }
                    }
                }
            }
        },
        "/stats/bookings": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Booking statistics",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.BookingStats"
                        }
                    }
                }
            }
        },
        "/choices": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Filter choices",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.FilterChoices"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "api.workerSummaryResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "nationality": {
                    "type": "string"
                },
                "profession": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "image_url": {
                    "type": "string"
                },
                "experience_years": {
                    "type": "integer"
                },
                "salary_expectation": {
                    "type": "number"
                }
            }
        },
        "api.workerResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "passport_number": {
                    "type": "string"
                },
                "nationality": {
                    "type": "string"
                },
                "religion": {
                    "type": "string"
                },
                "profession": {
                    "type": "string"
                },
                "marital_status": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "image_url": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "experience_years": {
                    "type": "integer"
                },
                "languages_spoken": {
                    "type": "string"
                },
                "skills": {
                    "type": "string"
                },
                "salary_expectation": {
                    "type": "number"
                }
            }
        },
        "api.createWorkerRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "passport_number": {
                    "type": "string"
                },
                "nationality": {
                    "type": "string"
                },
                "religion": {
                    "type": "string"
                },
                "profession": {
                    "type": "string"
                },
                "marital_status": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "experience_years": {
                    "type": "integer"
                },
                "languages_spoken": {
                    "type": "string"
                },
                "skills": {
                    "type": "string"
                },
                "salary_expectation": {
                    "type": "number"
                }
            },
            "required": [
                "name",
                "passport_number",
                "nationality",
                "profession",
                "age"
            ]
        },
        "api.workerStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "required": [
                "status"
            ]
        },
        "api.createBookingRequest": {
            "type": "object",
            "properties": {
                "worker": {
                    "type": "integer"
                },
                "full_name": {
                    "type": "string"
                },
                "phone_number": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "preferred_start_date": {
                    "type": "string"
                },
                "contract_duration": {
                    "type": "string"
                }
            },
            "required": [
                "worker",
                "full_name",
                "phone_number"
            ]
        },
        "api.updateBookingRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "required": [
                "status"
            ]
        },
        "api.bookingResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "worker": {
                    "type": "integer"
                },
                "worker_name": {
                    "type": "string"
                },
                "worker_profession": {
                    "type": "string"
                },
                "worker_nationality": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "phone_number": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "preferred_start_date": {
                    "type": "string"
                },
                "contract_duration": {
                    "type": "string"
                }
            }
        },
        "domain.Choice": {
            "type": "object",
            "properties": {
                "value": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                }
            }
        },
        "domain.FilterChoices": {
            "type": "object",
            "properties": {
                "professions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Choice"
                    }
                },
                "nationalities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Choice"
                    }
                },
                "religions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Choice"
                    }
                },
                "marital_statuses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Choice"
                    }
                },
                "worker_statuses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Choice"
                    }
                },
                "booking_statuses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Choice"
                    }
                }
            }
        },
        "domain.WorkerStats": {
            "type": "object",
            "properties": {
                "total_workers": {
                    "type": "integer"
                },
                "available_workers": {
                    "type": "integer"
                },
                "booked_workers": {
                    "type": "integer"
                },
                "on_leave_workers": {
                    "type": "integer"
                },
                "profession_stats": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "nationality_stats": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "domain.BookingStats": {
            "type": "object",
            "properties": {
                "total_requests": {
                    "type": "integer"
                },
                "pending_requests": {
                    "type": "integer"
                },
                "approved_requests": {
                    "type": "integer"
                },
                "rejected_requests": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "WorkersHub API",
	Description:      "Directory of domestic workers and their booking requests.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
