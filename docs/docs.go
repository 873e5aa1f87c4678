// Package docs provides the Swagger document served by the swagger UI.
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
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "string"}
                    }
                }
            }
        },
        "/jobs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "List jobs, optionally filtered by status",
                "parameters": [
                    {
                        "type": "string",
                        "enum": ["OPEN", "ASSIGNED", "COMPLETED"],
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.JobList"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Create an inspection job",
                "parameters": [
                    {
                        "description": "Job to create",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CreateJobRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.Job"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/jobs/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Get a job with its assignment",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.JobDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/jobs/{id}/assign": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Assign a job to an inspector",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Inspector and local schedule time",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.AssignJobRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AssignmentResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/jobs/{id}/complete": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Complete the assignment of a job",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Completion details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CompleteRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AssignmentResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/assignments/{id}/complete": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Complete an assignment",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Completion details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CompleteRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AssignmentResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/inspectors": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inspectors"],
                "summary": "Register an inspector",
                "parameters": [
                    {
                        "description": "Inspector to register",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CreateInspectorRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.Inspector"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/inspectors/{id}/schedule": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inspectors"],
                "summary": "Inspector schedule rendered in the inspector local time",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.InspectorSchedule"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        }
    },
    "definitions": {
        "http.Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "http.CreateJobRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "http.CreateInspectorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "timezone": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "http.AssignJobRequest": {
            "type": "object",
            "properties": {
                "inspectorId": {"type": "integer"},
                "scheduleAt": {"type": "string"}
            }
        },
        "http.CompleteRequest": {
            "type": "object",
            "properties": {
                "inspectorId": {"type": "integer"},
                "assessment": {"type": "string"},
                "completedAt": {"type": "string"}
            }
        },
        "http.Job": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "http.JobList": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.Job"}}
            }
        },
        "http.Assignment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "inspectorId": {"type": "integer"},
                "inspectorName": {"type": "string"},
                "timezone": {"type": "string"},
                "scheduledAt": {"type": "string"},
                "completedAt": {"type": "string"},
                "assessment": {"type": "string"}
            }
        },
        "http.JobDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"},
                "assignment": {"$ref": "#/definitions/http.Assignment"}
            }
        },
        "http.AssignmentResult": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "jobId": {"type": "integer"},
                "inspectorId": {"type": "integer"},
                "jobStatus": {"type": "string"},
                "scheduledAt": {"type": "string"},
                "completedAt": {"type": "string"},
                "assessment": {"type": "string"}
            }
        },
        "http.Inspector": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "timezone": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "http.ScheduleItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "jobId": {"type": "integer"},
                "jobTitle": {"type": "string"},
                "scheduledAt": {"type": "string"},
                "completedAt": {"type": "string"},
                "assessment": {"type": "string"}
            }
        },
        "http.InspectorSchedule": {
            "type": "object",
            "properties": {
                "inspectorId": {"type": "integer"},
                "timezone": {"type": "string"},
                "assignments": {"type": "array", "items": {"$ref": "#/definitions/http.ScheduleItem"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inspection Service",
	Description:      "Scheduling of inspection jobs across inspectors working in different timezones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
