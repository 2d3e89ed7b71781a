package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Department Timetable API",
        "description": "Semester catalog management and automatic timetable generation for an academic department",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login and identity"},
        {"name": "Semesters", "description": "Semester and class management"},
        {"name": "Courses", "description": "Course catalog management"},
        {"name": "Timetable", "description": "Timetable views, manual edits and publication"},
        {"name": "Generator", "description": "Automatic timetable generation"},
        {"name": "Exports", "description": "Timetable downloads"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/semesters": {
            "get": {
                "tags": ["Semesters"],
                "summary": "List semesters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Semesters"],
                "summary": "Create semester",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSemesterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/semesters/active": {
            "get": {
                "tags": ["Semesters"],
                "summary": "Get the active semester",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No active semester"}
                }
            }
        },
        "/semesters/{id}": {
            "put": {
                "tags": ["Semesters"],
                "summary": "Update semester",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSemesterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Semesters"],
                "summary": "Delete semester",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/semesters/{id}/classes": {
            "get": {
                "tags": ["Semesters"],
                "summary": "List a semester's classes",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Semesters"],
                "summary": "Add a class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes/{id}": {
            "delete": {
                "tags": ["Semesters"],
                "summary": "Remove a class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "parameters": [
                    {"name": "semesterId", "in": "query", "type": "string"},
                    {"name": "program", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "section", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Add a course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{id}": {
            "put": {
                "tags": ["Courses"],
                "summary": "Update a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/courses/import": {
            "post": {
                "tags": ["Courses"],
                "summary": "Import courses from CSV",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "semesterId", "in": "query", "required": true, "type": "string"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Get a section's published timetable",
                "parameters": [
                    {"name": "semesterId", "in": "query", "required": true, "type": "string"},
                    {"name": "program", "in": "query", "required": true, "type": "string"},
                    {"name": "year", "in": "query", "required": true, "type": "integer"},
                    {"name": "section", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable/full": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Get a section's full timetable including unpublished slots",
                "parameters": [
                    {"name": "semesterId", "in": "query", "required": true, "type": "string"},
                    {"name": "program", "in": "query", "required": true, "type": "string"},
                    {"name": "year", "in": "query", "required": true, "type": "integer"},
                    {"name": "section", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable/slots": {
            "put": {
                "tags": ["Timetable"],
                "summary": "Place or replace a single timetable cell",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertSlotRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable/slots/{id}": {
            "delete": {
                "tags": ["Timetable"],
                "summary": "Remove a single timetable cell",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "semesterId", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/timetable/publish": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Publish the timetable of one or more classes",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PublishRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/timetable/time-slots": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Get the period time configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Timetable"],
                "summary": "Replace the period time configuration",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TimeSlotConfigRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/timetable/generate": {
            "post": {
                "tags": ["Generator"],
                "summary": "Generate timetables for the selected classes",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "A selected section is already published"}
                }
            }
        },
        "/timetable/export/csv": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a section's published timetable as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "semesterId", "in": "query", "required": true, "type": "string"},
                    {"name": "program", "in": "query", "required": true, "type": "string"},
                    {"name": "year", "in": "query", "required": true, "type": "integer"},
                    {"name": "section", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV file"}
                }
            }
        },
        "/timetable/export/pdf": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a section's published timetable as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "semesterId", "in": "query", "required": true, "type": "string"},
                    {"name": "program", "in": "query", "required": true, "type": "string"},
                    {"name": "year", "in": "query", "required": true, "type": "integer"},
                    {"name": "section", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF file"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "CreateSemesterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "active": {"type": "boolean"}
            },
            "required": ["name"]
        },
        "UpdateSemesterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "active": {"type": "boolean"}
            },
            "required": ["name"]
        },
        "CreateClassRequest": {
            "type": "object",
            "properties": {
                "program": {"type": "string"},
                "year": {"type": "integer"},
                "section": {"type": "string"},
                "classroom": {"type": "string"}
            },
            "required": ["program", "year", "section", "classroom"]
        },
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "semesterId": {"type": "string"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "instructor": {"type": "string"},
                "program": {"type": "string"},
                "year": {"type": "integer"},
                "lectureHours": {"type": "integer"},
                "tutorialHours": {"type": "integer"},
                "practicalHours": {"type": "integer"},
                "isElective": {"type": "boolean"},
                "isMinor": {"type": "boolean"},
                "isCombined": {"type": "boolean"},
                "type": {"type": "string", "enum": ["regular", "lab", "major_project", "minor_project"]},
                "labRoom": {"type": "string"},
                "sections": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["semesterId", "code", "name", "instructor", "program", "year", "sections"]
        },
        "UpsertSlotRequest": {
            "type": "object",
            "properties": {
                "semesterId": {"type": "string"},
                "program": {"type": "string"},
                "year": {"type": "integer"},
                "section": {"type": "string"},
                "day": {"type": "string"},
                "slot": {"type": "integer"},
                "courseId": {"type": "string"},
                "slotType": {"type": "string", "enum": ["class", "lab"]}
            },
            "required": ["semesterId", "program", "year", "section", "day", "slot", "courseId"]
        },
        "PublishRequest": {
            "type": "object",
            "properties": {
                "semesterId": {"type": "string"},
                "classIds": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["semesterId", "classIds"]
        },
        "TimeSlotConfigRequest": {
            "type": "object",
            "properties": {
                "slots": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/TimeSlotItem"}
                }
            },
            "required": ["slots"]
        },
        "TimeSlotItem": {
            "type": "object",
            "properties": {
                "slot": {"type": "integer"},
                "start": {"type": "string"},
                "end": {"type": "string"}
            },
            "required": ["slot", "start", "end"]
        },
        "MinorSlotRequest": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "slot": {"type": "integer"}
            },
            "required": ["day", "slot"]
        },
        "GenerateTimetableRequest": {
            "type": "object",
            "properties": {
                "semesterId": {"type": "string"},
                "classIds": {"type": "array", "items": {"type": "string"}},
                "minorSlots": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/MinorSlotRequest"}
                }
            },
            "required": ["semesterId", "classIds", "minorSlots"]
        },
        "GenerationWarning": {
            "type": "object",
            "properties": {
                "course": {"type": "string"},
                "section": {"type": "string"},
                "category": {"type": "string"},
                "scheduled": {"type": "integer"},
                "required": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
