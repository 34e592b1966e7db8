package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable API",
        "description": "Generates and serves weekly department timetables.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Timetable", "description": "Generation, viewing, export and conflict checks"},
        {"name": "Assignments", "description": "Teacher workload per section"},
        {"name": "System", "description": "Health, readiness and metrics"}
    ],
    "paths": {
        "/timetable/generate": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Generate a department timetable",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/GenerationReportEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable/departments/{departmentId}": {
            "get": {
                "tags": ["Timetable"],
                "summary": "View a department timetable",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "departmentId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DepartmentTimetableEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable/departments/{departmentId}/export": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Export a department timetable",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "departmentId", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"]}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable/conflicts/check": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Check whether a teacher, room or section is free at a day and slot",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ConflictCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ConflictCheckEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/assignments": {
            "post": {
                "tags": ["Assignments"],
                "summary": "Register a teaching assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAssignmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/AssignmentEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sections/{sectionId}/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List the assignments of a section",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "sectionId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "GenerateTimetableRequest": {
            "type": "object",
            "required": ["department_id"],
            "properties": {
                "department_id": {"type": "string"}
            }
        },
        "GenerationReport": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["success", "partial_success"]},
                "entries": {"type": "integer"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "department_id": {"type": "string"},
                "generated_at": {"type": "string", "format": "date-time"}
            }
        },
        "TimetableEntryDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "department_id": {"type": "string"},
                "day": {"type": "string"},
                "time_slot": {"type": "string"},
                "section_id": {"type": "string"},
                "course_id": {"type": "string"},
                "teacher_id": {"type": "string"},
                "room_id": {"type": "string"},
                "section": {"type": "string"},
                "course": {"type": "string"},
                "teacher": {"type": "string"},
                "room": {"type": "string"}
            }
        },
        "DepartmentTimetable": {
            "type": "object",
            "properties": {
                "department_id": {"type": "string"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/TimetableEntryDetail"}}
            }
        },
        "ConflictCheckRequest": {
            "type": "object",
            "required": ["day", "time_slot"],
            "properties": {
                "day": {"type": "string"},
                "time_slot": {"type": "string"},
                "teacher_id": {"type": "string"},
                "room_id": {"type": "string"},
                "section_id": {"type": "string"}
            }
        },
        "ConflictCheckResponse": {
            "type": "object",
            "properties": {
                "conflict": {"type": "boolean"},
                "reason": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "CreateAssignmentRequest": {
            "type": "object",
            "required": ["teacher_id", "course_id", "section_id"],
            "properties": {
                "teacher_id": {"type": "string"},
                "course_id": {"type": "string"},
                "section_id": {"type": "string"},
                "hours_per_week": {"type": "integer", "minimum": 1}
            }
        },
        "Assignment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "teacher_id": {"type": "string"},
                "course_id": {"type": "string"},
                "section_id": {"type": "string"},
                "hours_per_week": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "GenerationReportEnvelope": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/GenerationReport"}}
        },
        "DepartmentTimetableEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/DepartmentTimetable"},
                "meta": {"type": "object"}
            }
        },
        "ConflictCheckEnvelope": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/ConflictCheckResponse"}}
        },
        "AssignmentEnvelope": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/Assignment"}}
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
