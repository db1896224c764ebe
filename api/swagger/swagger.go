package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Smart Timetable Dashboard API",
        "description": "Dashboard backend that mirrors the scheduling service and keeps serving from a durable local store when it is unreachable. Responses carry an X-Data-Source header (remote, local or cache) so clients can tell fresh data from a degraded copy.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Faculty", "description": "Faculty roster"},
        {"name": "Rooms", "description": "Room inventory"},
        {"name": "Subjects", "description": "Subject catalog"},
        {"name": "Breaks", "description": "Break slots (always served from the local store)"},
        {"name": "Practicals", "description": "Practical sessions (always served from the local store)"},
        {"name": "Leave Requests", "description": "Faculty leave workflow"},
        {"name": "Timetable", "description": "Published timetable and generation"},
        {"name": "Auth", "description": "Login sessions and access tokens"},
        {"name": "Statistics", "description": "Dashboard overview numbers"}
    ],
    "paths": {
        "/faculty": {
            "get": {
                "tags": ["Faculty"],
                "summary": "List faculty",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Faculty"],
                "summary": "Add a faculty member",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FacultyInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/faculty/{id}": {
            "put": {
                "tags": ["Faculty"],
                "summary": "Update a faculty member",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FacultyInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["Faculty"],
                "summary": "Remove a faculty member",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/rooms": {
            "get": {
                "tags": ["Rooms"],
                "summary": "List rooms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Rooms"],
                "summary": "Add a room",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RoomInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/rooms/{id}": {
            "delete": {
                "tags": ["Rooms"],
                "summary": "Remove a room",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Subjects"],
                "summary": "Add a subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubjectInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/subjects/{id}": {
            "delete": {
                "tags": ["Subjects"],
                "summary": "Remove a subject",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/breaks": {
            "get": {
                "tags": ["Breaks"],
                "summary": "List break slots",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Breaks"],
                "summary": "Add a break slot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BreakInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/breaks/{id}": {
            "put": {
                "tags": ["Breaks"],
                "summary": "Update a break slot",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BreakInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["Breaks"],
                "summary": "Remove a break slot",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/practicals": {
            "get": {
                "tags": ["Practicals"],
                "summary": "List practical sessions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Practicals"],
                "summary": "Add a practical session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PracticalInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/practicals/{id}": {
            "put": {
                "tags": ["Practicals"],
                "summary": "Update a practical session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PracticalInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["Practicals"],
                "summary": "Remove a practical session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/leave-requests": {
            "get": {
                "tags": ["Leave Requests"],
                "summary": "List leave requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Leave Requests"],
                "summary": "File a leave request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LeaveRequestInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/leave-requests/{id}": {
            "put": {
                "tags": ["Leave Requests"],
                "summary": "Approve or reject a leave request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LeaveStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Fetch the published timetable",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/generate-timetable": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Generate timetable candidates",
                "description": "Remote only. An empty body requests generation with default constraints.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": false, "schema": {"$ref": "#/definitions/GenerateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "503": {"description": "Scheduling service unreachable", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/publish-timetable": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Publish a generated timetable",
                "description": "Remote only.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PublishRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Missing timetable ID", "schema": {"$ref": "#/definitions/Envelope"}},
                    "503": {"description": "Scheduling service unreachable", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/auto-reschedule": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Reschedule around an approved leave",
                "description": "Remote only.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RescheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Missing leave request ID", "schema": {"$ref": "#/definitions/Envelope"}},
                    "503": {"description": "Scheduling service unreachable", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in and receive an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Describe the signed-in user",
                "parameters": [
                    {"name": "Authorization", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign out",
                "parameters": [
                    {"name": "Authorization", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/statistics": {
            "get": {
                "tags": ["Statistics"],
                "summary": "Dashboard overview statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "Faculty": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "subject": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "FacultyInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "subject": {"type": "string"},
                "email": {"type": "string"}
            },
            "required": ["name"]
        },
        "Room": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "capacity": {"type": "integer"},
                "type": {"type": "string"}
            }
        },
        "RoomInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "capacity": {"type": "integer"},
                "type": {"type": "string"}
            },
            "required": ["name"]
        },
        "Subject": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "code": {"type": "string"},
                "credits": {"type": "integer"}
            }
        },
        "SubjectInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "code": {"type": "string"},
                "credits": {"type": "integer"}
            },
            "required": ["name"]
        },
        "Break": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "startTime": {"type": "string"},
                "duration": {"type": "integer"},
                "day": {"type": "string"}
            }
        },
        "BreakInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "startTime": {"type": "string"},
                "duration": {"type": "integer"},
                "day": {"type": "string"}
            },
            "required": ["name", "startTime", "duration"]
        },
        "Practical": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "subject": {"type": "string"},
                "faculty": {"type": "string"},
                "room": {"type": "string"},
                "duration": {"type": "integer"},
                "description": {"type": "string"}
            }
        },
        "PracticalInput": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "faculty": {"type": "string"},
                "room": {"type": "string"},
                "duration": {"type": "integer"},
                "description": {"type": "string"}
            },
            "required": ["subject", "faculty", "room", "duration"]
        },
        "LeaveRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "faculty_name": {"type": "string"},
                "date": {"type": "string"},
                "period": {"type": "string"},
                "reason": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved", "rejected"]},
                "created_at": {"type": "string"}
            }
        },
        "LeaveRequestInput": {
            "type": "object",
            "properties": {
                "faculty_name": {"type": "string"},
                "date": {"type": "string"},
                "period": {"type": "string"},
                "reason": {"type": "string"}
            },
            "required": ["faculty_name", "date"]
        },
        "LeaveStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["pending", "approved", "rejected"]}
            },
            "required": ["status"]
        },
        "Timetable": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "timetable": {"type": "object"},
                "score": {"type": "number"},
                "metrics": {"type": "object"},
                "created_at": {"type": "string"}
            }
        },
        "GenerateRequest": {
            "type": "object",
            "properties": {
                "constraints": {"type": "object"},
                "breaks": {"type": "array", "items": {"$ref": "#/definitions/Break"}},
                "practicals": {"type": "array", "items": {"$ref": "#/definitions/Practical"}}
            }
        },
        "PublishRequest": {
            "type": "object",
            "properties": {
                "timetable_id": {"type": "integer"}
            },
            "required": ["timetable_id"]
        },
        "RescheduleRequest": {
            "type": "object",
            "properties": {
                "leave_request_id": {"type": "integer"}
            },
            "required": ["leave_request_id"]
        },
        "Credentials": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "faculty", "student"]}
            },
            "required": ["username", "password", "role"]
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "role": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "LoginResult": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/User"},
                "access_token": {"type": "string"},
                "expires_in": {"type": "integer"}
            }
        },
        "Statistics": {
            "type": "object",
            "properties": {
                "faculty_count": {"type": "integer"},
                "room_count": {"type": "integer"},
                "subject_count": {"type": "integer"},
                "pending_leaves": {"type": "integer"},
                "timetable_published": {"type": "boolean"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {"type": "string"},
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
