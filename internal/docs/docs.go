// Package docs holds the Swagger 2.0 template served under /swagger.
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
        "/insights": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Ask the model for a short Portuguese summary of the month with saving tips. Fixed messages are returned when there is no data or the model call fails. When no model key is configured the route answers 503 NOT_CONFIGURED instead.",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Spending insights",
                "parameters": [
                    {"type": "string", "description": "Month (YYYY-MM)", "name": "month", "in": "query", "required": true},
                    {"type": "string", "description": "Family member, or Todos (default)", "name": "member", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.InsightResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Insights not configured", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/reference": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["reference"],
                "summary": "Form reference data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ReferenceResponse"}}
                }
            }
        },
        "/reports/budget": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Fixed and variable expenses",
                "parameters": [
                    {"type": "string", "description": "Month (YYYY-MM)", "name": "month", "in": "query", "required": true},
                    {"type": "string", "description": "Family member, or Todos (default)", "name": "member", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/finance.BudgetSplit"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/reports/monthly": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Totals, expense breakdown by category and member, daily flow, and the fixed/variable split for one month",
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Monthly report",
                "parameters": [
                    {"type": "string", "description": "Month (YYYY-MM)", "name": "month", "in": "query", "required": true},
                    {"type": "string", "description": "Family member, or Todos (default)", "name": "member", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/finance.Stats"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Get a paginated list of transactions, newest first, with optional filters",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 50, max 200)", "name": "page_size", "in": "query"},
                    {"type": "string", "description": "Month (YYYY-MM)", "name": "month", "in": "query"},
                    {"type": "string", "description": "Family member, or Todos", "name": "member", "in": "query"},
                    {"type": "string", "description": "income or expense", "name": "type", "in": "query"},
                    {"type": "string", "description": "Category name", "name": "category", "in": "query"},
                    {"type": "boolean", "description": "Only fixed (true) or variable (false) entries", "name": "is_fixed", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Paginated transactions", "schema": {"$ref": "#/definitions/pagination.PageResponse-models_Transaction"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Record an income or expense. With installments >= 2 an expense is split into monthly installments that are all saved together.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "parameters": [
                    {"description": "Transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Transaction created", "schema": {"$ref": "#/definitions/handlers.TransactionResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Get a transaction",
                "parameters": [
                    {"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TransactionResponse"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Transaction not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Replace every field of a transaction. Fields left out are reset to their defaults.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Update a transaction",
                "parameters": [
                    {"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true},
                    {"description": "New transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TransactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TransactionResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Transaction not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Permanently remove a transaction. The audit log keeps what was deleted.",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Delete a transaction",
                "parameters": [
                    {"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Transaction deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Transaction not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "finance.BudgetSplit": {
            "type": "object",
            "properties": {
                "fixed": {"type": "number"},
                "variable": {"type": "number"},
                "fixedPercent": {"type": "number"},
                "variablePercent": {"type": "number"},
                "fixedExpenses": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}},
                "variableExpenses": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}
            }
        },
        "finance.CategoryTotal": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "total": {"type": "number"}
            }
        },
        "finance.DailyTotal": {
            "type": "object",
            "properties": {
                "day": {"type": "integer"},
                "income": {"type": "number"},
                "expense": {"type": "number"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}
            }
        },
        "finance.MemberTotal": {
            "type": "object",
            "properties": {
                "member": {"type": "string"},
                "total": {"type": "number"}
            }
        },
        "finance.Stats": {
            "type": "object",
            "properties": {
                "totalIncome": {"type": "number"},
                "totalExpense": {"type": "number"},
                "balance": {"type": "number"},
                "byCategory": {"type": "array", "items": {"$ref": "#/definitions/finance.CategoryTotal"}},
                "byMember": {"type": "array", "items": {"$ref": "#/definitions/finance.MemberTotal"}},
                "daily": {"type": "array", "items": {"$ref": "#/definitions/finance.DailyTotal"}},
                "budget": {"$ref": "#/definitions/finance.BudgetSplit"}
            }
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["category", "date", "description", "type"],
            "properties": {
                "amount": {"type": "number", "example": 152.3},
                "category": {"type": "string", "example": "Alimentação"},
                "date": {"type": "string", "example": "2024-03-05"},
                "description": {"type": "string", "maxLength": 500, "example": "Mercado"},
                "installments": {"type": "integer", "maximum": 120, "minimum": 2, "example": 3},
                "isFixed": {"type": "boolean"},
                "type": {"type": "string", "example": "expense"},
                "user": {"type": "string", "example": "Casa"}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.InsightResponse": {
            "type": "object",
            "properties": {
                "insight": {"type": "string"},
                "month": {"type": "string", "example": "março de 2024"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handlers.ReferenceResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "members": {"type": "array", "items": {"type": "string"}},
                "types": {"type": "array", "items": {"$ref": "#/definitions/handlers.TypeOption"}}
            }
        },
        "handlers.TransactionRequest": {
            "type": "object",
            "required": ["category", "date", "description", "type"],
            "properties": {
                "amount": {"type": "number", "example": 152.3},
                "category": {"type": "string", "example": "Alimentação"},
                "date": {"type": "string", "example": "2024-03-05"},
                "description": {"type": "string", "maxLength": 500, "example": "Mercado"},
                "isFixed": {"type": "boolean"},
                "type": {"type": "string", "example": "expense"},
                "user": {"type": "string", "example": "Casa"}
            }
        },
        "handlers.TransactionResponse": {
            "type": "object",
            "properties": {
                "transaction": {"$ref": "#/definitions/models.Transaction"}
            }
        },
        "handlers.TypeOption": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "description": {"type": "string"},
                "amount": {"type": "number"},
                "type": {"type": "string"},
                "category": {"type": "string"},
                "date": {"type": "string"},
                "isFixed": {"type": "boolean"},
                "user": {"type": "string"}
            }
        },
        "pagination.PageResponse-models_Transaction": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}},
                "has_next": {"type": "boolean"},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Shared family key.",
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Família API",
	Description:      "Household ledger for the family: incomes, expenses, installments, monthly reports and AI spending insights.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
