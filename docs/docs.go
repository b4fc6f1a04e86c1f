// Package docs holds the OpenAPI document served at /swagger. It is
// maintained by hand alongside the controller annotations.
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
                "description": "Check if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/oauth/token": {
            "post": {
                "description": "Obtain a back-office access token with the client credentials grant",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["OAuth2"],
                "summary": "Token Endpoint",
                "parameters": [
                    {"type": "string", "description": "Grant type, must be client_credentials", "name": "grant_type", "in": "formData", "required": true},
                    {"type": "string", "description": "Client ID", "name": "client_id", "in": "formData", "required": true},
                    {"type": "string", "description": "Client Secret", "name": "client_secret", "in": "formData", "required": true},
                    {"type": "string", "description": "Requested scope, defaults to the client's scopes", "name": "scope", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.OAuth2Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.OAuth2Error"}}
                }
            }
        },
        "/api/v1/public/sizes": {
            "get": {
                "description": "Get every pizza size, cheapest first",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List sizes",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Size"}}}}
            }
        },
        "/api/v1/public/toppings": {
            "get": {
                "description": "Get every topping ordered by name",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List toppings",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Topping"}}}}
            }
        },
        "/api/v1/public/orders": {
            "post": {
                "description": "Open a new order for a customer, optionally with its pizzas",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create an order",
                "parameters": [{"description": "Customer and pizzas", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateOrderRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIError"}}
                }
            }
        },
        "/api/v1/public/orders/{id}": {
            "get": {
                "description": "Get an order with its pizzas, full name and current total",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order",
                "parameters": [{"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.OrderResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIError"}}
                }
            }
        },
        "/api/v1/public/orders/{id}/total": {
            "get": {
                "description": "Recompute the order total from its current pizzas",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order total",
                "parameters": [{"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.OrderTotalResponse"}}}
            }
        },
        "/api/v1/public/orders/{id}/pizzas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List the pizzas of an order",
                "parameters": [{"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/controllers.PizzaResponse"}}}}
            },
            "post": {
                "description": "Add a pizza of the given size with topping amounts to the order",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Add a pizza",
                "parameters": [
                    {"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true},
                    {"description": "Pizza", "name": "pizza", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.PizzaRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.PizzaResponse"}}}
            }
        },
        "/api/v1/public/orders/{id}/pizzas/{pizzaId}/toppings/{toppingId}": {
            "get": {
                "description": "How many units of a topping a pizza carries, 0 when it has none",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get a topping amount",
                "parameters": [
                    {"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Pizza ID", "name": "pizzaId", "in": "path", "required": true},
                    {"type": "integer", "description": "Topping ID", "name": "toppingId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ToppingAmountResponse"}}}
            },
            "put": {
                "description": "Insert or update how many units of a topping a pizza carries. 0 removes it from the total.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Set a topping amount",
                "parameters": [
                    {"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Pizza ID", "name": "pizzaId", "in": "path", "required": true},
                    {"type": "integer", "description": "Topping ID", "name": "toppingId", "in": "path", "required": true},
                    {"description": "Amount", "name": "amount", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ToppingAmountRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaResponse"}}}
            }
        },
        "/api/v1/public/orders/{id}/checkout": {
            "post": {
                "description": "Record the current order total as the order's sale. An order can only be checked out once.",
                "produces": ["application/json"],
                "tags": ["sales"],
                "summary": "Check out an order",
                "parameters": [{"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.SaleResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.APIError"}}
                }
            }
        },
        "/api/v1/public/orders/{id}/sale": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sales"],
                "summary": "Get the sale of an order",
                "parameters": [{"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SaleResponse"}}}
            }
        },
        "/api/v1/public/orders/{id}/sale/receipt.png": {
            "get": {
                "description": "QR code PNG linking to the recorded sale",
                "produces": ["image/png"],
                "tags": ["sales"],
                "summary": "Get the sale receipt",
                "parameters": [{"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/api/v1/protected/orders/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Delete an order together with its pizzas, topping amounts and sale",
                "tags": ["orders"],
                "summary": "Delete an order",
                "parameters": [{"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Order deleted"}}
            }
        },
        "/api/v1/protected/sales": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Every recorded sale, newest first",
                "produces": ["application/json"],
                "tags": ["sales"],
                "summary": "List sales",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/controllers.SaleResponse"}}}}
            }
        },
        "/api/v1/protected/bootstrap": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Insert the default sizes and toppings that are missing. Safe to call repeatedly.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Seed reference data",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/services.SeedReport"}}}
            }
        },
        "/api/v1/protected/clients": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get all OAuth2 clients owned by the authenticated staff member",
                "produces": ["application/json"],
                "tags": ["OAuth2 Clients"],
                "summary": "List OAuth2 clients",
                "responses": {"200": {"description": "List of clients", "schema": {"type": "array", "items": {"type": "object"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Register a back-office client for the authenticated staff member",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["OAuth2 Clients"],
                "summary": "Create OAuth2 client",
                "parameters": [{"description": "Client details", "name": "client", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateClientRequest"}}],
                "responses": {"201": {"description": "Client created with client_id and client_secret", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/api/v1/protected/clients/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Delete an OAuth2 client owned by the authenticated staff member",
                "tags": ["OAuth2 Clients"],
                "summary": "Delete OAuth2 client",
                "parameters": [{"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Client deleted successfully"}}
            }
        }
    },
    "definitions": {
        "auth.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "expires_in": {"type": "integer"},
                "scope": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "controllers.CreateClientRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "scopes": {"type": "string"}}
        },
        "controllers.CreateOrderRequest": {
            "type": "object",
            "required": ["first_name", "last_name"],
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "pizzas": {"type": "array", "items": {"$ref": "#/definitions/services.PizzaRequest"}}
            }
        },
        "controllers.OrderResponse": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "full_name": {"type": "string"},
                "id": {"type": "integer"},
                "last_name": {"type": "string"},
                "order_date": {"type": "string"},
                "pizzas": {"type": "array", "items": {"$ref": "#/definitions/controllers.PizzaResponse"}},
                "sale": {"$ref": "#/definitions/controllers.SaleResponse"},
                "total": {"type": "string"}
            }
        },
        "controllers.OrderTotalResponse": {
            "type": "object",
            "properties": {"order_id": {"type": "integer"}, "total": {"type": "string"}}
        },
        "controllers.PizzaResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "order_id": {"type": "integer"},
                "size": {"$ref": "#/definitions/models.Size"},
                "toppings": {"type": "array", "items": {"$ref": "#/definitions/controllers.ToppingLine"}},
                "total": {"type": "string"}
            }
        },
        "controllers.SaleResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "order_id": {"type": "integer"},
                "total": {"type": "string"}
            }
        },
        "controllers.ToppingAmountRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {"amount": {"type": "integer"}}
        },
        "controllers.ToppingAmountResponse": {
            "type": "object",
            "properties": {"amount": {"type": "integer"}, "pizza_id": {"type": "integer"}, "topping_id": {"type": "integer"}}
        },
        "controllers.ToppingLine": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "topping_id": {"type": "integer"}
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "models.OAuth2Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"},
                "error_uri": {"type": "string"}
            }
        },
        "models.Size": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "integer"}}
        },
        "models.Topping": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "string"}}
        },
        "services.PizzaRequest": {
            "type": "object",
            "required": ["size_id"],
            "properties": {
                "size_id": {"type": "integer"},
                "toppings": {"type": "array", "items": {"$ref": "#/definitions/services.ToppingRequest"}}
            }
        },
        "services.SeedReport": {
            "type": "object",
            "properties": {
                "already_seeded": {"type": "boolean"},
                "sizes_created": {"type": "integer"},
                "toppings_created": {"type": "integer"}
            }
        },
        "services.ToppingRequest": {
            "type": "object",
            "required": ["topping_id"],
            "properties": {"amount": {"type": "integer"}, "topping_id": {"type": "integer"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pizza Orders API",
	Description:      "Orders, pizzas with topping amounts and checkout sales for a pizza shop",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
