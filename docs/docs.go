// Package docs holds the swagger document served at /v1/api-docs.
// It is maintained by hand in swag's template layout; keep it in step with the @Router annotations in controllers.
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
		"/users/register": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Register a user",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "new user",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.registerRequest"
						}
					}
				]
			}
		},
		"/users/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Log in",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.loginRequest"
						}
					}
				]
			}
		},
		"/users/logout": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Revoke the bearer token",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/me": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Current user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "List users",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "page, 1-indexed",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size, max 100",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "substring filter",
						"name": "find",
						"in": "query"
					},
					{
						"type": "string",
						"description": "z-a for descending",
						"name": "order",
						"in": "query"
					}
				]
			}
		},
		"/users/articles": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "List articles",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "author id",
						"name": "userId",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page, 1-indexed",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size, max 100",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "substring filter",
						"name": "find",
						"in": "query"
					},
					{
						"type": "string",
						"description": "z-a for descending",
						"name": "order",
						"in": "query"
					}
				]
			}
		},
		"/users/{userId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Get a user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Update a user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"description": "fields to change",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.updateUserRequest"
						}
					}
				]
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Delete a user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/{userId}/followers": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"followers"
				],
				"summary": "Follow a user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"description": "follower",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.followRequest"
						}
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"followers"
				],
				"summary": "List followers",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "page, 1-indexed",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size, max 100",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "substring filter",
						"name": "find",
						"in": "query"
					},
					{
						"type": "string",
						"description": "z-a for descending",
						"name": "order",
						"in": "query"
					}
				]
			}
		},
		"/users/{userId}/following": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"followers"
				],
				"summary": "List followed users",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "page, 1-indexed",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size, max 100",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "substring filter",
						"name": "find",
						"in": "query"
					},
					{
						"type": "string",
						"description": "z-a for descending",
						"name": "order",
						"in": "query"
					}
				]
			}
		},
		"/users/{userId}/followers/{followerId}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"followers"
				],
				"summary": "Unfollow",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "follower id",
						"name": "followerId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/{userId}/articles": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "Create an article",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"description": "article",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.createArticleRequest"
						}
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "List a user's articles",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "page, 1-indexed",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size, max 100",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "substring filter",
						"name": "find",
						"in": "query"
					},
					{
						"type": "string",
						"description": "z-a for descending",
						"name": "order",
						"in": "query"
					}
				]
			}
		},
		"/users/{userId}/articles/{articleId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "Get an article",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "article id",
						"name": "articleId",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "Update an article",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "article id",
						"name": "articleId",
						"in": "path",
						"required": true
					},
					{
						"description": "fields to change",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.updateArticleRequest"
						}
					}
				]
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "Delete an article",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "article id",
						"name": "articleId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/{userId}/favorites": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "List liked articles",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "page, 1-indexed",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size, max 100",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "substring filter",
						"name": "find",
						"in": "query"
					},
					{
						"type": "string",
						"description": "z-a for descending",
						"name": "order",
						"in": "query"
					}
				]
			}
		},
		"/users/{userId}/articles/{articleId}/like": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"likes"
				],
				"summary": "Like an article",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "article id",
						"name": "articleId",
						"in": "path",
						"required": true
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"likes"
				],
				"summary": "Check like",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "article id",
						"name": "articleId",
						"in": "path",
						"required": true
					}
				]
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"likes"
				],
				"summary": "Unlike an article",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "user id",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "article id",
						"name": "articleId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/stats": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"stats"
				],
				"summary": "Global counts",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				}
			}
		},
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Liveness",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.JSONResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"utils.JSONResponse": {
			"type": "object",
			"properties": {
				"statusCode": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				},
				"data": {},
				"count": {
					"type": "integer"
				},
				"errorCode": {
					"type": "string"
				}
			}
		},
		"controllers.registerRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"biography": {
					"type": "string",
					"x-nullable": true
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"controllers.loginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"controllers.updateUserRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"biography": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"controllers.followRequest": {
			"type": "object",
			"properties": {
				"followerId": {
					"type": "string"
				}
			},
			"required": [
				"followerId"
			]
		},
		"controllers.createArticleRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"image": {
					"type": "string",
					"x-nullable": true
				}
			},
			"required": [
				"title",
				"content"
			]
		},
		"controllers.updateArticleRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"image": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Inkpost API",
	Description:      "Users, articles, likes and followers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
