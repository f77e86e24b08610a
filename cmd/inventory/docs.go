package main

// @title Stockwatch API
// @version 1.0
// @description Stock status and reorder prediction service. Every item is evaluated against
// @description today's recipe plan and its supplier lead time.
// @termsOfService http://swagger.io/terms/

// @license.name MIT

// @host localhost:3000
// @BasePath /

// @tag.name Items
// @tag.description Inventory items, evaluations and reorder links

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
