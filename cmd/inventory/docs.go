package main

// @title Inventory Tracker API
// @version 1.0
// @description Product catalogue, stock levels, categories, audit trail and inventory reporting.
// @description Stock status is always derived from quantity and reorder level.

// @contact.name API Support
// @contact.url http://github.com/tair/inventory-tracker

// @license.name MIT
// @license.url https://github.com/tair/inventory-tracker/blob/main/LICENSE

// @host localhost:8082
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Optional. "Bearer" followed by a space and a JWT; the username is recorded on audit entries.

// @tag.name Products
// @tag.description Product catalogue and stock levels

// @tag.name Categories
// @tag.description Product categories

// @tag.name ActivityLogs
// @tag.description Read-only audit trail of every change

// @tag.name Reports
// @tag.description Inventory valuation report and exports

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
