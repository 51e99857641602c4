package main

// @title Instagram Spots API
// @version 1.0
// @description Discovers photogenic places around a point using layered keyword searches
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /
