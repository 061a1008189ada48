package demoserver

//go:generate swag init -g swagger.go -d . -o ../../docs/swagger

// @title Scrape Demo API
// @version 0.1
// @description Canned responses for the scraping UI when the full runtime is not installed.
// @contact.name Scrape Demo Maintainers
// @BasePath /
