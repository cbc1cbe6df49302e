package main

// General API documentation for swaggo. Build with -tags=swagger to serve /docs.
//
// @title           irisd API
// @version         1.0
// @description     HTTP prediction API for a pre-trained iris classifier.
//
// @contact.name   irisd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
