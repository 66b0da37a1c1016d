package main

// General API documentation for swaggo. The JSON endpoints are described in
// internal/httpapi/swagger.go and served with -tags=swagger.
//
// @title           ruralai API
// @version         1.0
// @description     Offline question answering for farmers and rural communities.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
