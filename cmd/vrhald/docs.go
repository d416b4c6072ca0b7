package main

// General API documentation for swaggo. Run `swag init` with -tags=swagger to generate docs.
//
// @title           vrhald API
// @version         1.0
// @description     Diagnostics API for the VR hardware abstraction daemon.
//
// @contact.name   vrhald maintainers
// @contact.url    https://github.com/your-org/vrhal
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
