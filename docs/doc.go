// Package docs provides generated OpenAPI documentation.
//
// Boampwatch API
//
//	@title			Boampwatch API
//	@version		1.0
//	@description	BOAMP public procurement monitoring API for extracting, filtering and mining construction notices.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/jfmartel/boampwatch
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/boampwatch/serve.go -o ./swagger --parseDependency --parseInternal
