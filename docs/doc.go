// Package docs provides generated OpenAPI documentation.
//
// SpeakEasy API
//
//	@title			SpeakEasy API
//	@version		1.0
//	@description	Document simplification, translation, narration, and PDF form reconstruction API.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/speakeasy-app/speakeasy
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/speakeasy/serve.go -o ./swagger --parseDependency --parseInternal
