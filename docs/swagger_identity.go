package docs

// @title           Identity Service API
// @version         1.0
// @description     Identity service handles account registration, admin and user login, token refresh, logout, and profile retrieval for the diabetes care platform. Provides JWT-based authentication with rotating refresh tokens.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
