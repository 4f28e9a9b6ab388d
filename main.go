package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/innkeep/internal/app"
)

// @title           Innkeep API
// @version         1.0
// @description     Innkeep provides hotel operations APIs covering staff accounts, password recovery, guests, promotions, feedback, and blog content.
// @termsOfService  https://innkeep.com/terms
// @contact.name    Contact Support
// @contact.url     https://innkeep.com/contact
// @contact.email   support@innkeep.com
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
// @server          https://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
