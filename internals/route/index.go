// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	deletionRoute "schoolku_backend/internals/features/school/deletions/route"
	"schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("eliminação de registos"), constants.OwnerAndAdmin...),
		middlewares.DeletionRateLimiter(),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Deletion routes...")
	deletionRoute.DeletionAdminRoutes(admin, db, configs.Deletion)
}
