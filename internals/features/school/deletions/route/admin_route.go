// internals/features/school/deletions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	deletionController "schoolku_backend/internals/features/school/deletions/controller"
	"schoolku_backend/internals/features/school/deletions/registry"
	"schoolku_backend/internals/features/school/deletions/repository"
	"schoolku_backend/internals/features/school/deletions/service"
)

// AdminEntities: slug URL → root entity.
var AdminEntities = []struct {
	Slug   string
	Entity registry.EntityType
}{
	{"classes", registry.Class},
	{"courses", registry.Course},
	{"sections", registry.Section},
	{"subjects", registry.Subject},
	{"legacy-users", registry.LegacyUser},
	{"academic-years", registry.AcademicYear},
	{"rooms", registry.Room},
	{"periods", registry.Period},
	{"currencies", registry.Currency},
	{"service-categories", registry.ServiceCategory},
	{"payment-methods", registry.PaymentMethod},
	{"specialties", registry.Specialty},
}

// NewEngine: registry sekolah + GORM store sesuai DeletionConfig.
func NewEngine(db *gorm.DB, cfg configs.DeletionConfig) *service.Engine {
	reg := registry.MustNewRegistry(registry.SchoolGraph())
	store := repository.NewGormStore(db, cfg.BatchSize)
	return service.NewEngine(reg, store, service.Options{Budget: cfg.TxTimeout})
}

/*
Admin routes: hapus + preview
Mount contoh: DeletionAdminRoutes(app.Group("/api/a"), db, configs.Deletion)
*/
func DeletionAdminRoutes(admin fiber.Router, db *gorm.DB, cfg configs.DeletionConfig) {
	ctl := deletionController.NewDeletionController(NewEngine(db, cfg))

	for _, e := range AdminEntities {
		g := admin.Group("/" + e.Slug)
		g.Delete("/:id", ctl.Delete(e.Entity))              // DELETE /api/a/<slug>/:id
		g.Get("/:id/delete-preview", ctl.Preview(e.Entity)) // GET    /api/a/<slug>/:id/delete-preview
	}
}
