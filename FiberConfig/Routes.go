package FiberConfig

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Taller/Controllers"
	"Taller/Models"
	"Taller/middleware"
)

// SetupRoutes registers the workshop API. The resource names mirror
// the screens of the desktop app: clientes, vehiculos, recambios,
// ingresos, registros.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	clientController := Controllers.NewClientController(db)
	vehicleController := Controllers.NewVehicleController(db)
	sparePartController := Controllers.NewSparePartController(db)
	intakeController := Controllers.NewIntakeController(db)
	usageRecordController := Controllers.NewUsageRecordController(db)
	reportController := Controllers.NewReportController(db)

	api := app.Group("/api")

	// Client routes
	clientes := api.Group("/clientes")
	clientes.Get("/", clientController.GetClients)
	clientes.Post("/", clientController.CreateClient)
	clientes.Get("/:id", clientController.GetClient)
	clientes.Put("/:id", clientController.UpdateClient)
	clientes.Delete("/:id", clientController.DeleteClient)
	clientes.Get("/:id/vehiculos", clientController.GetClientVehicles)

	// Vehicle routes
	vehiculos := api.Group("/vehiculos")
	vehiculos.Get("/", vehicleController.GetVehicles)
	vehiculos.Post("/", vehicleController.CreateVehicle)
	vehiculos.Get("/:id", vehicleController.GetVehicle)
	vehiculos.Put("/:id", vehicleController.UpdateVehicle)
	vehiculos.Delete("/:id", vehicleController.DeleteVehicle)

	// Spare-part routes; catalog helpers go BEFORE the ID route to
	// avoid conflicts
	recambios := api.Group("/recambios")
	recambios.Get("/", sparePartController.GetSpareParts)
	recambios.Get("/categorias", sparePartController.GetCategories)
	recambios.Get("/categorias/:categoria/subcategorias", sparePartController.GetSubcategories)
	recambios.Post("/", sparePartController.CreateSparePart)
	recambios.Get("/:id", sparePartController.GetSparePart)
	recambios.Put("/:id", sparePartController.UpdateSparePart)
	recambios.Delete("/:id", sparePartController.DeleteSparePart)

	// Intake routes
	ingresos := api.Group("/ingresos")
	ingresos.Get("/", intakeController.GetIntakes)
	ingresos.Get("/current", intakeController.GetCurrentIntake)
	ingresos.Post("/", intakeController.CreateIntake)
	ingresos.Get("/:id", intakeController.GetIntake)
	ingresos.Put("/:id", intakeController.UpdateIntake)
	ingresos.Delete("/:id", intakeController.DeleteIntake)
	ingresos.Get("/:id/registros", usageRecordController.GetIntakeUsageRecords)
	ingresos.Get("/:id/report", reportController.GetIntakeReport)

	// Usage-record routes
	registros := api.Group("/registros")
	registros.Post("/", usageRecordController.CreateUsageRecord)
	registros.Get("/:id", usageRecordController.GetUsageRecord)
	registros.Put("/:id", usageRecordController.UpdateUsageRecord)
	registros.Delete("/:id", usageRecordController.DeleteUsageRecord)

	// Error log viewer
	api.Get("/logs/errores", Controllers.GetErrorLog)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

// FiberConfig builds the app and serves it.
func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
		MaxAge:       300,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{})
	})

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
