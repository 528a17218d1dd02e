package Models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Taller/Catalog"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named in-memory database so every pooled connection sees the
	// same store.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedClient(t *testing.T, db *gorm.DB) *Client {
	t.Helper()
	client, err := CreateClient(db, ClientInput{
		Name:    "Ana Pérez",
		Phone:   "600111222",
		Address: "Calle Mayor 1",
		Email:   "ana@example.com",
	})
	require.NoError(t, err)
	return client
}

func seedVehicle(t *testing.T, db *gorm.DB, clientID uint) *Vehicle {
	t.Helper()
	vehicle, err := CreateVehicle(db, clientID, VehicleInput{
		Brand:    "Toyota",
		Model:    "Corolla",
		Plate:    "1234ABC",
		Odometer: "50000",
	})
	require.NoError(t, err)
	return vehicle
}

func seedSparePart(t *testing.T, db *gorm.DB) *SparePart {
	t.Helper()
	part, err := CreateSparePart(db, Catalog.DefaultMenu(), SparePartInput{
		Name:        "Filtro de aceite",
		Description: "Filtro estándar",
		Category:    "Filtros",
		Subcategory: "Filtro de aceite",
	})
	require.NoError(t, err)
	return part
}

func seedIntake(t *testing.T, db *gorm.DB, clientID, vehicleID uint) *Intake {
	t.Helper()
	intake, err := CreateIntake(db, clientID, vehicleID, IntakeInput{
		Odometer:  50200,
		Fault:     "ruido al frenar",
		Diagnosis: "pastillas desgastadas",
	})
	require.NoError(t, err)
	return intake
}
