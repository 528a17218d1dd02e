package Models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Taller/Catalog"
)

func TestCreateClient(t *testing.T) {
	db := newTestDB(t)

	client, err := CreateClient(db, ClientInput{
		Name:    "  Ana Pérez  ",
		Phone:   "600111222",
		Address: "Calle Mayor 1",
		Email:   "ana@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, client.ID)
	assert.Equal(t, "Ana Pérez", client.Name, "fields are trimmed before storage")
	assert.False(t, client.CreatedAt.IsZero())

	found, err := SearchClientsByName(db, "ana")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, client.ID, found[0].ID)
}

func TestCreateClientValidation(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateClient(db, ClientInput{
		Name:    "   ",
		Phone:   "600111222",
		Address: "Calle Mayor 1",
		Email:   "ana@example.com",
	})
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	db.Model(&Client{}).Count(&count)
	assert.Zero(t, count, "no row created on validation failure")
}

func TestCreateClientAllowsDuplicates(t *testing.T) {
	db := newTestDB(t)
	seedClient(t, db)
	seedClient(t, db)

	found, err := SearchClientsByName(db, "Ana")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestUpdateAndDeleteClient(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db)

	updated, err := UpdateClient(db, client.ID, ClientInput{
		Name:    "Ana García",
		Phone:   "600999888",
		Address: "Calle Menor 2",
		Email:   "ana.garcia@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana García", updated.Name)

	var reread Client
	require.NoError(t, db.First(&reread, client.ID).Error)
	assert.Equal(t, "Ana García", reread.Name)

	require.NoError(t, DeleteClient(db, client.ID))
	err = db.First(&reread, client.ID).Error
	assert.Error(t, err)

	err = DeleteClient(db, client.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateVehicleEstablishesOwnership(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db)
	vehicle := seedVehicle(t, db, client.ID)

	assert.Equal(t, client.ID, vehicle.ClientID, "append sets the foreign key")

	var owner Client
	require.NoError(t, db.Preload("Vehicles").First(&owner, client.ID).Error)
	require.Len(t, owner.Vehicles, 1)
	assert.Equal(t, vehicle.ID, owner.Vehicles[0].ID)
}

func TestCreateVehicleUnknownClient(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateVehicle(db, 999, VehicleInput{
		Brand:    "Ford",
		Model:    "Focus",
		Plate:    "999ZZZ",
		Odometer: "100",
	})
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	db.Model(&Vehicle{}).Count(&count)
	assert.Zero(t, count, "no vehicle row created on lookup failure")
}

func TestCreateVehicleAllowsDuplicatePlates(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db)
	seedVehicle(t, db, client.ID)
	seedVehicle(t, db, client.ID)

	found, err := SearchVehiclesByPlate(db, "1234abc")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestCreateSparePartRejectsUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	menu := Catalog.DefaultMenu()

	_, err := CreateSparePart(db, menu, SparePartInput{
		Name:        "Filtro de aceite",
		Description: "Filtro estándar",
		Category:    "No existe",
		Subcategory: "Tampoco",
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = CreateSparePart(db, menu, SparePartInput{
		Name:        "Filtro de aceite",
		Description: "Filtro estándar",
		Category:    "Filtros",
		Subcategory: "Filtro de palomitas",
	})
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	db.Model(&SparePart{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateSparePartUncuratedCategoryAcceptsAnySubcategory(t *testing.T) {
	db := newTestDB(t)

	part, err := CreateSparePart(db, Catalog.DefaultMenu(), SparePartInput{
		Name:        "Portaequipajes",
		Description: "Barras de techo",
		Category:    "Accesorios para coche",
		Subcategory: "Barras",
	})
	require.NoError(t, err)
	assert.NotZero(t, part.ID)
}

func TestCreateIntake(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db)
	vehicle := seedVehicle(t, db, client.ID)

	intake := seedIntake(t, db, client.ID, vehicle.ID)
	assert.Equal(t, client.ID, intake.ClientID)
	assert.Equal(t, vehicle.ID, intake.VehicleID)
	assert.False(t, intake.IntakeAt.IsZero())

	var owner Client
	require.NoError(t, db.Preload("Intakes").First(&owner, client.ID).Error)
	require.Len(t, owner.Intakes, 1)

	var car Vehicle
	require.NoError(t, db.Preload("Intakes").First(&car, vehicle.ID).Error)
	require.Len(t, car.Intakes, 1)

	current, ok := GetCurrentIntake()
	require.True(t, ok)
	assert.Equal(t, intake.ID, current.IntakeID)
	assert.Equal(t, "Ana Pérez", current.ClientName)
	assert.Equal(t, "Toyota, Corolla", current.VehicleLabel)
	assert.Equal(t, "1234ABC", current.Plate)
}

func TestCreateIntakeVehicleOfOtherClient(t *testing.T) {
	db := newTestDB(t)
	owner := seedClient(t, db)
	vehicle := seedVehicle(t, db, owner.ID)

	other, err := CreateClient(db, ClientInput{
		Name:    "Luis Gómez",
		Phone:   "611222333",
		Address: "Avenida Sur 3",
		Email:   "luis@example.com",
	})
	require.NoError(t, err)

	_, err = CreateIntake(db, other.ID, vehicle.ID, IntakeInput{
		Odometer:  1000,
		Fault:     "no arranca",
		Diagnosis: "batería",
	})
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	db.Model(&Intake{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateUsageRecordComputesCost(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db)
	vehicle := seedVehicle(t, db, client.ID)
	intake := seedIntake(t, db, client.ID, vehicle.ID)
	part := seedSparePart(t, db)

	record, err := CreateUsageRecord(db, intake.ID, part.ID, UsageRecordInput{
		Price:    25.0,
		Discount: 10.0,
		Quantity: 2,
		RealCost: 45.0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 45.0, record.RealCost, 0.001)
	assert.Equal(t, intake.ID, record.IntakeID)
	assert.Equal(t, part.ID, record.SparePartID)

	var visit Intake
	require.NoError(t, db.Preload("UsageRecords").First(&visit, intake.ID).Error)
	require.Len(t, visit.UsageRecords, 1)

	var catalogPart SparePart
	require.NoError(t, db.Preload("UsageRecords").First(&catalogPart, part.ID).Error)
	require.Len(t, catalogPart.UsageRecords, 1)
}

func TestCreateUsageRecordCostFilledWhenOmitted(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db)
	vehicle := seedVehicle(t, db, client.ID)
	intake := seedIntake(t, db, client.ID, vehicle.ID)
	part := seedSparePart(t, db)

	record, err := CreateUsageRecord(db, intake.ID, part.ID, UsageRecordInput{
		Price:    10.0,
		Discount: 0,
		Quantity: 3,
	})
	require.NoError(t, err)
	assert.InDelta(t, 30.0, record.RealCost, 0.001)
}

func TestCreateUsageRecordRejectsCostMismatch(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db)
	vehicle := seedVehicle(t, db, client.ID)
	intake := seedIntake(t, db, client.ID, vehicle.ID)
	part := seedSparePart(t, db)

	_, err := CreateUsageRecord(db, intake.ID, part.ID, UsageRecordInput{
		Price:    25.0,
		Discount: 10.0,
		Quantity: 2,
		RealCost: 50.0, // ignores the discount
	})
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	db.Model(&UsageRecord{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateUsageRecordUnknownIntake(t *testing.T) {
	db := newTestDB(t)
	part := seedSparePart(t, db)

	_, err := CreateUsageRecord(db, 999, part.ID, UsageRecordInput{
		Price:    25.0,
		Quantity: 1,
	})
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	db.Model(&UsageRecord{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateUsageRecordResetsDiscount(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db)
	vehicle := seedVehicle(t, db, client.ID)
	intake := seedIntake(t, db, client.ID, vehicle.ID)
	part := seedSparePart(t, db)

	record, err := CreateUsageRecord(db, intake.ID, part.ID, UsageRecordInput{
		Price:    25.0,
		Discount: 10.0,
		Quantity: 2,
	})
	require.NoError(t, err)

	updated, err := UpdateUsageRecord(db, record.ID, UsageRecordInput{
		Price:    25.0,
		Discount: 0,
		Quantity: 2,
	})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, updated.RealCost, 0.001)

	var reread UsageRecord
	require.NoError(t, db.First(&reread, record.ID).Error)
	assert.Zero(t, reread.Discount)
	assert.InDelta(t, 50.0, reread.RealCost, 0.001)
}

func TestCreateClientPersistenceFailureLogged(t *testing.T) {
	db := newTestDB(t)
	logPath := filepath.Join(t.TempDir(), "errores.txt")
	t.Setenv("ERROR_LOG_PATH", logPath)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = CreateClient(db, ClientInput{
		Name:    "Ana Pérez",
		Phone:   "600111222",
		Address: "Calle Mayor 1",
		Email:   "ana@example.com",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)

	data, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "Método: CreateClient - Error general:")
}

func TestCreateIntakeMidTransactionFailureLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db)
	vehicle := seedVehicle(t, db, client.ID)

	logPath := filepath.Join(t.TempDir(), "errores.txt")
	t.Setenv("ERROR_LOG_PATH", logPath)

	// Let the intake row be inserted, then fail the next statement that
	// touches ingresos, midway through the transaction.
	var touched int
	failLate := func(tx *gorm.DB) {
		if tx.Statement.Table == "ingresos" {
			touched++
			if touched > 1 {
				_ = tx.AddError(errors.New("disco lleno"))
			}
		}
	}
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("taller:fail_late_create", failLate))
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("taller:fail_late_update", failLate))

	_, err := CreateIntake(db, client.ID, vehicle.ID, IntakeInput{
		Odometer:  50200,
		Fault:     "ruido al frenar",
		Diagnosis: "pastillas desgastadas",
	})
	require.Error(t, err)

	require.NoError(t, db.Callback().Create().Remove("taller:fail_late_create"))
	require.NoError(t, db.Callback().Update().Remove("taller:fail_late_update"))

	var count int64
	require.NoError(t, db.Model(&Intake{}).Count(&count).Error)
	assert.Zero(t, count, "failed intake must not leave a partial row")

	data, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "Método: CreateIntake - Error general:")
}
