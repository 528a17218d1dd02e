package Models

import (
	"strings"

	"gorm.io/gorm"
)

// pattern builds the LIKE argument for a case-insensitive substring
// search. An empty query becomes %% and matches every row.
func pattern(q string) string {
	return "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
}

// SearchClientsByName matches clients whose name contains q,
// case-insensitively. Result order is unspecified.
func SearchClientsByName(db *gorm.DB, q string) ([]Client, error) {
	var clients []Client
	err := db.Where("LOWER(nombre) LIKE ?", pattern(q)).Find(&clients).Error
	return clients, err
}

// SearchVehiclesByPlate matches vehicles whose plate contains q,
// case-insensitively, with the owning client preloaded for display.
func SearchVehiclesByPlate(db *gorm.DB, q string) ([]Vehicle, error) {
	var vehicles []Vehicle
	err := db.Preload("Client").
		Where("LOWER(matricula) LIKE ?", pattern(q)).
		Find(&vehicles).Error
	return vehicles, err
}

// SearchSpareParts filters the catalog by name and category substrings
// conjunctively. The subcategory filter is deliberately relaxed: a part
// with no subcategory (pre-catalog rows) matches any subcategory query.
func SearchSpareParts(db *gorm.DB, name, category, subcategory string) ([]SparePart, error) {
	var parts []SparePart
	err := db.
		Where("LOWER(nombre_recambio) LIKE ?", pattern(name)).
		Where("LOWER(categoria) LIKE ?", pattern(category)).
		Where("LOWER(subcategoria) LIKE ? OR subcategoria IS NULL OR subcategoria = ''", pattern(subcategory)).
		Find(&parts).Error
	return parts, err
}

// SearchIntakesByVehiclePlate joins intakes to their vehicle and
// filters on the plate substring, preloading vehicle and client.
func SearchIntakesByVehiclePlate(db *gorm.DB, q string) ([]Intake, error) {
	var intakes []Intake
	err := db.Preload("Client").Preload("Vehicle").
		Joins("JOIN vehiculos ON vehiculos.id_vehiculo = ingresos.id_vehiculo").
		Where("LOWER(vehiculos.matricula) LIKE ?", pattern(q)).
		Find(&intakes).Error
	return intakes, err
}

// VehiclesOfClient lists the vehicles owned by one client, the set the
// intake form offers in its vehicle dropdown.
func VehiclesOfClient(db *gorm.DB, clientID uint) ([]Vehicle, error) {
	var vehicles []Vehicle
	err := db.Where("id_cliente = ?", clientID).Find(&vehicles).Error
	return vehicles, err
}

// UsageRecordsOfIntake lists an intake's line items with parts
// preloaded.
func UsageRecordsOfIntake(db *gorm.DB, intakeID uint) ([]UsageRecord, error) {
	var records []UsageRecord
	err := db.Preload("SparePart").
		Where("id_ingreso = ?", intakeID).
		Find(&records).Error
	return records, err
}
