package Models

import (
	"time"
)

// Vehicle is a customer-owned car. Odometer is kept as free text, the
// way the workshop records it ("50000", "50.000 km"). Plates are not
// unique in the schema.
type Vehicle struct {
	ID        uint      `json:"id_vehiculo" gorm:"column:id_vehiculo;primaryKey"`
	CreatedAt time.Time `json:"fecha_alta" gorm:"column:fecha_alta"`
	Brand     string    `json:"marca" gorm:"column:marca;not null"`
	Model     string    `json:"modelo" gorm:"column:modelo;not null"`
	Plate     string    `json:"matricula" gorm:"column:matricula;not null"`
	Odometer  string    `json:"kilometros" gorm:"column:kilometros;not null"`

	ClientID uint    `json:"id_cliente" gorm:"column:id_cliente;index"`
	Client   *Client `json:"cliente,omitempty" gorm:"foreignKey:ClientID"`

	Intakes []Intake `json:"ingresos,omitempty" gorm:"foreignKey:VehicleID"`
}

func (Vehicle) TableName() string {
	return "vehiculos"
}

// Label is the "Marca, Modelo" display string the intake form shows in
// its vehicle dropdown.
func (v Vehicle) Label() string {
	return v.Brand + ", " + v.Model
}
