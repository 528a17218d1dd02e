package Models

import (
	"time"
)

// Intake is one vehicle visit to the workshop: the odometer reading on
// arrival, what the customer reported and what the workshop diagnosed.
type Intake struct {
	ID        uint      `json:"id_ingreso" gorm:"column:id_ingreso;primaryKey"`
	IntakeAt  time.Time `json:"fecha_ingreso" gorm:"column:fecha_ingreso"`
	Odometer  int       `json:"kilometros_ingreso" gorm:"column:kilometros_ingreso;not null"`
	Fault     string    `json:"averia" gorm:"column:averia;not null"`
	Diagnosis string    `json:"diagnostico" gorm:"column:diagnostico;not null"`

	ClientID  uint     `json:"id_cliente" gorm:"column:id_cliente;index"`
	Client    *Client  `json:"cliente,omitempty" gorm:"foreignKey:ClientID"`
	VehicleID uint     `json:"id_vehiculo" gorm:"column:id_vehiculo;index"`
	Vehicle   *Vehicle `json:"vehiculo,omitempty" gorm:"foreignKey:VehicleID"`

	UsageRecords []UsageRecord `json:"registros,omitempty" gorm:"foreignKey:IntakeID"`
}

func (Intake) TableName() string {
	return "ingresos"
}
