package Models

import (
	"time"
)

// Client is a workshop customer. Names, emails and phones carry no
// uniqueness constraint: the workshop identifies people by id and
// searches by substring, duplicates are allowed.
type Client struct {
	ID        uint      `json:"id_cliente" gorm:"column:id_cliente;primaryKey"`
	CreatedAt time.Time `json:"fecha_alta" gorm:"column:fecha_alta"`
	Name      string    `json:"nombre" gorm:"column:nombre;not null"`
	Phone     string    `json:"telefono" gorm:"column:telefono;not null"`
	Address   string    `json:"direccion" gorm:"column:direccion;not null"`
	Email     string    `json:"correo" gorm:"column:correo;not null"`

	Vehicles []Vehicle `json:"vehiculos,omitempty" gorm:"foreignKey:ClientID"`
	Intakes  []Intake  `json:"ingresos,omitempty" gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string {
	return "clientes"
}
