package Models

// UsageRecord is one line item of an intake: a spare part consumed,
// with unit price, discount percentage and quantity. RealCost is the
// discounted total and is always recomputed server-side.
type UsageRecord struct {
	ID       uint    `json:"id_registro" gorm:"column:id_registro;primaryKey"`
	Price    float64 `json:"precio" gorm:"column:precio;not null"`
	Discount float64 `json:"descuento" gorm:"column:descuento;not null"`
	Quantity float64 `json:"cantidad" gorm:"column:cantidad;not null"`
	RealCost float64 `json:"costo_real" gorm:"column:costo_real;not null"`

	IntakeID    uint       `json:"id_ingreso" gorm:"column:id_ingreso;index"`
	Intake      *Intake    `json:"ingreso,omitempty" gorm:"foreignKey:IntakeID"`
	SparePartID uint       `json:"id_recambio" gorm:"column:id_recambio;index"`
	SparePart   *SparePart `json:"recambio,omitempty" gorm:"foreignKey:SparePartID"`
}

func (UsageRecord) TableName() string {
	return "registros"
}
