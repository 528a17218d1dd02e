package Models

import (
	"time"
)

// SparePart is a catalog item classified by category/subcategory. Both
// classifications are required on new parts; rows migrated from before
// the catalog existed may carry an empty subcategory, and searches
// treat those as matching any subcategory filter.
type SparePart struct {
	ID          uint      `json:"id_recambio" gorm:"column:id_recambio;primaryKey"`
	CreatedAt   time.Time `json:"fecha_alta" gorm:"column:fecha_alta"`
	Name        string    `json:"nombre_recambio" gorm:"column:nombre_recambio;not null"`
	Description string    `json:"descripcion" gorm:"column:descripcion;not null"`
	Category    string    `json:"categoria" gorm:"column:categoria;not null"`
	Subcategory string    `json:"subcategoria" gorm:"column:subcategoria"`

	UsageRecords []UsageRecord `json:"registros,omitempty" gorm:"foreignKey:SparePartID"`
}

func (SparePart) TableName() string {
	return "recambios"
}
