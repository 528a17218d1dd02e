package Models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"gorm.io/gorm"

	"Taller/Catalog"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}
}

// validateInput wraps validator failures as ErrValidation with the
// translated field messages joined into one line.
func validateInput(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fe.Translate(trans))
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// findByID fetches one row or maps gorm's not-found to ErrNotFound.
func findByID(db *gorm.DB, out interface{}, what string, id uint) error {
	if err := db.First(out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s %d", ErrNotFound, what, id)
		}
		return err
	}
	return nil
}

// ClientInput carries the new-client form fields. All required after
// trimming; no uniqueness is enforced on any of them.
type ClientInput struct {
	Name    string `json:"nombre" validate:"required"`
	Phone   string `json:"telefono" validate:"required"`
	Address string `json:"direccion" validate:"required"`
	Email   string `json:"correo" validate:"required"`
}

func (in *ClientInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Email = strings.TrimSpace(in.Email)
}

func CreateClient(db *gorm.DB, in ClientInput) (*Client, error) {
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	client := Client{Name: in.Name, Phone: in.Phone, Address: in.Address, Email: in.Email}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&client).Error
	})
	if err != nil {
		LogOperationError("CreateClient", err)
		return nil, err
	}
	return &client, nil
}

func UpdateClient(db *gorm.DB, id uint, in ClientInput) (*Client, error) {
	var client Client
	if err := findByID(db, &client, "cliente", id); err != nil {
		return nil, err
	}
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&client).Updates(Client{
			Name: in.Name, Phone: in.Phone, Address: in.Address, Email: in.Email,
		}).Error
	})
	if err != nil {
		LogOperationError("UpdateClient", err)
		return nil, err
	}
	return &client, nil
}

func DeleteClient(db *gorm.DB, id uint) error {
	var client Client
	if err := findByID(db, &client, "cliente", id); err != nil {
		return err
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&client).Error
	}); err != nil {
		LogOperationError("DeleteClient", err)
		return err
	}
	return nil
}

// VehicleInput carries the new-vehicle form fields. The odometer stays
// free text, matching how the workshop records it.
type VehicleInput struct {
	Brand    string `json:"marca" validate:"required"`
	Model    string `json:"modelo" validate:"required"`
	Plate    string `json:"matricula" validate:"required"`
	Odometer string `json:"kilometros" validate:"required"`
}

func (in *VehicleInput) normalize() {
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.Plate = strings.TrimSpace(in.Plate)
	in.Odometer = strings.TrimSpace(in.Odometer)
}

// CreateVehicle registers a vehicle under an existing client. The
// owner is addressed by id and the foreign key is established by
// appending to the client's vehicle collection.
func CreateVehicle(db *gorm.DB, clientID uint, in VehicleInput) (*Vehicle, error) {
	var client Client
	if err := findByID(db, &client, "cliente", clientID); err != nil {
		return nil, err
	}
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	vehicle := Vehicle{Brand: in.Brand, Model: in.Model, Plate: in.Plate, Odometer: in.Odometer}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&client).Association("Vehicles").Append(&vehicle)
	})
	if err != nil {
		LogOperationError("CreateVehicle", err)
		return nil, err
	}
	return &vehicle, nil
}

func UpdateVehicle(db *gorm.DB, id uint, in VehicleInput) (*Vehicle, error) {
	var vehicle Vehicle
	if err := findByID(db, &vehicle, "vehiculo", id); err != nil {
		return nil, err
	}
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&vehicle).Updates(Vehicle{
			Brand: in.Brand, Model: in.Model, Plate: in.Plate, Odometer: in.Odometer,
		}).Error
	})
	if err != nil {
		LogOperationError("UpdateVehicle", err)
		return nil, err
	}
	return &vehicle, nil
}

func DeleteVehicle(db *gorm.DB, id uint) error {
	var vehicle Vehicle
	if err := findByID(db, &vehicle, "vehiculo", id); err != nil {
		return err
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&vehicle).Error
	}); err != nil {
		LogOperationError("DeleteVehicle", err)
		return err
	}
	return nil
}

// SparePartInput carries the new-part form fields. Category and
// subcategory must be members of the catalog vocabulary; the data
// layer enforces this, not just the form dropdowns.
type SparePartInput struct {
	Name        string `json:"nombre_recambio" validate:"required"`
	Description string `json:"descripcion" validate:"required"`
	Category    string `json:"categoria" validate:"required"`
	Subcategory string `json:"subcategoria" validate:"required"`
}

func (in *SparePartInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Subcategory = strings.TrimSpace(in.Subcategory)
}

func (in SparePartInput) checkCatalog(menu Catalog.Menu) error {
	if !menu.HasCategory(in.Category) {
		return fmt.Errorf("%w: categoria %q fuera del catalogo", ErrValidation, in.Category)
	}
	if !menu.HasSubcategory(in.Category, in.Subcategory) {
		return fmt.Errorf("%w: subcategoria %q fuera de %q", ErrValidation, in.Subcategory, in.Category)
	}
	return nil
}

func CreateSparePart(db *gorm.DB, menu Catalog.Menu, in SparePartInput) (*SparePart, error) {
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := in.checkCatalog(menu); err != nil {
		return nil, err
	}
	part := SparePart{
		Name: in.Name, Description: in.Description,
		Category: in.Category, Subcategory: in.Subcategory,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&part).Error
	})
	if err != nil {
		LogOperationError("CreateSparePart", err)
		return nil, err
	}
	return &part, nil
}

func UpdateSparePart(db *gorm.DB, menu Catalog.Menu, id uint, in SparePartInput) (*SparePart, error) {
	var part SparePart
	if err := findByID(db, &part, "recambio", id); err != nil {
		return nil, err
	}
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := in.checkCatalog(menu); err != nil {
		return nil, err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&part).Updates(SparePart{
			Name: in.Name, Description: in.Description,
			Category: in.Category, Subcategory: in.Subcategory,
		}).Error
	})
	if err != nil {
		LogOperationError("UpdateSparePart", err)
		return nil, err
	}
	return &part, nil
}

func DeleteSparePart(db *gorm.DB, id uint) error {
	var part SparePart
	if err := findByID(db, &part, "recambio", id); err != nil {
		return err
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&part).Error
	}); err != nil {
		LogOperationError("DeleteSparePart", err)
		return err
	}
	return nil
}

// IntakeInput carries the new-intake form fields.
type IntakeInput struct {
	Odometer  int    `json:"kilometros_ingreso" validate:"required,gt=0"`
	Fault     string `json:"averia" validate:"required"`
	Diagnosis string `json:"diagnostico" validate:"required"`
}

func (in *IntakeInput) normalize() {
	in.Fault = strings.TrimSpace(in.Fault)
	in.Diagnosis = strings.TrimSpace(in.Diagnosis)
}

// CreateIntake registers one workshop visit for a client/vehicle pair,
// both addressed by id. The vehicle must belong to the client. On
// success the intake becomes the process-wide current intake.
func CreateIntake(db *gorm.DB, clientID, vehicleID uint, in IntakeInput) (*Intake, error) {
	var client Client
	if err := findByID(db, &client, "cliente", clientID); err != nil {
		return nil, err
	}
	var vehicle Vehicle
	if err := findByID(db, &vehicle, "vehiculo", vehicleID); err != nil {
		return nil, err
	}
	if vehicle.ClientID != client.ID {
		return nil, fmt.Errorf("%w: el vehiculo %d no pertenece al cliente %d",
			ErrValidation, vehicle.ID, client.ID)
	}
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	intake := Intake{
		IntakeAt:  time.Now(),
		Odometer:  in.Odometer,
		Fault:     in.Fault,
		Diagnosis: in.Diagnosis,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&client).Association("Intakes").Append(&intake); err != nil {
			return err
		}
		return tx.Model(&vehicle).Association("Intakes").Append(&intake)
	})
	if err != nil {
		LogOperationError("CreateIntake", err)
		return nil, err
	}
	setCurrentIntake(intake, client, vehicle)
	return &intake, nil
}

func UpdateIntake(db *gorm.DB, id uint, in IntakeInput) (*Intake, error) {
	var intake Intake
	if err := findByID(db, &intake, "ingreso", id); err != nil {
		return nil, err
	}
	in.normalize()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&intake).Updates(Intake{
			Odometer: in.Odometer, Fault: in.Fault, Diagnosis: in.Diagnosis,
		}).Error
	})
	if err != nil {
		LogOperationError("UpdateIntake", err)
		return nil, err
	}
	return &intake, nil
}

func DeleteIntake(db *gorm.DB, id uint) error {
	var intake Intake
	if err := findByID(db, &intake, "ingreso", id); err != nil {
		return err
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&intake).Error
	}); err != nil {
		LogOperationError("DeleteIntake", err)
		return err
	}
	return nil
}

// UsageRecordInput carries one line item. RealCost may be zero, in
// which case it is computed here; a non-zero value must agree with
// price*quantity adjusted by the discount.
type UsageRecordInput struct {
	Price    float64 `json:"precio" validate:"required,gt=0"`
	Discount float64 `json:"descuento" validate:"gte=0,lte=100"`
	Quantity float64 `json:"cantidad" validate:"required,gt=0"`
	RealCost float64 `json:"costo_real" validate:"gte=0"`
}

// realCostTolerance absorbs float rounding from clients that compute
// the discounted total themselves.
const realCostTolerance = 0.005

func (in UsageRecordInput) computedCost() float64 {
	return in.Price * in.Quantity * (1 - in.Discount/100)
}

// CreateUsageRecord attaches one spare-part line item to an intake.
// The intake id comes from the caller, threaded from the intake
// creation result; there is no implicit session lookup.
func CreateUsageRecord(db *gorm.DB, intakeID, sparePartID uint, in UsageRecordInput) (*UsageRecord, error) {
	var intake Intake
	if err := findByID(db, &intake, "ingreso", intakeID); err != nil {
		return nil, err
	}
	var part SparePart
	if err := findByID(db, &part, "recambio", sparePartID); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	cost := in.computedCost()
	if in.RealCost != 0 && math.Abs(in.RealCost-cost) > realCostTolerance {
		return nil, fmt.Errorf("%w: costo_real %.2f no coincide con el calculado %.2f",
			ErrValidation, in.RealCost, cost)
	}
	record := UsageRecord{
		Price:    in.Price,
		Discount: in.Discount,
		Quantity: in.Quantity,
		RealCost: cost,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&intake).Association("UsageRecords").Append(&record); err != nil {
			return err
		}
		return tx.Model(&part).Association("UsageRecords").Append(&record)
	})
	if err != nil {
		LogOperationError("CreateUsageRecord", err)
		return nil, err
	}
	return &record, nil
}

func UpdateUsageRecord(db *gorm.DB, id uint, in UsageRecordInput) (*UsageRecord, error) {
	var record UsageRecord
	if err := findByID(db, &record, "registro", id); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	cost := in.computedCost()
	if in.RealCost != 0 && math.Abs(in.RealCost-cost) > realCostTolerance {
		return nil, fmt.Errorf("%w: costo_real %.2f no coincide con el calculado %.2f",
			ErrValidation, in.RealCost, cost)
	}
	// map form so a discount reset to zero is not skipped
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&record).Updates(map[string]interface{}{
			"precio":     in.Price,
			"descuento":  in.Discount,
			"cantidad":   in.Quantity,
			"costo_real": cost,
		}).Error
	})
	if err != nil {
		LogOperationError("UpdateUsageRecord", err)
		return nil, err
	}
	return &record, nil
}

func DeleteUsageRecord(db *gorm.DB, id uint) error {
	var record UsageRecord
	if err := findByID(db, &record, "registro", id); err != nil {
		return err
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&record).Error
	}); err != nil {
		LogOperationError("DeleteUsageRecord", err)
		return err
	}
	return nil
}
