package Models

import "sync"

// CurrentIntake is the single-slot record of the last intake created in
// this process, with the denormalized fields the usage-record screen
// displays. Overwritten on every intake creation, cleared only by
// restart. Callers attach line items by passing the intake id
// explicitly; this slot is read-back convenience for the UI, never an
// implicit parameter.
type CurrentIntake struct {
	IntakeID     uint   `json:"id_ingreso"`
	ClientName   string `json:"nombre_cliente"`
	VehicleLabel string `json:"vehiculo"`
	Plate        string `json:"matricula"`
}

var (
	currentIntakeMu sync.Mutex
	currentIntake   *CurrentIntake
)

func setCurrentIntake(intake Intake, client Client, vehicle Vehicle) {
	currentIntakeMu.Lock()
	defer currentIntakeMu.Unlock()
	currentIntake = &CurrentIntake{
		IntakeID:     intake.ID,
		ClientName:   client.Name,
		VehicleLabel: vehicle.Label(),
		Plate:        vehicle.Plate,
	}
}

// GetCurrentIntake reports the last intake created in this process.
func GetCurrentIntake() (CurrentIntake, bool) {
	currentIntakeMu.Lock()
	defer currentIntakeMu.Unlock()
	if currentIntake == nil {
		return CurrentIntake{}, false
	}
	return *currentIntake, true
}
