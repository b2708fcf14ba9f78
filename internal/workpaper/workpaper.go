// Package workpaper holds the core domain model for the tax workpaper
// platform: jobs, module instances, transactions, overrides, queries,
// tasks and freeze snapshots.
package workpaper

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state shared by jobs and module instances.
type Status string

const (
	StatusNotStarted          Status = "not_started"
	StatusInProgress          Status = "in_progress"
	StatusAwaitingClient      Status = "awaiting_client"
	StatusReadyForReview      Status = "ready_for_review"
	StatusReadyForFinalReview Status = "ready_for_final_review"
	StatusCompleted           Status = "completed"
	StatusFrozen              Status = "frozen"
	// StatusNA marks a module as not applicable. It is excluded from job
	// status derivation and never frozen.
	StatusNA Status = "na"
)

// ModuleType identifies a workpaper module kind.
type ModuleType string

const (
	ModuleMotorVehicle ModuleType = "motor_vehicle"
	ModuleHomeOffice   ModuleType = "home_office"
	ModuleInternet     ModuleType = "internet"
	ModuleMobile       ModuleType = "mobile"
	ModuleFDCIncome    ModuleType = "fdc_income"
	ModuleFoodGST      ModuleType = "food_gst"
	ModuleSummary      ModuleType = "summary"
)

// StandardModuleTypes is the default set created with a new job.
var StandardModuleTypes = []ModuleType{
	ModuleMotorVehicle,
	ModuleHomeOffice,
	ModuleInternet,
	ModuleMobile,
	ModuleFDCIncome,
	ModuleFoodGST,
	ModuleSummary,
}

// Source indicates where a transaction came from.
type Source string

const (
	SourceMyFDC  Source = "myfdc"
	SourceManual Source = "manual"
	SourceImport Source = "import"
)

// Category classifies a transaction for calculation purposes.
type Category string

const (
	CategoryVehicleFuel         Category = "vehicle_fuel"
	CategoryVehicleRegistration Category = "vehicle_registration"
	CategoryVehicleInsurance    Category = "vehicle_insurance"
	CategoryVehicleRepairs      Category = "vehicle_repairs"
	CategoryVehicleLease        Category = "vehicle_lease"
	CategoryVehicleInterest     Category = "vehicle_interest"
	CategoryVehicleOther        Category = "vehicle_other"

	CategoryHomeElectricity Category = "home_electricity"
	CategoryHomeGas         Category = "home_gas"
	CategoryHomeCleaning    Category = "home_cleaning"
	CategoryHomeRepairs     Category = "home_repairs"
	CategoryHomeOther       Category = "home_other"

	CategoryInternet Category = "internet"
	CategoryMobile   Category = "mobile"
	CategoryLandline Category = "landline"

	CategoryFDCIncome   Category = "fdc_income"
	CategoryFDCFood     Category = "fdc_food"
	CategoryFDCSupplies Category = "fdc_supplies"

	CategoryOther         Category = "other"
	CategoryUncategorized Category = "uncategorized"
)

// VehicleCategories are the expense categories pooled by the logbook method.
var VehicleCategories = []Category{
	CategoryVehicleFuel,
	CategoryVehicleRegistration,
	CategoryVehicleInsurance,
	CategoryVehicleRepairs,
	CategoryVehicleLease,
	CategoryVehicleInterest,
	CategoryVehicleOther,
}

// HomeCategories are the running-expense categories for home office actual method.
var HomeCategories = []Category{
	CategoryHomeElectricity,
	CategoryHomeGas,
	CategoryHomeCleaning,
	CategoryHomeRepairs,
	CategoryHomeOther,
}

// Method is a calculation method selection.
type Method string

const (
	MethodCentsPerKM Method = "cents_per_km"
	MethodLogbook    Method = "logbook"
	MethodFixedRate  Method = "fixed_rate"
	MethodActual     Method = "actual"
	MethodEstimate   Method = "estimate"
	MethodDiary      Method = "diary"
)

// SnapshotType distinguishes freeze snapshot granularity and purpose.
type SnapshotType string

const (
	SnapshotModule  SnapshotType = "module"
	SnapshotBAS     SnapshotType = "bas"
	SnapshotITR     SnapshotType = "itr"
	SnapshotSummary SnapshotType = "summary"
)

// Actor is the pre-authenticated identity attached to every mutating call.
// The core records it and never authenticates.
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Job is one tax year for one client. Status is always derived from its
// modules, never set directly, except while frozen.
type Job struct {
	ID        uuid.UUID
	ClientID  string
	Year      string // e.g. "2024-25"
	Status    Status
	FrozenAt  *time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ModuleInstance is one deduction/income area within a job. Multiple
// instances of one type are allowed, distinguished by label.
type ModuleInstance struct {
	ID            uuid.UUID
	JobID         uuid.UUID
	Type          ModuleType
	Label         string
	Status        Status
	Config        Config
	OutputSummary *Result // calculation cache, nil until first calculation
	// CalculationInputs holds the resolved input values captured when
	// OutputSummary was produced, so a freeze snapshot records what the
	// numbers were computed from.
	CalculationInputs map[string]any
	FrozenAt          *time.Time
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// Frozen reports whether the module rejects mutation and recalculation.
func (m *ModuleInstance) Frozen() bool {
	return m.Status == StatusFrozen
}

// Transaction is immutable client data. There is no update path.
type Transaction struct {
	ID         uuid.UUID
	ClientID   string
	JobID      *uuid.UUID
	ModuleID   *uuid.UUID
	Source     Source
	Date       time.Time
	Amount     decimal.Decimal
	GSTAmount  *decimal.Decimal
	Category   Category
	Vendor     string
	ReceiptURL string
	Reference  string
	CreatedAt  time.Time
}

// TransactionOverride is an admin correction scoped to one (transaction, job)
// pair. Fields are only applied when explicitly set; the source transaction
// is never mutated.
type TransactionOverride struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	JobID         uuid.UUID

	Amount      *decimal.Decimal
	GSTAmount   *decimal.Decimal
	Category    *Category
	BusinessPct *decimal.Decimal // 0-100

	Reason    string
	Actor     Actor
	CreatedAt time.Time
}

// OverrideRecord is a module-level field override, at most one per
// (module, field key) pair.
type OverrideRecord struct {
	ID             uuid.UUID
	ModuleID       uuid.UUID
	FieldKey       string
	OriginalValue  any
	EffectiveValue any
	Reason         string
	Actor          Actor
	CreatedAt      time.Time
}

// FreezeSnapshot is an append-only record of computed state at freeze time.
// Never updated or deleted once created.
type FreezeSnapshot struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	ModuleID  *uuid.UUID // nil for job-level snapshots
	Type      SnapshotType
	Data      map[string]any // full payload for audit export
	Summary   map[string]any
	Actor     Actor
	CreatedAt time.Time
}
