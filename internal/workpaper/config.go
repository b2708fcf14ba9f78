package workpaper

// Config is per-module configuration: the selected calculation method plus
// a typed parameter block for the module's type. Exactly one parameter
// block is expected to be set, matching the owning module's type.
type Config struct {
	Method Method `json:"method,omitempty"`

	MotorVehicle *MotorVehicleConfig `json:"motor_vehicle,omitempty"`
	HomeOffice   *HomeOfficeConfig   `json:"home_office,omitempty"`
	Comms        *CommsConfig        `json:"communications,omitempty"`
	FDCIncome    *FDCIncomeConfig    `json:"fdc_income,omitempty"`
	FoodGST      *FoodGSTConfig      `json:"food_gst,omitempty"`
}

type MotorVehicleConfig struct {
	BusinessKM  *float64 `json:"business_km,omitempty"`
	LogbookPct  *float64 `json:"logbook_pct,omitempty"`
	BusinessPct *float64 `json:"business_pct,omitempty"`

	// Purchase and Sale drive depreciation and the balancing adjustment
	// under the actual expenses method.
	Purchase *AssetPurchase `json:"purchase,omitempty"`
	Sale     *AssetSale     `json:"sale,omitempty"`

	DepreciationMethod     DepreciationMethod `json:"depreciation_method,omitempty"`
	OpeningAdjustableValue *float64           `json:"opening_adjustable_value,omitempty"`
	DaysHeld               *int               `json:"days_held,omitempty"`
}

// DepreciationMethod selects how a vehicle's decline in value is computed.
type DepreciationMethod string

const (
	DepreciationDiminishingValue DepreciationMethod = "diminishing_value"
	DepreciationPrimeCost        DepreciationMethod = "prime_cost"
)

// AssetPurchase is the vehicle purchase underlying depreciation. A GST
// registered carer depreciates the GST-exclusive cost.
type AssetPurchase struct {
	Date          string   `json:"date,omitempty"`
	Price         float64  `json:"price"`
	GST           *float64 `json:"gst,omitempty"`
	GSTRegistered bool     `json:"gst_registered,omitempty"`
}

// CostBase is the amount depreciation runs against.
func (p AssetPurchase) CostBase() float64 {
	if p.GSTRegistered && p.GST != nil {
		return p.Price - *p.GST
	}

	return p.Price
}

// AssetSale triggers a balancing adjustment against the closing
// adjustable value.
type AssetSale struct {
	Date  string   `json:"date,omitempty"`
	Price float64  `json:"price"`
	GST   *float64 `json:"gst,omitempty"`
}

type HomeOfficeConfig struct {
	HoursWorked    *float64 `json:"hours_worked,omitempty"`
	FloorAreaPct   *float64 `json:"floor_area_pct,omitempty"`
	BusinessUsePct *float64 `json:"business_use_pct,omitempty"`
}

type CommsConfig struct {
	BusinessPct *float64 `json:"business_pct,omitempty"`
}

type FDCIncomeConfig struct {
	GSTRegistered *bool `json:"gst_registered,omitempty"`
}

type FoodGSTConfig struct {
	FDCPct *float64 `json:"fdc_pct,omitempty"`
}

// Value exposes the config as a field-key view so the single
// override-beats-config-beats-default law can resolve any field uniformly.
// The second return reports whether the field is explicitly set.
func (c Config) Value(key string) (any, bool) {
	switch key {
	case "method":
		if c.Method != "" {
			return string(c.Method), true
		}
	case "business_km":
		if c.MotorVehicle != nil && c.MotorVehicle.BusinessKM != nil {
			return *c.MotorVehicle.BusinessKM, true
		}
	case "logbook_pct":
		if c.MotorVehicle != nil && c.MotorVehicle.LogbookPct != nil {
			return *c.MotorVehicle.LogbookPct, true
		}
	case "hours_worked":
		if c.HomeOffice != nil && c.HomeOffice.HoursWorked != nil {
			return *c.HomeOffice.HoursWorked, true
		}
	case "floor_area_pct":
		if c.HomeOffice != nil && c.HomeOffice.FloorAreaPct != nil {
			return *c.HomeOffice.FloorAreaPct, true
		}
	case "business_use_pct":
		if c.HomeOffice != nil && c.HomeOffice.BusinessUsePct != nil {
			return *c.HomeOffice.BusinessUsePct, true
		}
	case "business_pct":
		if c.MotorVehicle != nil && c.MotorVehicle.BusinessPct != nil {
			return *c.MotorVehicle.BusinessPct, true
		}

		if c.Comms != nil && c.Comms.BusinessPct != nil {
			return *c.Comms.BusinessPct, true
		}
	case "gst_registered":
		if c.FDCIncome != nil && c.FDCIncome.GSTRegistered != nil {
			return *c.FDCIncome.GSTRegistered, true
		}
	case "fdc_pct":
		if c.FoodGST != nil && c.FoodGST.FDCPct != nil {
			return *c.FoodGST.FDCPct, true
		}
	}

	return nil, false
}

// MethodOption describes one calculation method available to a module type.
type MethodOption struct {
	Method      Method   `json:"method"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsDefault   bool     `json:"is_default"`
	Requires    []string `json:"requires_inputs,omitempty"`
	Produces    []string `json:"produces_outputs,omitempty"`
}

var methodOptions = map[ModuleType][]MethodOption{
	ModuleMotorVehicle: {
		{
			Method:      MethodCentsPerKM,
			Name:        "Cents per Kilometre",
			Description: "Claim a fixed rate per business kilometre, capped",
			IsDefault:   true,
			Requires:    []string{"business_km"},
			Produces:    []string{"deduction", "gst_credit"},
		},
		{
			Method:      MethodLogbook,
			Name:        "Logbook Method",
			Description: "Claim actual vehicle expenses at logbook percentage",
			Requires:    []string{"logbook_pct"},
			Produces:    []string{"deduction", "gst_credit"},
		},
		{
			Method:      MethodActual,
			Name:        "Actual Expenses Method",
			Description: "Claim actual vehicle expenses at business percentage, with depreciation and any balancing adjustment on sale",
			Requires:    []string{"business_pct"},
			Produces:    []string{"deduction", "gst_credit"},
		},
	},
	ModuleHomeOffice: {
		{
			Method:      MethodFixedRate,
			Name:        "Fixed Rate Method",
			Description: "Claim a fixed rate per hour worked from home",
			IsDefault:   true,
			Requires:    []string{"hours_worked"},
			Produces:    []string{"deduction"},
		},
		{
			Method:      MethodActual,
			Name:        "Actual Expenses Method",
			Description: "Claim running expenses at floor-area percentage",
			Requires:    []string{"floor_area_pct", "business_use_pct"},
			Produces:    []string{"deduction", "gst_credit"},
		},
	},
	ModuleInternet: {
		{
			Method:      MethodEstimate,
			Name:        "Reasonable Estimate",
			Description: "Business percentage from a reasonable estimate",
			IsDefault:   true,
			Requires:    []string{"business_pct"},
			Produces:    []string{"deduction", "gst_credit"},
		},
		{
			Method:      MethodDiary,
			Name:        "Diary Method",
			Description: "Business percentage from a recorded usage diary",
			Requires:    []string{"business_pct"},
			Produces:    []string{"deduction", "gst_credit"},
		},
	},
	ModuleMobile: {
		{
			Method:      MethodEstimate,
			Name:        "Reasonable Estimate",
			Description: "Business percentage from a reasonable estimate",
			IsDefault:   true,
			Requires:    []string{"business_pct"},
			Produces:    []string{"deduction", "gst_credit"},
		},
		{
			Method:      MethodDiary,
			Name:        "Call Log Analysis",
			Description: "Business percentage from call log analysis",
			Requires:    []string{"business_pct"},
			Produces:    []string{"deduction", "gst_credit"},
		},
	},
}

// MethodOptions lists the available methods for a module type. Types
// without selectable methods return nil.
func MethodOptions(t ModuleType) []MethodOption {
	return methodOptions[t]
}

// DefaultMethod returns the default calculation method for a module type,
// or empty when the type has no method selection.
func DefaultMethod(t ModuleType) Method {
	for _, opt := range methodOptions[t] {
		if opt.IsDefault {
			return opt.Method
		}
	}

	return ""
}

// inputFields lists the resolvable scalar input keys per module type. The
// calculation service snapshots their resolved values alongside the output.
var inputFields = map[ModuleType][]string{
	ModuleMotorVehicle: {"business_km", "logbook_pct", "business_pct"},
	ModuleHomeOffice:   {"hours_worked", "floor_area_pct", "business_use_pct"},
	ModuleInternet:     {"business_pct"},
	ModuleMobile:       {"business_pct"},
	ModuleFDCIncome:    {"gst_registered"},
	ModuleFoodGST:      {"fdc_pct"},
}

// InputFields returns the input field keys a module type's calculation can
// consume. Types without scalar inputs return nil.
func InputFields(t ModuleType) []string {
	return inputFields[t]
}

// KnownMethod reports whether method is a valid selection for module type t.
func KnownMethod(t ModuleType, m Method) bool {
	for _, opt := range methodOptions[t] {
		if opt.Method == m {
			return true
		}
	}

	return false
}
