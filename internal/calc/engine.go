// Package calc implements the per-module-type calculation engines and the
// orchestration around them. Engines are pure with respect to storage:
// they consume resolved config/override values and effective transactions,
// and report failure through the result's errors list rather than Go
// errors, so one broken module never aborts a batch.
package calc

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/rates"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=calc

// TransactionSource supplies effective transactions to engines.
type TransactionSource interface {
	EffectiveForCategories(ctx context.Context, jobID uuid.UUID, categories []workpaper.Category) ([]workpaper.EffectiveTransaction, error)
}

// Inputs is everything an engine may consume during one calculation pass.
type Inputs struct {
	Job      *workpaper.Job
	Module   *workpaper.ModuleInstance
	Rates    rates.Rates
	Resolver Resolver

	Transactions TransactionSource

	// Siblings carries the job's other modules; only the summary engine
	// reads it.
	Siblings []*workpaper.ModuleInstance
}

// Engine calculates one module type's output summary.
type Engine interface {
	Calculate(ctx context.Context, in Inputs) workpaper.Result
}

// Resolver applies the single precedence law used everywhere in the
// system: override beats config beats default.
type Resolver struct {
	moduleType workpaper.ModuleType
	config     workpaper.Config
	overrides  map[string]any
}

// NewResolver builds a Resolver from a module and its field overrides.
func NewResolver(m *workpaper.ModuleInstance, overrides []*workpaper.OverrideRecord) Resolver {
	byKey := make(map[string]any, len(overrides))
	for _, ov := range overrides {
		byKey[ov.FieldKey] = ov.EffectiveValue
	}

	return Resolver{moduleType: m.Type, config: m.Config, overrides: byKey}
}

// Method resolves the calculation method: OverrideRecord("method") >
// config method > module-type default.
func (r Resolver) Method() workpaper.Method {
	if v, ok := r.overrides["method"]; ok {
		if s, ok := v.(string); ok && s != "" {
			return workpaper.Method(s)
		}
	}

	if r.config.Method != "" {
		return r.config.Method
	}

	return workpaper.DefaultMethod(r.moduleType)
}

// Value resolves any field key with the same precedence, without a default.
func (r Resolver) Value(key string) (any, bool) {
	if v, ok := r.overrides[key]; ok {
		return v, true
	}

	return r.config.Value(key)
}

// Float resolves a numeric field, falling back to def when unset or not
// convertible.
func (r Resolver) Float(key string, def float64) float64 {
	v, ok := r.Value(key)
	if !ok {
		return def
	}

	f, ok := toFloat(v)
	if !ok {
		return def
	}

	return f
}

// Bool resolves a boolean field.
func (r Resolver) Bool(key string, def bool) bool {
	v, ok := r.Value(key)
	if !ok {
		return def
	}

	b, ok := v.(bool)
	if !ok {
		return def
	}

	return b
}

// toFloat coerces JSON-decoded override values to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// Registry maps module types to engine constructors. New module types
// register here without touching the dispatcher.
type Registry struct {
	engines map[workpaper.ModuleType]func() Engine
}

// NewRegistry returns a registry pre-loaded with the built-in engines.
func NewRegistry() *Registry {
	r := &Registry{engines: make(map[workpaper.ModuleType]func() Engine)}

	r.Register(workpaper.ModuleMotorVehicle, func() Engine { return &MotorVehicleEngine{} })
	r.Register(workpaper.ModuleHomeOffice, func() Engine { return &HomeOfficeEngine{} })
	r.Register(workpaper.ModuleInternet, func() Engine { return &CommsEngine{} })
	r.Register(workpaper.ModuleMobile, func() Engine { return &CommsEngine{} })
	r.Register(workpaper.ModuleFDCIncome, func() Engine { return &FDCIncomeEngine{} })
	r.Register(workpaper.ModuleFoodGST, func() Engine { return &FoodGSTEngine{} })
	r.Register(workpaper.ModuleSummary, func() Engine { return &SummaryEngine{} })

	return r
}

// Register adds or replaces the engine constructor for a module type.
func (r *Registry) Register(t workpaper.ModuleType, fn func() Engine) {
	r.engines[t] = fn
}

// Engine returns a fresh engine for the module type.
func (r *Registry) Engine(t workpaper.ModuleType) (Engine, bool) {
	fn, ok := r.engines[t]
	if !ok {
		return nil, false
	}

	return fn(), true
}
