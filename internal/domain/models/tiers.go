// internal/domain/models/tiers.go
package models

// OptimizationTier is the energy-optimization level chosen on the Energy tab.
type OptimizationTier string

const (
	OptimizationBasic    OptimizationTier = "Basic"
	OptimizationStandard OptimizationTier = "Standard"
	OptimizationAdvanced OptimizationTier = "Advanced"
)

// OptimizationTiers lists the energy tiers in slider order.
var OptimizationTiers = []OptimizationTier{
	OptimizationBasic,
	OptimizationStandard,
	OptimizationAdvanced,
}

// ImplementationTier is the rollout level chosen on the Financial Impact tab.
type ImplementationTier string

const (
	ImplementationBasic    ImplementationTier = "Basic (Monitoring)"
	ImplementationStandard ImplementationTier = "Standard (Monitoring + Automation)"
	ImplementationAdvanced ImplementationTier = "Advanced (Full AI Integration)"
)

// ImplementationTiers lists the rollout levels in slider order.
var ImplementationTiers = []ImplementationTier{
	ImplementationBasic,
	ImplementationStandard,
	ImplementationAdvanced,
}

// ExistingSystemTier describes the building-management systems already in
// place, which discounts the implementation cost.
type ExistingSystemTier string

const (
	ExistingNone     ExistingSystemTier = "None/Minimal"
	ExistingStandard ExistingSystemTier = "Standard"
	ExistingModern   ExistingSystemTier = "Modern/Advanced"
)

// ExistingSystemTiers lists the existing-system options in selector order.
var ExistingSystemTiers = []ExistingSystemTier{
	ExistingNone,
	ExistingStandard,
	ExistingModern,
}
