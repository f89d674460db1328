package assembler

import "github.com/alexanderramin/mesoforge/internal/domain"

const (
	priorityReps    = "8-12"
	maintenanceReps = "10-15"
	priorityRest    = 120
	maintenanceRest = 90
	deloadTempo     = "4-1-2"
	standardTempo   = "3-1-2"
)

func repRange(priority bool) string {
	if priority {
		return priorityReps
	}
	return maintenanceReps
}

func restSeconds(priority bool) int {
	if priority {
		return priorityRest
	}
	return maintenanceRest
}

// TargetRPE is the intensity target for a period type.
func TargetRPE(t domain.PeriodType) float64 {
	switch t {
	case domain.PeriodDeload:
		return 5.0
	case domain.PeriodRamp:
		return 6.5
	default:
		return 7.5
	}
}

func tempo(t domain.PeriodType) string {
	if t == domain.PeriodDeload {
		return deloadTempo
	}
	return standardTempo
}
