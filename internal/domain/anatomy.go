package domain

// AnatomicalProfile holds optional limb-ratio measurements produced by the
// body-scan subsystem. A nil ratio means "not measured".
type AnatomicalProfile struct {
	FemurToTorso   *float64
	HumerusToTorso *float64
	TibiaToFemur   *float64
	ShoulderToHip  *float64
	Morphotype     Morphotype
}

// HasMeasurements reports whether at least one ratio was captured.
func (p *AnatomicalProfile) HasMeasurements() bool {
	if p == nil {
		return false
	}
	return p.FemurToTorso != nil || p.HumerusToTorso != nil ||
		p.TibiaToFemur != nil || p.ShoulderToHip != nil
}

// Ratio returns the value of a ratio pointer and whether it was set.
func Ratio(r *float64) (float64, bool) {
	if r == nil {
		return 0, false
	}
	return *r, true
}

// RatioAbove reports whether the ratio is set and strictly greater than limit.
func RatioAbove(r *float64, limit float64) bool {
	v, ok := Ratio(r)
	return ok && v > limit
}
