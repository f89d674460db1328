package domain

// GoalArchetype is a target physique: which muscles get the priority share of
// volume, which are only maintained, and which movements are never
// prescribed.
type GoalArchetype struct {
	ID                    string
	Name                  string
	Description           string
	PriorityMuscles       []string
	MaintenanceMuscles    []string
	BannedFragments       []string
	FemaleBannedFragments []string
	WeeklySets            int
}

// EquipmentContext is the facility snapshot for one synthesis call.
type EquipmentContext struct {
	Equipment []string
	Brands    []string
}

// homeEquipment is the set of equipment types found in a typical home gym.
var homeEquipment = map[string]bool{
	"dumbbell":   true,
	"bodyweight": true,
	"bands":      true,
	"kettlebell": true,
	"bench":      true,
	"pullup_bar": true,
}

// HasEquipment reports whether the equipment type is available. Exercises that
// declare no equipment are always available.
func (c EquipmentContext) HasEquipment(equipmentType string) bool {
	if equipmentType == "" {
		return true
	}
	for _, e := range c.Equipment {
		if normalize(e) == normalize(equipmentType) {
			return true
		}
	}
	return false
}

// HasBrand reports whether the machine brand is present at the facility.
func (c EquipmentContext) HasBrand(brand string) bool {
	if brand == "" {
		return false
	}
	for _, b := range c.Brands {
		if normalize(b) == normalize(brand) {
			return true
		}
	}
	return false
}

// HomeGymOnly reports whether every available equipment type belongs to the
// home set. An empty context is not a home gym.
func (c EquipmentContext) HomeGymOnly() bool {
	if len(c.Equipment) == 0 {
		return false
	}
	for _, e := range c.Equipment {
		if !homeEquipment[normalize(e)] {
			return false
		}
	}
	return true
}
