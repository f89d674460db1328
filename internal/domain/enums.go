package domain

type PeriodType string

const (
	PeriodRamp     PeriodType = "ramp"
	PeriodNormal   PeriodType = "normal"
	PeriodOverload PeriodType = "overload"
	PeriodDeload   PeriodType = "deload"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ParseSex normalizes a free-form biological-sex string. Anything that is not
// recognisably male or female maps to SexOther.
func ParseSex(s string) Sex {
	switch normalize(s) {
	case "female", "f", "woman":
		return SexFemale
	case "male", "m", "man":
		return SexMale
	default:
		return SexOther
	}
}

type Morphotype string

const (
	MorphoLongLimbed Morphotype = "long_limbed"
	MorphoShortTorso Morphotype = "short_torso"
	MorphoLongTorso  Morphotype = "long_torso"
	MorphoLongArms   Morphotype = "long_arms"
	MorphoShortArms  Morphotype = "short_arms"
	MorphoBalanced   Morphotype = "balanced"
)

// ValidMorphotypes is the canonical set of accepted morphotype strings.
var ValidMorphotypes = map[string]bool{
	"long_limbed": true, "short_torso": true, "long_torso": true,
	"long_arms": true, "short_arms": true, "balanced": true,
}

type CyclePhase string

const (
	PhaseNone       CyclePhase = ""
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulatory  CyclePhase = "ovulatory"
	PhaseLuteal     CyclePhase = "luteal"
)

// ValidCyclePhases is the canonical set of accepted cycle phase strings.
var ValidCyclePhases = map[string]bool{
	"menstrual": true, "follicular": true, "ovulatory": true, "luteal": true,
}

type Frequency string

const (
	Freq2FullBody   Frequency = "2_full_body"
	Freq3FullBody   Frequency = "3_full_body"
	Freq4UpperLower Frequency = "4_upper_lower"
	Freq5Hybrid     Frequency = "5_hybrid"
	Freq6PPL        Frequency = "6_ppl"
)

type DayLabel string

const (
	LabelRest     DayLabel = "rest"
	LabelFullBody DayLabel = "full_body"
	LabelUpper    DayLabel = "upper"
	LabelLower    DayLabel = "lower"
	LabelPush     DayLabel = "push"
	LabelPull     DayLabel = "pull"
	LabelLegs     DayLabel = "legs"
)

type ReadinessBand string

const (
	ReadinessOptimal  ReadinessBand = "optimal"
	ReadinessModerate ReadinessBand = "moderate"
	ReadinessLow      ReadinessBand = "low"
	ReadinessCritical ReadinessBand = "critical"
)
