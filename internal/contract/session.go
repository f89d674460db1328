package contract

import (
	"time"

	"github.com/alexanderramin/mesoforge/internal/constraint"
	"github.com/alexanderramin/mesoforge/internal/domain"
)

// BriefRequest asks for the pre-session brief.
type BriefRequest struct {
	Readiness int      `json:"readiness"`
	Phase     string   `json:"phase,omitempty"`
	Exercises []string `json:"exercises,omitempty"`
	Ratios    Ratios   `json:"ratios"`
}

type WarningView struct {
	Exercise    string `json:"exercise"`
	Alternative string `json:"alternative"`
	Reason      string `json:"reason"`
}

type CycleView struct {
	Phase           string  `json:"phase"`
	MaxRPE          float64 `json:"max_rpe"`
	VolumeReduction float64 `json:"volume_reduction"`
}

type BriefResponse struct {
	Readiness int           `json:"readiness"`
	Band      string        `json:"band"`
	Message   string        `json:"message"`
	Focus     string        `json:"focus"`
	CycleNote string        `json:"cycle_note,omitempty"`
	Cycle     *CycleView    `json:"cycle,omitempty"`
	Warnings  []WarningView `json:"warnings"`
}

func NewBriefResponse(b constraint.Brief) BriefResponse {
	out := BriefResponse{
		Readiness: b.Readiness,
		Band:      string(b.Band),
		Message:   b.Message,
		Focus:     b.Focus,
		CycleNote: b.CycleNote,
		Warnings:  make([]WarningView, 0, len(b.Warnings)),
	}
	if b.Cycle != nil {
		out.Cycle = &CycleView{
			Phase:           string(b.Cycle.Phase),
			MaxRPE:          b.Cycle.MaxRPE,
			VolumeReduction: b.Cycle.VolumeReduction,
		}
	}
	for _, w := range b.Warnings {
		out.Warnings = append(out.Warnings, WarningView{Exercise: w.Exercise, Alternative: w.Alternative, Reason: w.Reason})
	}
	return out
}

// SessionPlanRequest selects one day of a stored program. Period is 1-based,
// Day is 0-based.
type SessionPlanRequest struct {
	ProgramID string `json:"program_id"`
	Period    int    `json:"period"`
	Day       int    `json:"day"`
	Readiness int    `json:"readiness"`
	Phase     string `json:"phase,omitempty"`
	Ratios    Ratios `json:"ratios"`
}

// SessionPlanResponse is the day's prescription after cycle adjustment. The
// stored template is never modified.
type SessionPlanResponse struct {
	ProgramID     string        `json:"program_id"`
	Period        int           `json:"period"`
	PeriodType    string        `json:"period_type"`
	Day           DayView       `json:"day"`
	CycleAdjusted bool          `json:"cycle_adjusted"`
	Brief         BriefResponse `json:"brief"`
}

// LogSetRequest records one performed set against a prescription position.
type LogSetRequest struct {
	ProgramID       string     `json:"program_id"`
	Period          int        `json:"period"`
	Day             int        `json:"day"`
	ExerciseOrder   int        `json:"exercise_order"`
	SetNumber       int        `json:"set_number"`
	Reps            int        `json:"reps"`
	RPE             *float64   `json:"rpe,omitempty"`
	VelocityLossPct *float64   `json:"velocity_loss_pct,omitempty"`
	LoggedAt        *time.Time `json:"-"`
}

type LogSetResponse struct {
	ID          string   `json:"id"`
	Autostopped bool     `json:"autostopped"`
	Actions     []string `json:"actions,omitempty"`
}

type SetLogView struct {
	ID              string    `json:"id"`
	Period          int       `json:"period"`
	Day             int       `json:"day"`
	ExerciseOrder   int       `json:"exercise_order"`
	SetNumber       int       `json:"set_number"`
	Reps            int       `json:"reps"`
	RPE             *float64  `json:"rpe,omitempty"`
	VelocityLossPct *float64  `json:"velocity_loss_pct,omitempty"`
	Autostopped     bool      `json:"autostopped"`
	LoggedAt        time.Time `json:"logged_at"`
}

func NewSetLogViews(logs []*domain.SetLog) []SetLogView {
	out := make([]SetLogView, 0, len(logs))
	for _, l := range logs {
		out = append(out, SetLogView{
			ID:              l.ID,
			Period:          l.PeriodNumber,
			Day:             l.DayIndex,
			ExerciseOrder:   l.ExerciseOrder,
			SetNumber:       l.SetNumber,
			Reps:            l.Reps,
			RPE:             l.RPE,
			VelocityLossPct: l.VelocityLossPct,
			Autostopped:     l.Autostopped,
			LoggedAt:        l.LoggedAt,
		})
	}
	return out
}

type FatigueCheckRequest struct {
	VelocityLossPct float64 `json:"velocity_loss_pct"`
}

type FatigueCheckResponse struct {
	VelocityLossPct float64  `json:"velocity_loss_pct"`
	Limit           float64  `json:"limit"`
	Stop            bool     `json:"stop"`
	Actions         []string `json:"actions,omitempty"`
}

// NewFatigueCheckResponse evaluates the kill switch for one reading.
func NewFatigueCheckResponse(velocityLossPct float64) FatigueCheckResponse {
	resp := FatigueCheckResponse{
		VelocityLossPct: velocityLossPct,
		Limit:           constraint.FatigueVelocityLossLimit,
		Stop:            constraint.EvaluateFatigueKillSwitch(velocityLossPct),
	}
	if resp.Stop {
		resp.Actions = KillSwitchActionNames()
	}
	return resp
}

func KillSwitchActionNames() []string {
	actions := constraint.KillSwitchActions()
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}
