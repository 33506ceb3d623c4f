package intake

import (
	"errors"
	"fmt"
	"strings"
)

// Target is the goal-specific part of the intake: a finish time for road
// races or a distance/elevation pair for trail races.
type Target interface {
	// String renders the target the way it is sent in Record.Target
	String() string
	target()
}

// TimeTarget is a finish-time choice for 10km, half and full marathon
type TimeTarget struct {
	Time string
}

// TrailTarget is a course spec for trail races. Both values are kept as
// entered, so fractional distances like 21.1 pass through.
type TrailTarget struct {
	DistanceKM string
	ElevationM string
}

func (TimeTarget) target()  {}
func (TrailTarget) target() {}

func (t TimeTarget) String() string {
	return "목표 기록: " + t.Time
}

func (t TrailTarget) String() string {
	return fmt.Sprintf("거리 %skm, 상승고도 %sm", t.DistanceKM, t.ElevationM)
}

var (
	ErrTimeRequired  = errors.New("목표 기록을 선택해주세요.")
	ErrTrailRequired = errors.New("트레일러닝 거리와 상승고도를 모두 입력해주세요.")
)

// TargetInput is the raw state of the goal-dependent controls
type TargetInput struct {
	Time       string
	DistanceKM string
	ElevationM string
}

// ResolveTarget builds the target variant for goal from the raw inputs.
// Only the controls relevant to the goal are consulted.
func ResolveTarget(goal Goal, in TargetInput) (Target, error) {
	switch goal {
	case GoalTrail:
		dist := strings.TrimSpace(in.DistanceKM)
		elev := strings.TrimSpace(in.ElevationM)
		if dist == "" || elev == "" {
			return nil, ErrTrailRequired
		}
		return TrailTarget{DistanceKM: dist, ElevationM: elev}, nil
	case Goal10K, GoalHalf, GoalMarathon:
		t := strings.TrimSpace(in.Time)
		if t == "" {
			return nil, ErrTimeRequired
		}
		return TimeTarget{Time: t}, nil
	default:
		return nil, fmt.Errorf("%w: goal", ErrMissingField)
	}
}
