package intake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		in      TargetInput
		want    string
		wantErr error
	}{
		{"road time", Goal10K, TargetInput{Time: "50분"}, "목표 기록: 50분", nil},
		{"marathon ignores trail inputs", GoalMarathon, TargetInput{Time: "3시간 30분", DistanceKM: "50"}, "목표 기록: 3시간 30분", nil},
		{"road missing time", GoalHalf, TargetInput{}, "", ErrTimeRequired},
		{"trail", GoalTrail, TargetInput{DistanceKM: "50", ElevationM: "2500"}, "거리 50km, 상승고도 2500m", nil},
		{"trail missing elevation", GoalTrail, TargetInput{DistanceKM: "50"}, "", ErrTrailRequired},
		{"trail fractional distance", GoalTrail, TargetInput{DistanceKM: "21.1", ElevationM: "800"}, "거리 21.1km, 상승고도 800m", nil},
		{"trail blank distance", GoalTrail, TargetInput{DistanceKM: "  ", ElevationM: "100"}, "", ErrTrailRequired},
		{"trail ignores time", GoalTrail, TargetInput{Time: "50분"}, "", ErrTrailRequired},
		{"no goal", "", TargetInput{Time: "50분"}, "", ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTarget(tt.goal, tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRecordValidate(t *testing.T) {
	r := Record{Goal: Goal10K, Target: "목표 기록: 50분", Level: "중급 (50분대)", RaceDate: "2025-06-01", Days: "주 4회"}
	assert.NoError(t, r.Validate())

	r.Days = ""
	r.Level = ""
	err := r.Validate()
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "level")
	assert.Contains(t, err.Error(), "days")
}

func TestGoalValid(t *testing.T) {
	for _, o := range Goals {
		assert.True(t, Goal(o.Value).Valid(), o.Value)
	}
	assert.False(t, Goal("ultra").Valid())

	// every road goal has a time list, trail has none
	for _, o := range Goals {
		g := Goal(o.Value)
		_, ok := TimeOptions[g]
		assert.Equal(t, !g.IsTrail(), ok, o.Value)
	}
}

func TestForm_HappyPath(t *testing.T) {
	f := NewForm()
	assert.Equal(t, StateIdle, f.State())

	require.NoError(t, f.SelectGoal(Goal10K))
	assert.Equal(t, StateCollecting, f.State())
	require.NoError(t, f.SetTime("50분"))
	require.NoError(t, f.SetLevel("중급 (50분대)"))
	require.NoError(t, f.SetRaceDate("2025-06-01"))
	require.NoError(t, f.SetDays("주 4회"))

	rec, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateValidated, f.State())
	assert.Equal(t, Record{
		Goal:     Goal10K,
		Target:   "목표 기록: 50분",
		Level:    "중급 (50분대)",
		RaceDate: "2025-06-01",
		Injury:   DefaultInjury,
		Days:     "주 4회",
	}, rec)

	q, err := f.StartChat()
	require.NoError(t, err)
	assert.Equal(t, OpeningQuestion, q)
	assert.Equal(t, StateChatting, f.State())

	// chatting is terminal
	assert.ErrorIs(t, f.SetDays("주 5회 이상"), ErrLocked)
	_, err = f.Submit()
	assert.ErrorIs(t, err, ErrLocked)
}

func TestForm_InvalidSubmitStaysCollecting(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SelectGoal(GoalTrail))
	require.NoError(t, f.SetTrail("50", ""))

	_, err := f.Submit()
	require.ErrorIs(t, err, ErrTrailRequired)
	assert.Equal(t, StateCollecting, f.State())

	require.NoError(t, f.SetTrail("50", "2500"))
	_, err = f.Submit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncomplete), "level/date/days still missing: %v", err)
	assert.Equal(t, StateCollecting, f.State())

	_, err = f.StartChat()
	assert.Error(t, err)
}

func TestForm_SwitchingGoalClearsOtherShape(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SelectGoal(GoalTrail))
	require.NoError(t, f.SetTrail("50", "2500"))
	require.NoError(t, f.SelectGoal(GoalHalf))
	require.NoError(t, f.SelectGoal(GoalTrail))
	require.NoError(t, f.SetLevel("초보 (60분 이상)"))
	require.NoError(t, f.SetRaceDate("2025-10-01"))
	require.NoError(t, f.SetDays("주 2~3회"))

	_, err := f.Submit()
	assert.ErrorIs(t, err, ErrTrailRequired)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = ParseDate("06/01/2025")
	assert.Error(t, err)
}
