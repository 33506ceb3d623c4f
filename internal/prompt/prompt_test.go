package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gios-blog/runcoach/internal/intake"
)

func TestSystem_RoadRecord(t *testing.T) {
	rec := intake.Record{
		Goal:     intake.Goal10K,
		Target:   "목표 기록: 50분",
		Level:    "중급 (50분대)",
		RaceDate: "2025-06-01",
		Injury:   "없음 (최근 컨디션 좋음)",
		Days:     "주 4회",
	}

	got, err := System(rec, "2025-03-01")
	require.NoError(t, err)

	for _, want := range []string{
		"오늘 날짜: 2025-03-01",
		"대회 종목: 10km",
		"세부 목표(기록 또는 코스스펙): 목표 기록: 50분",
		"목표 대회 날짜(훈련 종료일): 2025-06-01",
		"현재 10km 기록: 중급 (50분대)",
		"최근 2개월 내 불편한 곳: 없음 (최근 컨디션 좋음)",
		"주당 훈련 일수: 주 4회",
		"오늘 날짜(2025-03-01)와 대회 날짜(2025-06-01)",
		"페이스 훈련",
		"마크다운(```)",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "언덕 훈련")
}

func TestSystem_TrailRecord(t *testing.T) {
	rec := intake.Record{
		Goal:     intake.GoalTrail,
		Target:   "거리 50km, 상승고도 2500m",
		Level:    "고급 (40분대 이하)",
		RaceDate: "2025-10-01",
		Injury:   "족저근막염",
		Days:     "주 5회 이상",
	}

	got, err := System(rec, "2025-03-01")
	require.NoError(t, err)

	assert.Contains(t, got, "거리 50km, 상승고도 2500m")
	assert.Contains(t, got, "언덕 훈련(Hill repeat)")
	assert.Contains(t, got, "계단 훈련")
	assert.Contains(t, got, "하체 보강")
}

func TestSystem_ValuesAreNotEscaped(t *testing.T) {
	rec := intake.Record{Goal: intake.Goal10K, Target: "<b>&</b>"}

	got, err := System(rec, "2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, got, "<b>&</b>")
}
