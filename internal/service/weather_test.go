//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

func TestSummarizeWeather(t *testing.T) {
	tests := []struct {
		name     string
		segments []model.TripSegment
		wantMin  *float64
		wantMax  *float64
		wantRain bool
		wantSun  bool
		wantWet  bool
	}{
		{
			name:     "no segments",
			segments: nil,
		},
		{
			name: "single segment",
			segments: []model.TripSegment{
				{TempMin: "4", TempMax: "14", RainLikely: true},
			},
			wantMin:  f(4),
			wantMax:  f(14),
			wantRain: true,
		},
		{
			name: "extremes fold across segments",
			segments: []model.TripSegment{
				{TempMin: "4", TempMax: "14"},
				{TempMin: "-2", TempMax: "30"},
				{TempMin: "10", TempMax: "18"},
			},
			wantMin: f(-2),
			wantMax: f(30),
		},
		{
			name: "unparsable temps excluded from fold",
			segments: []model.TripSegment{
				{TempMin: "cold", TempMax: ""},
				{TempMin: "7", TempMax: "about 20"},
			},
			wantMin: f(7),
			wantMax: nil,
		},
		{
			name: "whitespace trimmed before parsing",
			segments: []model.TripSegment{
				{TempMin: " 3 ", TempMax: " 12"},
			},
			wantMin: f(3),
			wantMax: f(12),
		},
		{
			name: "flags are per segment ors",
			segments: []model.TripSegment{
				{RainLikely: true},
				{HotSunLikely: true},
				{HumidLikely: true},
			},
			wantRain: true,
			wantSun:  true,
			wantWet:  true,
		},
		{
			name: "decimal temperatures",
			segments: []model.TripSegment{
				{TempMin: "-0.5", TempMax: "31.8"},
			},
			wantMin: f(-0.5),
			wantMax: f(31.8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeWeather(tt.segments)

			assertTemp(t, tt.wantMin, got.OverallMin, "OverallMin")
			assertTemp(t, tt.wantMax, got.OverallMax, "OverallMax")
			assert.Equal(t, tt.wantRain, got.AnyRain)
			assert.Equal(t, tt.wantSun, got.AnySun)
			assert.Equal(t, tt.wantWet, got.AnyHumid)
		})
	}
}

func f(v float64) *float64 { return &v }

func assertTemp(t *testing.T, want, got *float64, label string) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got, label)
		return
	}
	require.NotNil(t, got, label)
	assert.InDelta(t, *want, *got, 1e-9, label)
}
