package model

import (
	"math"
	"testing"
)

func TestRegime_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		input    Regime
		expected Regime
	}{
		{
			name:     "范围内原样保留",
			input:    Regime{W: 14, R: 7, I: 5, TotalCoverageDays: 90},
			expected: Regime{W: 14, R: 7, I: 5, TotalCoverageDays: 90},
		},
		{
			name:     "全部越下界",
			input:    Regime{W: 0, R: 1, I: 0, TotalCoverageDays: 0},
			expected: Regime{W: 1, R: 2, I: 1, TotalCoverageDays: 1},
		},
		{
			name:     "负数取下界",
			input:    Regime{W: -10, R: -1, I: -5, TotalCoverageDays: -100},
			expected: Regime{W: 1, R: 2, I: 1, TotalCoverageDays: 1},
		},
		{
			name:     "全部越上界",
			input:    Regime{W: 1000, R: 1000, I: 99, TotalCoverageDays: 99999},
			expected: Regime{W: 365, R: 365, I: 5, TotalCoverageDays: 5000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Clamp(); got != tt.expected {
				t.Errorf("Clamp() = %+v, 期望 %+v", got, tt.expected)
			}
		})
	}
}

func TestRegime_Derived(t *testing.T) {
	tests := []struct {
		name                string
		regime              Regime
		realRest            int
		cycleLen            int
		firstBlockProducing int
	}{
		{"上14休7带培5", Regime{W: 14, R: 7, I: 5}, 5, 21, 9},
		{"上10休5带培2", Regime{W: 10, R: 5, I: 2}, 3, 15, 8},
		{"休息期仅够过渡", Regime{W: 7, R: 2, I: 1}, 0, 9, 6},
		{"带培超过在岗块", Regime{W: 1, R: 2, I: 5}, 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.regime.RealRest(); got != tt.realRest {
				t.Errorf("RealRest() = %d, 期望 %d", got, tt.realRest)
			}
			if got := tt.regime.CycleLen(); got != tt.cycleLen {
				t.Errorf("CycleLen() = %d, 期望 %d", got, tt.cycleLen)
			}
			if got := tt.regime.FirstBlockProducingDays(); got != tt.firstBlockProducing {
				t.Errorf("FirstBlockProducingDays() = %d, 期望 %d", got, tt.firstBlockProducing)
			}
		})
	}
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected int
	}{
		{"范围内取整", 14.9, 14},
		{"NaN取下界", math.NaN(), 1},
		{"正无穷取上界", math.Inf(1), 365},
		{"负无穷取下界", math.Inf(-1), 1},
		{"负数取下界", -3.5, 1},
		{"超上界", 1e9, 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampFloat(tt.v, MinOnDays, MaxOnDays); got != tt.expected {
				t.Errorf("ClampFloat(%v) = %d, 期望 %d", tt.v, got, tt.expected)
			}
		})
	}
}
