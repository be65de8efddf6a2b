package model

import "math"

// 参数容许范围
// 越界和非数值输入一律钳制到边界值，不做拒绝
const (
	MinOnDays   = 1
	MaxOnDays   = 365
	MinOffDays  = 2
	MaxOffDays  = 365
	MinInduct   = 1
	MaxInduct   = 5
	MinCoverage = 1
	MaxCoverage = 5000
)

// Regime 轮换制度参数
// W 为在岗块总天数，R 为名义休息天数，I 为带培天数（仅首个在岗块），
// TotalCoverageDays 为需要维持双班生产的目标天数
type Regime struct {
	W                 int `json:"w"`
	R                 int `json:"r"`
	I                 int `json:"i"`
	TotalCoverageDays int `json:"total_coverage_days"`
}

// Clamp 返回钳制到容许范围后的参数副本
func (r Regime) Clamp() Regime {
	return Regime{
		W:                 clampInt(r.W, MinOnDays, MaxOnDays),
		R:                 clampInt(r.R, MinOffDays, MaxOffDays),
		I:                 clampInt(r.I, MinInduct, MaxInduct),
		TotalCoverageDays: clampInt(r.TotalCoverageDays, MinCoverage, MaxCoverage),
	}
}

// RealRest 返回纯休息天数
// 名义休息期中有两天被撤岗/上岗过渡日占用
func (r Regime) RealRest() int {
	if r.R-2 < 0 {
		return 0
	}
	return r.R - 2
}

// CycleLen 返回稳定循环周期长度（生产W + 撤岗1 + 纯休 + 上岗1）
func (r Regime) CycleLen() int {
	return r.W + 1 + r.RealRest() + 1
}

// FirstBlockProducingDays 返回首个在岗块中的生产天数
// 带培占用首块的一部分，重度带培时可能为0
func (r Regime) FirstBlockProducingDays() int {
	if r.W-r.I < 0 {
		return 0
	}
	return r.W - r.I
}

// ClampFloat 将外部数值输入钳制为容许整数
// NaN 与 -Inf 取下界，+Inf 取上界，小数向零取整
func ClampFloat(v float64, min, max int) int {
	if math.IsNaN(v) {
		return min
	}
	if math.IsInf(v, 1) {
		return max
	}
	if math.IsInf(v, -1) {
		return min
	}
	return clampInt(int(v), min, max)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
