// Package stats 提供排班统计分析功能
package stats

import (
	"github.com/lunban/lunban/pkg/model"
)

// RotationMetrics 轮换排班统计指标
type RotationMetrics struct {
	Days            int                `json:"days"`             // 排班总天数
	DoubleDays      int                `json:"double_days"`      // 恰好两班顶岗天数
	TripleDays      int                `json:"triple_days"`      // 三班同时顶岗天数
	SingleDays      int                `json:"single_days"`      // 仅一班顶岗天数
	IdleDays        int                `json:"idle_days"`        // 无班组顶岗天数
	CoverageRate    float64            `json:"coverage_rate"`    // 双班覆盖率 (%)
	FirstDoubleDay  int                `json:"first_double_day"` // 首个双班日（0起），-1表示没有
	Units           []UnitMetrics      `json:"units"`            // 各班组统计
	StateTotals     map[model.DayState]int `json:"state_totals"` // 全体班组各状态天数
}

// UnitMetrics 单个班组的统计
type UnitMetrics struct {
	Name        string                 `json:"name"`
	Start       int                    `json:"start"`       // 起始日
	StateDays   map[model.DayState]int `json:"state_days"`  // 各状态天数
	Utilization float64                `json:"utilization"` // 顶岗率 (%)，顶岗天数/非空白天数
}

// RotationAnalyzer 轮换排班分析器
type RotationAnalyzer struct{}

// NewRotationAnalyzer 创建分析器
func NewRotationAnalyzer() *RotationAnalyzer {
	return &RotationAnalyzer{}
}

// Analyze 分析排班结果
func (a *RotationAnalyzer) Analyze(result *model.ScheduleResult) *RotationMetrics {
	metrics := &RotationMetrics{
		FirstDoubleDay: -1,
		StateTotals:    make(map[model.DayState]int),
	}
	if result == nil || result.Days <= 0 {
		return metrics
	}

	metrics.Days = result.Days

	for t, c := range result.PCount {
		switch c {
		case 0:
			metrics.IdleDays++
		case 1:
			metrics.SingleDays++
		case 2:
			metrics.DoubleDays++
			if metrics.FirstDoubleDay < 0 {
				metrics.FirstDoubleDay = t
			}
		case 3:
			metrics.TripleDays++
		}
	}
	if metrics.Days > 0 {
		metrics.CoverageRate = float64(metrics.DoubleDays) / float64(metrics.Days) * 100
	}

	for u := 0; u < model.UnitCount; u++ {
		unit := UnitMetrics{
			Name:      result.Names[u],
			Start:     result.Starts[u],
			StateDays: make(map[model.DayState]int),
		}

		active := 0
		covering := 0
		for _, s := range result.States[u] {
			unit.StateDays[s]++
			metrics.StateTotals[s]++
			if s != model.StateEmpty {
				active++
			}
			if s.Covers() {
				covering++
			}
		}
		if active > 0 {
			unit.Utilization = float64(covering) / float64(active) * 100
		}

		metrics.Units = append(metrics.Units, unit)
	}

	return metrics
}
