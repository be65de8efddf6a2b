package engine

import (
	"context"
	"time"

	"github.com/lunban/lunban/pkg/logger"
	"github.com/lunban/lunban/pkg/model"
)

// Builder 排班构建器
// 负责参数规整、模拟期选择、相位求解、矩阵展开与结果裁剪。
// 每次 Build 独立持有自己的工作矩阵，调用间不共享任何状态
type Builder struct {
	solver PhaseSolver
	logger *logger.EngineLogger
}

// NewBuilder 创建排班构建器（默认使用穷举求解器）
func NewBuilder() *Builder {
	return NewBuilderWithSolver(NewBruteForceSolver())
}

// NewBuilderWithSolver 使用指定求解器创建构建器
func NewBuilderWithSolver(solver PhaseSolver) *Builder {
	return &Builder{
		solver: solver,
		logger: logger.NewEngineLogger(),
	}
}

// Horizon 返回构建使用的模拟期
// 目标天数加约六个周期的余量，经验上足以覆盖到目标
func Horizon(regime model.Regime) int {
	return regime.TotalCoverageDays + (regime.W+regime.R+regime.I)*6 + 20
}

// Build 构建排班
// 入参越界一律钳制；找不到完美相位时返回近似解及其诊断，
// 由验证器/调用方将残余违规以告警形式呈现，而非报错
func (b *Builder) Build(ctx context.Context, params model.Regime) (*model.ScheduleResult, error) {
	start := time.Now()
	regime := params.Clamp()
	horizon := Horizon(regime)

	b.logger.StartBuild(regime.W, regime.R, regime.I, regime.TotalCoverageDays, horizon)

	sol, err := b.solver.Solve(ctx, regime, horizon)
	if err != nil {
		return nil, err
	}

	starts := [model.UnitCount]int{0, sol.Offset2, sol.Offset3}

	// 展开全量状态矩阵与逐日顶岗数
	var states [model.UnitCount][]model.DayState
	for u := 0; u < model.UnitCount; u++ {
		states[u] = make([]model.DayState, horizon)
		for t := 0; t < horizon; t++ {
			states[u][t] = StateAt(t, starts[u], regime.W, regime.R, regime.I)
		}
	}
	pCount := make([]int, horizon)
	for t := 0; t < horizon; t++ {
		for u := 0; u < model.UnitCount; u++ {
			if states[u][t].Covers() {
				pCount[t]++
			}
		}
	}

	// 前向累计双班生产天数，在达标当天（含）裁剪；
	// 模拟期内达不到目标时整段返回，欠覆盖交由诊断和验证器暴露
	days := horizon
	covered := 0
	for t := 0; t < horizon; t++ {
		if pCount[t] == 2 {
			covered++
			if covered >= regime.TotalCoverageDays {
				days = t + 1
				break
			}
		}
	}

	result := &model.ScheduleResult{
		Params:      regime,
		Starts:      starts,
		Days:        days,
		Names:       [model.UnitCount]string{"S1", "S2", "S3"},
		PCount:      pCount[:days],
		Diagnostics: sol.Diagnostics,
	}
	for u := 0; u < model.UnitCount; u++ {
		result.States[u] = states[u][:days]
	}

	b.logger.BuildComplete(b.solver.Name(), days, sol.Diagnostics.Score, sol.Diagnostics.IsPerfect, time.Since(start))
	if !sol.Diagnostics.IsPerfect {
		b.logger.ImperfectSolution(sol.Diagnostics.ThreeProducingDays, sol.Diagnostics.NotTwoAfterStartDays)
	}

	return result, nil
}
