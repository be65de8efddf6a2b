package engine

import (
	"context"

	"github.com/lunban/lunban/pkg/model"
)

// PhaseSolver 相位求解器接口
// 给定制度与模拟期，求三个班组的起始日错位，使每天恰好两班顶岗
type PhaseSolver interface {
	// Solve 求解相位方案；找不到完美解时返回得分最低的近似解
	Solve(ctx context.Context, regime model.Regime, horizon int) (*Solution, error)

	// Name 返回求解器名称
	Name() string
}

// Solution 相位求解结果
type Solution struct {
	Offset2     int               `json:"offset2"`
	Offset3     int               `json:"offset3"`
	Candidates  int               `json:"candidates"` // 实际评估的候选数
	Diagnostics model.Diagnostics `json:"diagnostics"`
}

// 评分权重：三班同时顶岗远比缺岗严重，错位量只作轻微惩罚以偏向早对齐
const (
	penaltyThree  = 1000
	penaltyNotTwo = 10
)

// BruteForceSolver 穷举求解器
// 一班固定从第0天开始，对二、三班的起始日做双重升序枚举，
// 复杂度 O(maxOffset² × horizon)，是整个系统的主要开销
type BruteForceSolver struct{}

// NewBruteForceSolver 创建穷举求解器
func NewBruteForceSolver() *BruteForceSolver {
	return &BruteForceSolver{}
}

// Name 返回求解器名称
func (s *BruteForceSolver) Name() string {
	return "BruteForceSolver"
}

// MaxOffset 返回候选起始日的搜索上界
// 约三个周期的错位足以找到相位对齐方案，同时避免无界搜索
func MaxOffset(regime model.Regime, horizon int) int {
	max := (regime.W+regime.R+regime.I)*3 + 20
	if horizon-1 < max {
		max = horizon - 1
	}
	return max
}

// Solve 穷举求解
// 遇到首个完美候选立即返回（按 offset2、offset3 升序，即字典序最小）；
// 否则返回全空间中得分严格最低、先见者优先的候选。
// 每轮外层循环检查一次 ctx，支持协作式取消
func (s *BruteForceSolver) Solve(ctx context.Context, regime model.Regime, horizon int) (*Solution, error) {
	maxOffset := MaxOffset(regime, horizon)
	if maxOffset < 0 || horizon <= 0 {
		// 钳制后 horizon>0 不会走到这里，保底返回一个错开一块的方案
		sc := newScorer(regime, horizon)
		return &Solution{
			Offset2:     0,
			Offset3:     regime.W + 1,
			Diagnostics: sc.score(0, regime.W+1),
		}, nil
	}

	sc := newScorer(regime, horizon)

	var best *Solution
	candidates := 0

	for o2 := 0; o2 <= maxOffset; o2++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for o3 := 0; o3 <= maxOffset; o3++ {
			candidates++
			diag := sc.score(o2, o3)
			if diag.IsPerfect {
				return &Solution{Offset2: o2, Offset3: o3, Candidates: candidates, Diagnostics: diag}, nil
			}
			if best == nil || diag.Score < best.Diagnostics.Score {
				best = &Solution{Offset2: o2, Offset3: o3, Diagnostics: diag}
			}
		}
	}

	best.Candidates = candidates
	return best, nil
}

// scorer 候选评分器
// 状态只依赖 t-startDay，预计算单班顶岗轮廓后按错位查表，
// 与逐候选生成 3×horizon 状态矩阵的语义完全一致
type scorer struct {
	profile []bool
	horizon int
}

func newScorer(regime model.Regime, horizon int) *scorer {
	return &scorer{
		profile: coverProfile(regime.W, regime.R, regime.I, horizon),
		horizon: horizon,
	}
}

// coversAt 班组从 start 日开始时第 t 天是否顶岗
func (sc *scorer) coversAt(t, start int) bool {
	d := t - start
	return d >= 0 && d < len(sc.profile) && sc.profile[d]
}

// score 对候选错位 (0, o2, o3) 评分
func (sc *scorer) score(o2, o3 int) model.Diagnostics {
	diag := model.Diagnostics{FirstProducingDay: -1}

	for t := 0; t < sc.horizon; t++ {
		count := 0
		if sc.coversAt(t, 0) {
			count++
		}
		if sc.coversAt(t, o2) {
			count++
		}
		if sc.coversAt(t, o3) {
			count++
		}

		if count > 0 && diag.FirstProducingDay < 0 {
			diag.FirstProducingDay = t
		}
		if count == 3 {
			diag.ThreeProducingDays++
		}
		if diag.FirstProducingDay >= 0 && count != 2 {
			diag.NotTwoAfterStartDays++
		}
	}

	diag.Score = diag.ThreeProducingDays*penaltyThree + diag.NotTwoAfterStartDays*penaltyNotTwo + abs(o2) + abs(o3)
	diag.IsPerfect = diag.ThreeProducingDays == 0 && diag.NotTwoAfterStartDays == 0
	return diag
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
