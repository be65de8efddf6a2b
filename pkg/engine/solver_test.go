package engine

import (
	"context"
	"reflect"
	"testing"

	"github.com/lunban/lunban/pkg/model"
)

func TestBruteForceSolver_Solve(t *testing.T) {
	tests := []struct {
		name            string
		regime          model.Regime
		expectedOffset2 int
		expectedOffset3 int
		expectedScore   int
		expectedNotTwo  int
	}{
		{
			name:            "上14休7带培5",
			regime:          model.Regime{W: 14, R: 7, I: 5, TotalCoverageDays: 90},
			expectedOffset2: 7,
			expectedOffset3: 14,
			expectedScore:   91,
			expectedNotTwo:  7,
		},
		{
			name:            "上10休5带培2",
			regime:          model.Regime{W: 10, R: 5, I: 2, TotalCoverageDays: 90},
			expectedOffset2: 5,
			expectedOffset3: 10,
			expectedScore:   65,
			expectedNotTwo:  5,
		},
	}

	solver := NewBruteForceSolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			horizon := Horizon(tt.regime)
			sol, err := solver.Solve(context.Background(), tt.regime, horizon)
			if err != nil {
				t.Fatalf("求解失败: %v", err)
			}
			if sol.Offset2 != tt.expectedOffset2 || sol.Offset3 != tt.expectedOffset3 {
				t.Errorf("错位 = (%d, %d), 期望 (%d, %d)",
					sol.Offset2, sol.Offset3, tt.expectedOffset2, tt.expectedOffset3)
			}
			if sol.Diagnostics.Score != tt.expectedScore {
				t.Errorf("评分 = %d, 期望 %d", sol.Diagnostics.Score, tt.expectedScore)
			}
			if sol.Diagnostics.NotTwoAfterStartDays != tt.expectedNotTwo {
				t.Errorf("非双班天数 = %d, 期望 %d", sol.Diagnostics.NotTwoAfterStartDays, tt.expectedNotTwo)
			}
			if sol.Diagnostics.ThreeProducingDays != 0 {
				t.Errorf("三班同岗天数 = %d, 期望 0", sol.Diagnostics.ThreeProducingDays)
			}
			if sol.Diagnostics.FirstProducingDay != 1 {
				t.Errorf("首顶岗日 = %d, 期望 1（上岗日次日进入带培）", sol.Diagnostics.FirstProducingDay)
			}
		})
	}
}

func TestBruteForceSolver_ExhaustsSpaceWithoutPerfect(t *testing.T) {
	// 爬坡阶段必然存在非双班日，完美解不存在，求解器应穷尽全空间
	regime := model.Regime{W: 14, R: 7, I: 5, TotalCoverageDays: 90}
	horizon := Horizon(regime)
	maxOffset := MaxOffset(regime, horizon)

	sol, err := NewBruteForceSolver().Solve(context.Background(), regime, horizon)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if sol.Diagnostics.IsPerfect {
		t.Error("不应存在完美解")
	}
	expected := (maxOffset + 1) * (maxOffset + 1)
	if sol.Candidates != expected {
		t.Errorf("候选数 = %d, 期望 %d", sol.Candidates, expected)
	}
}

func TestBruteForceSolver_Deterministic(t *testing.T) {
	regime := model.Regime{W: 10, R: 5, I: 2, TotalCoverageDays: 60}
	horizon := Horizon(regime)
	solver := NewBruteForceSolver()

	first, err := solver.Solve(context.Background(), regime, horizon)
	if err != nil {
		t.Fatalf("首次求解失败: %v", err)
	}
	second, err := solver.Solve(context.Background(), regime, horizon)
	if err != nil {
		t.Fatalf("二次求解失败: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("同参数两次求解结果不一致: %+v vs %+v", first, second)
	}
}

func TestBruteForceSolver_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	regime := model.Regime{W: 14, R: 7, I: 5, TotalCoverageDays: 90}
	_, err := NewBruteForceSolver().Solve(ctx, regime, Horizon(regime))
	if err == nil {
		t.Fatal("已取消的上下文应返回错误")
	}
	if err != context.Canceled {
		t.Errorf("错误 = %v, 期望 context.Canceled", err)
	}
}

func TestBruteForceSolver_DegenerateHorizon(t *testing.T) {
	// 模拟期为0时走保底分支：错开一个在岗块
	regime := model.Regime{W: 14, R: 7, I: 5}
	sol, err := NewBruteForceSolver().Solve(context.Background(), regime, 0)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if sol.Offset2 != 0 || sol.Offset3 != regime.W+1 {
		t.Errorf("保底错位 = (%d, %d), 期望 (0, %d)", sol.Offset2, sol.Offset3, regime.W+1)
	}
}

func TestMaxOffset(t *testing.T) {
	tests := []struct {
		name     string
		regime   model.Regime
		horizon  int
		expected int
	}{
		{"常规上界", model.Regime{W: 14, R: 7, I: 5}, 266, 98},
		{"受模拟期限制", model.Regime{W: 14, R: 7, I: 5}, 50, 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxOffset(tt.regime, tt.horizon); got != tt.expected {
				t.Errorf("MaxOffset = %d, 期望 %d", got, tt.expected)
			}
		})
	}
}
