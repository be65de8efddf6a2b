// Package scenario 提供场景测试
package scenario

import (
	"context"
	"testing"

	"github.com/lunban/lunban/pkg/engine"
	"github.com/lunban/lunban/pkg/model"
	"github.com/lunban/lunban/pkg/stats"
	"github.com/lunban/lunban/pkg/validator"
)

// TestQuarterRotation 标准季度轮换：上14休7带培5，双班生产90天
func TestQuarterRotation(t *testing.T) {
	builder := engine.NewBuilder()
	result, err := builder.Build(context.Background(), model.Regime{
		W: 14, R: 7, I: 5, TotalCoverageDays: 90,
	})
	if err != nil {
		t.Fatalf("排班构建失败: %v", err)
	}

	t.Logf("起始错位: %v", result.Starts)
	t.Logf("总天数: %d", result.Days)
	t.Logf("评分: %d", result.Diagnostics.Score)

	// 自首个双班日起不得出现三班同岗或缺岗
	alerts := validator.Validate(result)
	if len(alerts) != 0 {
		t.Errorf("出现 %d 条告警: %v", len(alerts), validator.Messages(alerts))
	}

	metrics := stats.NewRotationAnalyzer().Analyze(result)
	t.Logf("双班覆盖率: %.1f%%", metrics.CoverageRate)

	if metrics.DoubleDays != 90 {
		t.Errorf("双班天数 = %d, 期望 90", metrics.DoubleDays)
	}
	if metrics.TripleDays != 0 {
		t.Errorf("三班同岗天数 = %d, 禁止出现", metrics.TripleDays)
	}
	// 双班起始日不可能早于首个顶岗日
	firstDouble := validator.FirstDoubleDay(result)
	if firstDouble < result.Diagnostics.FirstProducingDay {
		t.Errorf("首个双班日 %d 早于首个顶岗日 %d", firstDouble, result.Diagnostics.FirstProducingDay)
	}
	// 双班一经建立不得中断，直至排班末日
	for d := firstDouble; d < result.Days; d++ {
		if result.PCount[d] != 2 {
			t.Fatalf("第%d天在岗数 = %d, 双班建立后必须保持 2", d+1, result.PCount[d])
		}
	}
}

// TestRotationAcrossRegimes 多制度轮换：核对达标天数与告警情况
func TestRotationAcrossRegimes(t *testing.T) {
	tests := []struct {
		name         string
		params       model.Regime
		expectClean  bool
		expectedDays int
	}{
		{"上14休7带培5", model.Regime{W: 14, R: 7, I: 5, TotalCoverageDays: 90}, true, 98},
		{"上10休5带培2", model.Regime{W: 10, R: 5, I: 2, TotalCoverageDays: 90}, true, 96},
		{"上1休2带培5", model.Regime{W: 1, R: 2, I: 5, TotalCoverageDays: 10}, false, 21},
		{"上21休7带培3", model.Regime{W: 21, R: 7, I: 3, TotalCoverageDays: 90}, false, 154},
	}

	builder := engine.NewBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := builder.Build(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("排班构建失败: %v", err)
			}

			if result.Days != tt.expectedDays {
				t.Errorf("总天数 = %d, 期望 %d", result.Days, tt.expectedDays)
			}
			if got := result.CoveredDays(); got != tt.params.TotalCoverageDays {
				t.Errorf("双班生产天数 = %d, 期望 %d", got, tt.params.TotalCoverageDays)
			}

			alerts := validator.Validate(result)
			t.Logf("告警数: %d, 评分: %d", len(alerts), result.Diagnostics.Score)
			if tt.expectClean && len(alerts) != 0 {
				t.Errorf("出现 %d 条告警: %v", len(alerts), validator.Messages(alerts))
			}
			if !tt.expectClean && len(alerts) == 0 {
				t.Error("该制度无法维持双班，应产生告警")
			}
		})
	}
}

// TestRotationUnitSymmetry 班组互换性：三个班组共用同一状态轮廓，仅起始日不同
func TestRotationUnitSymmetry(t *testing.T) {
	result, err := engine.NewBuilder().Build(context.Background(), model.Regime{
		W: 10, R: 5, I: 2, TotalCoverageDays: 60,
	})
	if err != nil {
		t.Fatalf("排班构建失败: %v", err)
	}

	for u := 1; u < model.UnitCount; u++ {
		shift := result.Starts[u] - result.Starts[0]
		for d := result.Starts[u]; d < result.Days; d++ {
			if d-shift >= len(result.States[0]) {
				break
			}
			if result.States[u][d] != result.States[0][d-shift] {
				t.Fatalf("班组%d第%d天 = %q, 与一班平移后的 %q 不一致",
					u+1, d+1, result.States[u][d], result.States[0][d-shift])
			}
		}
	}
}
