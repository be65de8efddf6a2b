package validator

import (
	"context"
	"testing"

	"github.com/lunban/lunban/pkg/engine"
	"github.com/lunban/lunban/pkg/model"
)

func TestValidate_CleanSchedule(t *testing.T) {
	tests := []struct {
		name   string
		params model.Regime
	}{
		{"上14休7带培5目标90天", model.Regime{W: 14, R: 7, I: 5, TotalCoverageDays: 90}},
		{"上10休5带培2目标90天", model.Regime{W: 10, R: 5, I: 2, TotalCoverageDays: 90}},
	}

	builder := engine.NewBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := builder.Build(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("构建失败: %v", err)
			}
			if alerts := Validate(result); len(alerts) != 0 {
				t.Errorf("干净排班出现 %d 条告警: %v", len(alerts), Messages(alerts))
			}
		})
	}
}

func TestValidate_ImperfectSchedule(t *testing.T) {
	// 短在岗块重带培的制度无法保持双班，验证器应逐日暴露违规
	result, err := engine.NewBuilder().Build(context.Background(), model.Regime{W: 1, R: 2, I: 5, TotalCoverageDays: 10})
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	alerts := Validate(result)
	if len(alerts) != 22 {
		t.Errorf("告警数 = %d, 期望 22", len(alerts))
	}
	for _, a := range alerts {
		if a.Type == AlertThreeProducing {
			t.Errorf("不应出现三班同岗告警: %s", a.Message)
		}
	}
}

func TestValidate_ThreeProducing(t *testing.T) {
	result := &model.ScheduleResult{
		Days:   1,
		Names:  [model.UnitCount]string{"S1", "S2", "S3"},
		PCount: []int{3},
		States: [model.UnitCount][]model.DayState{
			{model.StateProducing},
			{model.StateProducing},
			{model.StateProducing},
		},
	}

	alerts := Validate(result)
	if len(alerts) != 1 {
		t.Fatalf("告警数 = %d, 期望 1", len(alerts))
	}
	if alerts[0].Type != AlertThreeProducing || alerts[0].Day != 1 {
		t.Errorf("告警 = %+v, 期望第1天三班同岗", alerts[0])
	}
}

func TestValidate_UnderCoverage(t *testing.T) {
	// 首个双班日之后缺岗：第2天单班、第3天无班
	result := &model.ScheduleResult{
		Days:   4,
		Names:  [model.UnitCount]string{"S1", "S2", "S3"},
		PCount: []int{2, 1, 0, 2},
		States: [model.UnitCount][]model.DayState{
			{model.StateProducing, model.StateProducing, model.StateEmpty, model.StateProducing},
			{model.StateProducing, model.StateEmpty, model.StateEmpty, model.StateProducing},
			{model.StateEmpty, model.StateEmpty, model.StateEmpty, model.StateEmpty},
		},
	}

	alerts := Validate(result)
	if len(alerts) != 2 {
		t.Fatalf("告警数 = %d, 期望 2: %v", len(alerts), Messages(alerts))
	}
	for _, a := range alerts {
		if a.Type != AlertUnderCoverage {
			t.Errorf("告警类型 = %q, 期望缺岗", a.Type)
		}
	}
	if alerts[0].Day != 2 || alerts[1].Day != 3 {
		t.Errorf("告警日序 = %d, %d, 期望 2, 3", alerts[0].Day, alerts[1].Day)
	}
}

func TestValidate_BadTransition(t *testing.T) {
	tests := []struct {
		name string
		a, b model.DayState
	}{
		{"上岗接上岗", model.StateStandup, model.StateStandup},
		{"上岗接撤岗", model.StateStandup, model.StateWinddown},
		{"撤岗接上岗", model.StateWinddown, model.StateStandup},
		{"带培接上岗", model.StateInduction, model.StateStandup},
		{"休息接带培", model.StateRest, model.StateInduction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &model.ScheduleResult{
				Days:   2,
				Names:  [model.UnitCount]string{"S1", "S2", "S3"},
				PCount: []int{0, 0},
				States: [model.UnitCount][]model.DayState{
					{tt.a, tt.b},
					{model.StateEmpty, model.StateEmpty},
					{model.StateEmpty, model.StateEmpty},
				},
			}

			alerts := Validate(result)
			if len(alerts) != 1 {
				t.Fatalf("告警数 = %d, 期望 1", len(alerts))
			}
			if alerts[0].Type != AlertBadTransition || alerts[0].Unit != 1 || alerts[0].Day != 1 {
				t.Errorf("告警 = %+v, 期望班组1第1天非法跳转", alerts[0])
			}
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	if alerts := Validate(nil); alerts == nil || len(alerts) != 0 {
		t.Errorf("nil结果应返回空告警切片, 实际 %v", alerts)
	}
	if alerts := Validate(&model.ScheduleResult{}); len(alerts) != 0 {
		t.Errorf("空结果应无告警, 实际 %v", alerts)
	}
}

func TestFirstDoubleDay(t *testing.T) {
	tests := []struct {
		name     string
		pCount   []int
		expected int
	}{
		{"爬坡后双班", []int{0, 1, 2, 2}, 2},
		{"首日即双班", []int{2, 2}, 0},
		{"从未双班", []int{0, 1, 3}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &model.ScheduleResult{Days: len(tt.pCount), PCount: tt.pCount}
			if got := FirstDoubleDay(result); got != tt.expected {
				t.Errorf("FirstDoubleDay = %d, 期望 %d", got, tt.expected)
			}
		})
	}
}
