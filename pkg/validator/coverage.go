// Package validator 提供排班结果的事后校验
package validator

import (
	"fmt"

	"github.com/lunban/lunban/pkg/model"
)

// AlertType 告警类型
type AlertType string

const (
	AlertThreeProducing AlertType = "three_producing" // 三班同时顶岗
	AlertUnderCoverage  AlertType = "under_coverage"  // 双班起始后顶岗不足
	AlertBadTransition  AlertType = "bad_transition"  // 非法的日间状态跳转
)

// Alert 告警信息
// Message 为面向用户的可读描述，其余字段供程序化处理
type Alert struct {
	Type     AlertType `json:"type"`
	Severity string    `json:"severity"` // error/warning
	Unit     int       `json:"unit"`     // 班组序号（1起），覆盖类告警为0
	Day      int       `json:"day"`      // 日序（1起）
	Message  string    `json:"message"`
}

// 相邻两天的禁止状态对
// 上岗→上岗、上岗→撤岗、撤岗→上岗、带培→上岗、休息→带培
var forbiddenTransitions = map[[2]model.DayState]bool{
	{model.StateStandup, model.StateStandup}:   true,
	{model.StateStandup, model.StateWinddown}:  true,
	{model.StateWinddown, model.StateStandup}:  true,
	{model.StateInduction, model.StateStandup}: true,
	{model.StateRest, model.StateInduction}:    true,
}

// Validate 校验排班结果，返回有序告警列表（空切片代表无违规）
// 依次检查：三班同时顶岗、双班起始日后的缺岗、各班组的状态跳转。
// 不产生副作用，永不报错
func Validate(result *model.ScheduleResult) []Alert {
	alerts := make([]Alert, 0)
	if result == nil || result.Days <= 0 {
		return alerts
	}

	// 三班同时顶岗属于禁止状态，逐日报错
	for t := 0; t < result.Days && t < len(result.PCount); t++ {
		if result.PCount[t] == 3 {
			alerts = append(alerts, Alert{
				Type:     AlertThreeProducing,
				Severity: "error",
				Day:      t + 1,
				Message:  fmt.Sprintf("第%d天出现三班同时顶岗", t+1),
			})
		}
	}

	// 自首个双班生产日起，顶岗数必须保持为2。
	// 此处的起始口径（==2）刻意区别于求解诊断的 FirstProducingDay（>0），
	// 容忍起步阶段的爬坡
	firstDouble := FirstDoubleDay(result)
	if firstDouble >= 0 {
		for t := firstDouble; t < result.Days && t < len(result.PCount); t++ {
			switch result.PCount[t] {
			case 1:
				alerts = append(alerts, Alert{
					Type:     AlertUnderCoverage,
					Severity: "error",
					Day:      t + 1,
					Message:  fmt.Sprintf("第%d天仅有一班顶岗", t+1),
				})
			case 0:
				alerts = append(alerts, Alert{
					Type:     AlertUnderCoverage,
					Severity: "error",
					Day:      t + 1,
					Message:  fmt.Sprintf("第%d天无班组顶岗", t+1),
				})
			}
		}
	}

	// 逐班组检查相邻两天的状态跳转，空白日不参与
	for u := 0; u < model.UnitCount; u++ {
		states := result.States[u]
		for t := 0; t+1 < len(states); t++ {
			a, b := states[t], states[t+1]
			if a == model.StateEmpty || b == model.StateEmpty {
				continue
			}
			if forbiddenTransitions[[2]model.DayState{a, b}] {
				alerts = append(alerts, Alert{
					Type:     AlertBadTransition,
					Severity: "error",
					Unit:     u + 1,
					Day:      t + 1,
					Message:  fmt.Sprintf("班组%s第%d~%d天出现非法跳转 %s→%s", result.Names[u], t+1, t+2, a.Label(), b.Label()),
				})
			}
		}
	}

	return alerts
}

// FirstDoubleDay 返回首个恰好两班顶岗的日序（0起），没有则为-1
func FirstDoubleDay(result *model.ScheduleResult) int {
	for t, c := range result.PCount {
		if c == 2 {
			return t
		}
	}
	return -1
}

// Messages 提取告警的可读文本
func Messages(alerts []Alert) []string {
	msgs := make([]string, 0, len(alerts))
	for _, a := range alerts {
		msgs = append(msgs, a.Message)
	}
	return msgs
}
