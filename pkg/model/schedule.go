package model

// UnitCount 班组数量固定为3（两班生产、一班轮休）
const UnitCount = 3

// Diagnostics 求解诊断信息
// 每次求解生成一份，随结果返回后不再修改
type Diagnostics struct {
	FirstProducingDay    int  `json:"first_producing_day"`     // 首个有班组顶岗的日子，-1表示没有
	ThreeProducingDays   int  `json:"three_producing_days"`    // 三班同时顶岗的天数（禁止状态）
	NotTwoAfterStartDays int  `json:"not_two_after_start_days"` // 起始日后顶岗数不等于2的天数
	Score                int  `json:"score"`                   // 综合评分（越低越好）
	IsPerfect            bool `json:"is_perfect"`              // 是否为完美解
}

// ScheduleResult 排班结果
// States 为 3×Days 的状态矩阵，PCount 为逐日顶岗班组数
type ScheduleResult struct {
	Params      Regime               `json:"params"`
	Starts      [UnitCount]int       `json:"starts"`
	Days        int                  `json:"days"`
	Names       [UnitCount]string    `json:"names"`
	States      [UnitCount][]DayState `json:"states"`
	PCount      []int                `json:"p_count"`
	Diagnostics Diagnostics          `json:"diagnostics"`
}

// CoveredDays 返回恰好两班顶岗的天数
func (r *ScheduleResult) CoveredDays() int {
	n := 0
	for _, c := range r.PCount {
		if c == 2 {
			n++
		}
	}
	return n
}

// StateOn 返回某班组在某天的状态，越界按空白处理
func (r *ScheduleResult) StateOn(unit, day int) DayState {
	if unit < 0 || unit >= UnitCount || day < 0 || day >= r.Days {
		return StateEmpty
	}
	return r.States[unit][day]
}
