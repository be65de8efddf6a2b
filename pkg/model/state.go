// Package model 定义轮班引擎的核心数据模型
package model

// DayState 某班组在某一天的状态
// 采用单字母编码，便于前端渲染和紧凑存储
type DayState string

const (
	StateEmpty     DayState = ""  // 班组时间线尚未开始
	StateStandup   DayState = "S" // 上岗过渡日（进入在岗块的第一天）
	StateInduction DayState = "I" // 带培日（仅出现在首个在岗块）
	StateProducing DayState = "P" // 生产日
	StateWinddown  DayState = "B" // 撤岗过渡日（离开在岗块的最后一天）
	StateRest      DayState = "D" // 纯休息日
)

// AllStates 返回全部状态（按展示顺序）
func AllStates() []DayState {
	return []DayState{StateEmpty, StateStandup, StateInduction, StateProducing, StateWinddown, StateRest}
}

// IsValid 检查是否为合法状态
func (s DayState) IsValid() bool {
	switch s {
	case StateEmpty, StateStandup, StateInduction, StateProducing, StateWinddown, StateRest:
		return true
	}
	return false
}

// Covers 检查该状态是否计入当日顶岗人数
// 带培日班组同样在岗顶班，因此与生产日一并计入覆盖
func (s DayState) Covers() bool {
	return s == StateProducing || s == StateInduction
}

// Color 返回状态对应的展示颜色（全映射，未知状态按空白处理）
func (s DayState) Color() string {
	switch s {
	case StateStandup:
		return "blue"
	case StateInduction:
		return "amber"
	case StateProducing:
		return "green"
	case StateWinddown:
		return "red"
	case StateRest:
		return "gray"
	default:
		return "white"
	}
}

// Label 返回状态的中文名称
func (s DayState) Label() string {
	switch s {
	case StateStandup:
		return "上岗"
	case StateInduction:
		return "带培"
	case StateProducing:
		return "生产"
	case StateWinddown:
		return "撤岗"
	case StateRest:
		return "休息"
	default:
		return "空白"
	}
}

// LegendEntry 图例条目
type LegendEntry struct {
	State DayState `json:"state"`
	Label string   `json:"label"`
	Color string   `json:"color"`
}

// Legend 返回完整的状态图例（供渲染层使用）
func Legend() []LegendEntry {
	states := AllStates()
	entries := make([]LegendEntry, 0, len(states))
	for _, s := range states {
		entries = append(entries, LegendEntry{State: s, Label: s.Label(), Color: s.Color()})
	}
	return entries
}
