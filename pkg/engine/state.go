// Package engine 提供三班两运转排班的核心计算
//
// 制度口径（v1，唯一实现）：上岗日位于在岗块起始，名义休息期 R 中
// 扣除撤岗、上岗两个过渡日，纯休息为 max(0, R-2) 天。
package engine

import "github.com/lunban/lunban/pkg/model"

// segment 首循环中的一段连续状态
type segment struct {
	state model.DayState
	days  int
}

// firstCycleSegments 返回首循环的分段表
// 顺序：上岗1天、带培I天、生产max(0,W-I)天、撤岗1天、纯休天、上岗1天
func firstCycleSegments(w, r, i int) [6]segment {
	realRest := r - 2
	if realRest < 0 {
		realRest = 0
	}
	producing := w - i
	if producing < 0 {
		producing = 0
	}
	return [6]segment{
		{model.StateStandup, 1},
		{model.StateInduction, i},
		{model.StateProducing, producing},
		{model.StateWinddown, 1},
		{model.StateRest, realRest},
		{model.StateStandup, 1},
	}
}

// StateAt 返回某班组在第 t 天的状态
// 纯函数：对任意整数 t 确定且无副作用。startDay 为该班组时间线
// 的起始日（首个上岗日），t 在此之前一律为空白
func StateAt(t, startDay, w, r, i int) model.DayState {
	if t < startDay {
		return model.StateEmpty
	}

	realRest := r - 2
	if realRest < 0 {
		realRest = 0
	}
	cycleLen := w + 1 + realRest + 1
	if cycleLen <= 0 {
		// 钳制后 W≥1 保证不会发生，防御性兜底
		return model.StateEmpty
	}

	cursor := startDay
	for _, seg := range firstCycleSegments(w, r, i) {
		if t < cursor+seg.days {
			return seg.state
		}
		cursor += seg.days
	}

	// 第二个上岗日之后进入稳定循环：生产W、撤岗1、纯休、上岗1
	pos := ((t-cursor)%cycleLen + cycleLen) % cycleLen
	switch {
	case pos < w:
		return model.StateProducing
	case pos == w:
		return model.StateWinddown
	case pos < w+1+realRest:
		return model.StateRest
	default:
		return model.StateStandup
	}
}

// SecondStandupDay 返回第二个上岗日（稳定循环起点）的日序
func SecondStandupDay(startDay, w, r, i int) int {
	day := startDay
	segs := firstCycleSegments(w, r, i)
	for k := 0; k < len(segs)-1; k++ {
		day += segs[k].days
	}
	return day
}

// coverProfile 预计算相对于班组自身起始日的顶岗轮廓
// StateAt 只依赖 t-startDay，因此同一制度下所有班组共用一份轮廓
func coverProfile(w, r, i, length int) []bool {
	profile := make([]bool, length)
	for d := 0; d < length; d++ {
		profile[d] = StateAt(d, 0, w, r, i).Covers()
	}
	return profile
}
