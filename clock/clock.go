package clock

import (
	"fmt"

	"github.com/feudalsim/feudalsim-oss/utils/config"
)

const (
	// DaysPerMonth 每月天数
	DaysPerMonth = 30
	// MonthsPerYear 每年月数
	MonthsPerYear = 12
	// DaysPerYear 每年天数
	DaysPerYear = DaysPerMonth * MonthsPerYear
)

// Clock 仿真时钟管理器
// 功能：管理经济模拟的时间推进，以"天"为最小推进单位
// 说明：外部驱动器（墙钟/帧循环）通过Accumulate提交真实时间，
// 时钟按固定步长折算出需要推进的天数，并用单帧上限防止无限追帧
type Clock struct {
	START_DAY int32   // 起始天
	END_DAY   int32   // 结束天，模拟区间[START, END)
	DAY_DT    float64 // 每个模拟天对应的真实秒数
	FRAME_CAP int32   // 单次驱动回调允许推进的最大天数

	Day         int32   // 当前天数
	accumulator float64 // 尚未折算为天的真实时间（秒）
}

// New 根据配置创建新的时钟实例
// 功能：根据全局控制配置初始化时钟
// 参数：stepConfig-控制步配置，包含起始天、总天数、天步长、单帧上限
// 返回：初始化完成的时钟实例
func New(stepConfig config.ControlStep) *Clock {
	dayDT := stepConfig.DaySeconds
	if dayDT <= 0 {
		dayDT = 1
	}
	frameCap := stepConfig.MaxDaysPerFrame
	if frameCap <= 0 {
		frameCap = 8
	}
	c := &Clock{
		START_DAY: stepConfig.Start,
		END_DAY:   stepConfig.Start + stepConfig.Total,
		DAY_DT:    dayDT,
		FRAME_CAP: frameCap,
	}
	c.Init()
	return c
}

// Init 初始化时钟状态
// 说明：重置当前天为起始天，清空时间累加器
func (c *Clock) Init() {
	c.Day = c.START_DAY
	c.accumulator = 0
}

// Accumulate 累积真实时间并折算出需要推进的天数
// 功能：外部驱动器每帧调用一次，返回本帧应推进的天数
// 参数：dt-自上次调用以来经过的真实秒数
// 返回：本帧应推进的天数（不超过FRAME_CAP）
// 算法说明：
// 1. 将dt累加到累加器
// 2. 计算跨越的天边界数量
// 3. 超过单帧上限的部分被丢弃（放弃追帧，而不是无限补算）
func (c *Clock) Accumulate(dt float64) int32 {
	if dt < 0 {
		dt = 0
	}
	c.accumulator += dt
	days := int32(c.accumulator / c.DAY_DT)
	c.accumulator -= float64(days) * c.DAY_DT
	if days > c.FRAME_CAP {
		days = c.FRAME_CAP
		c.accumulator = 0
	}
	if remain := c.END_DAY - c.Day; days > remain {
		days = remain
	}
	if days < 0 {
		days = 0
	}
	return days
}

// Done 是否已到达模拟终点
func (c *Clock) Done() bool {
	return c.Day >= c.END_DAY
}

// Year 当前年份（从1开始）
func (c *Clock) Year() int32 {
	return c.Day/DaysPerYear + 1
}

// Month 当前月份（1-12）
func (c *Clock) Month() int32 {
	return c.Day%DaysPerYear/DaysPerMonth + 1
}

// DayOfMonth 当前月内天数（1-30）
func (c *Clock) DayOfMonth() int32 {
	return c.Day%DaysPerMonth + 1
}

// String 获取时钟的字符串表示
// 返回：格式化的日期字符串（Day X (Year Y, Month M, Day D)）
func (c *Clock) String() string {
	return fmt.Sprintf("Day %d (Year %d, Month %d, Day %d)",
		c.Day, c.Year(), c.Month(), c.DayOfMonth())
}
