package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feudalsim/feudalsim-oss/utils/config"
)

func TestAccumulateFractional(t *testing.T) {
	c := New(config.ControlStep{Start: 0, Total: 100, DaySeconds: 1})
	assert.Equal(t, int32(0), c.Accumulate(0.4))
	assert.Equal(t, int32(1), c.Accumulate(0.7)) // 0.4+0.7 跨过1个天边界
	assert.Equal(t, int32(2), c.Accumulate(1.95))
}

func TestAccumulateFrameCap(t *testing.T) {
	// 单帧超过上限：只推进FRAME_CAP天，剩余时间被丢弃
	c := New(config.ControlStep{Start: 0, Total: 1000, DaySeconds: 1, MaxDaysPerFrame: 8})
	assert.Equal(t, int32(8), c.Accumulate(100))
	assert.Equal(t, int32(0), c.Accumulate(0))
}

func TestAccumulateEndClamp(t *testing.T) {
	c := New(config.ControlStep{Start: 0, Total: 3, DaySeconds: 1})
	c.Day = 2
	assert.Equal(t, int32(1), c.Accumulate(5))
	c.Day = 3
	assert.True(t, c.Done())
	assert.Equal(t, int32(0), c.Accumulate(5))
}

func TestCalendar(t *testing.T) {
	c := New(config.ControlStep{Start: 0, Total: 10000})
	assert.Equal(t, int32(1), c.Year())
	assert.Equal(t, int32(1), c.Month())
	assert.Equal(t, int32(1), c.DayOfMonth())

	c.Day = 394 // 第2年，第2月，第5天
	assert.Equal(t, int32(2), c.Year())
	assert.Equal(t, int32(2), c.Month())
	assert.Equal(t, int32(5), c.DayOfMonth())
	assert.Equal(t, "Day 394 (Year 2, Month 2, Day 5)", c.String())
}
