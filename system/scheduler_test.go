package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSystem 记录执行日的测试系统
type fakeSystem struct {
	name     string
	interval int32
	runs     int
}

func (f *fakeSystem) Name() string    { return f.name }
func (f *fakeSystem) Interval() int32 { return f.interval }
func (f *fakeSystem) Update()         { f.runs++ }

func TestSchedulerCadence(t *testing.T) {
	ctx := newTestContext(t, singleRealmWorld(testCounty(0, 100, nil)))
	daily := &fakeSystem{name: "daily", interval: 1}
	monthly := &fakeSystem{name: "monthly", interval: 30}
	sched := NewScheduler(ctx, daily, monthly)

	for day := int32(0); day < 60; day++ {
		ctx.Clock().Day = day
		sched.Step()
	}

	assert.Equal(t, 60, daily.runs)
	// 第0天与第30天
	assert.Equal(t, 2, monthly.runs)

	stats := sched.Stats()
	assert.Equal(t, int64(60), stats["daily"].Count)
	assert.Equal(t, int64(2), stats["monthly"].Count)
}

func TestSchedulerOrder(t *testing.T) {
	// 同一天内按注册顺序执行
	ctx := newTestContext(t, singleRealmWorld(testCounty(0, 100, nil)))
	var order []string
	mk := func(name string) *orderedSystem {
		return &orderedSystem{name: name, order: &order}
	}
	sched := NewScheduler(ctx, mk("economy"), mk("fiscal"), mk("interrealm"))
	sched.Step()
	assert.Equal(t, []string{"economy", "fiscal", "interrealm"}, order)
}

type orderedSystem struct {
	name  string
	order *[]string
}

func (o *orderedSystem) Name() string    { return o.name }
func (o *orderedSystem) Interval() int32 { return 1 }
func (o *orderedSystem) Update()         { *o.order = append(*o.order, o.name) }
