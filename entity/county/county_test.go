package county

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feudalsim/feudalsim-oss/clock"
	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/registry"
	"github.com/feudalsim/feudalsim-oss/utils/config"
	"github.com/feudalsim/feudalsim-oss/utils/input"
)

// stubCtx 仅提供注册表的任务上下文桩
type stubCtx struct {
	reg *registry.Registry
}

func (s *stubCtx) Clock() *clock.Clock                      { return nil }
func (s *stubCtx) Registry() *registry.Registry             { return s.reg }
func (s *stubCtx) CountyManager() entity.ICountyManager     { return nil }
func (s *stubCtx) ProvinceManager() entity.IProvinceManager { return nil }
func (s *stubCtx) RealmManager() entity.IRealmManager       { return nil }
func (s *stubCtx) Prices() *entity.PriceTable               { return nil }
func (s *stubCtx) MarketCounty() entity.ICounty             { return nil }
func (s *stubCtx) RuntimeConfig() *config.RuntimeConfig     { return nil }

func testRegistryCtx(t *testing.T) *stubCtx {
	reg, err := registry.New()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return &stubCtx{reg: reg}
}

func newTestCounty(t *testing.T, pb *input.County) *County {
	return newCounty(testRegistryCtx(t), pb)
}

func TestSatisfactionEMA(t *testing.T) {
	c := newTestCounty(t, &input.County{ID: 0, Name: "c0", Population: 100})
	assert.Equal(t, 1.0, c.Satisfaction())

	c.UpdateSatisfaction(0, 0)
	assert.InDelta(t, 1-satEMA, c.Satisfaction(), 1e-12)
	assert.InDelta(t, 1-satEMA, c.BasicSatisfaction(), 1e-12)

	// 持续归零输入时单调下降
	prev := c.Satisfaction()
	for i := 0; i < 50; i++ {
		c.UpdateSatisfaction(0, 0)
		assert.Less(t, c.Satisfaction(), prev)
		prev = c.Satisfaction()
	}
}

func TestExtractionWorkshareLagsOneDay(t *testing.T) {
	c := newTestCounty(t, &input.County{ID: 0, Name: "c0", Population: 100})
	// 首日无历史用工
	assert.Equal(t, 1.0, c.ExtractionWorkshare())

	c.AddFacilityWorkers(25)
	// 当日用工不影响当日采集
	assert.Equal(t, 1.0, c.ExtractionWorkshare())

	c.BeginTick()
	assert.InDelta(t, 0.75, c.ExtractionWorkshare(), 1e-12)
	c.BeginTick()
	// 次日未用工，份额回满
	assert.Equal(t, 1.0, c.ExtractionWorkshare())
}

func TestMigrationBuffer(t *testing.T) {
	c := newTestCounty(t, &input.County{ID: 0, Name: "c0", Population: 100})
	c.QueueArrival(5)
	c.QueueDeparture(2)
	assert.Equal(t, 100.0, c.Population())
	c.ApplyMigration()
	assert.Equal(t, 103.0, c.Population())
	// 结算后缓冲清空
	c.ApplyMigration()
	assert.Equal(t, 103.0, c.Population())
}

func TestBeginTickResets(t *testing.T) {
	c := newTestCounty(t, &input.County{
		ID: 0, Name: "c0", Population: 100,
		Stock: map[string]float64{"wheat": 50},
	})
	c.InputDemand()[registry.Flour] = 7
	c.Production()[registry.Wheat] = 3
	c.Facility(registry.Mill).Throughput = 2

	c.BeginTick()
	assert.Zero(t, c.InputDemand()[registry.Flour])
	assert.Zero(t, c.Production()[registry.Wheat])
	assert.Zero(t, c.Facility(registry.Mill).Throughput)
	// 库存跨日持久
	assert.Equal(t, 50.0, c.Stock()[registry.Wheat])
}

func TestAdjacentSorted(t *testing.T) {
	c := newTestCounty(t, &input.County{
		ID: 0, Name: "c0", Population: 100,
		Adjacent: []int32{5, 1, 3},
	})
	assert.Equal(t, []int32{1, 3, 5}, c.AdjacentIDs())
}
