package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feudalsim/feudalsim-oss/registry"
)

func TestSpoilageMonthlyDecay(t *testing.T) {
	w := singleRealmWorld(testCounty(0, 100, map[string]float64{
		"bread": 100,
		"wool":  100, // 无损耗率
		"tools": 100, // 耐用品，磨损在消费阶段结算
	}))
	w.Provinces[0].Granary = map[string]float64{"wheat": 1000}
	ctx := newTestContext(t, w)
	spoilage := NewSpoilageSystem(ctx)
	spoilage.Update()

	c := ctx.CountyManager().Get(0)
	assert.InDelta(t, 100*math.Pow(0.95, 30), c.Stock()[registry.Bread], 1e-9)
	assert.InDelta(t, 100.0, c.Stock()[registry.Wool], 1e-9)
	assert.InDelta(t, 100.0, c.Stock()[registry.Tools], 1e-9)

	p := ctx.ProvinceManager().Get(0)
	assert.InDelta(t, 1000*math.Pow(0.998, 30), p.Granary()[registry.Wheat], 1e-9)
}

func TestSpoilageInterval(t *testing.T) {
	ctx := newTestContext(t, singleRealmWorld(testCounty(0, 100, nil)))
	spoilage := NewSpoilageSystem(ctx)
	assert.Equal(t, int32(30), spoilage.Interval())
}
