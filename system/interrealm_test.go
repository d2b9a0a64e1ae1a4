package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feudalsim/feudalsim-oss/registry"
)

func TestPriceDiscoveryScarcity(t *testing.T) {
	// 需求远超供给时价格上行，但不越过区间上限
	ctx := newTestContext(t, singleRealmWorld(testCounty(0, 10000, nil)))
	econ := NewEconomySystem(ctx)
	inter := NewInterRealmTradeSystem(ctx, econ)
	inter.Update()

	wheat := ctx.Registry().Good(registry.Wheat)
	price := ctx.Prices().Get(registry.Wheat)
	assert.Greater(t, price, wheat.BasePrice)
	assert.LessOrEqual(t, price, wheat.MaxPrice)
}

func TestPriceDiscoveryGlut(t *testing.T) {
	// 供给远超需求时价格下行，但不越过区间下限
	ctx := newTestContext(t, singleRealmWorld(testCounty(0, 10, map[string]float64{
		"wheat": 1e6,
	})))
	econ := NewEconomySystem(ctx)
	inter := NewInterRealmTradeSystem(ctx, econ)
	inter.Update()

	wheat := ctx.Registry().Good(registry.Wheat)
	price := ctx.Prices().Get(registry.Wheat)
	assert.Less(t, price, wheat.BasePrice)
	assert.GreaterOrEqual(t, price, wheat.MinPrice)
}

func TestRoyalOrePriceUntouched(t *testing.T) {
	// 金银矿石无基准价，价格发现不写入
	ctx := newTestContext(t, singleRealmWorld(testCounty(0, 100, nil)))
	econ := NewEconomySystem(ctx)
	inter := NewInterRealmTradeSystem(ctx, econ)
	inter.Update()
	assert.Zero(t, ctx.Prices().Get(registry.GoldOre))
	assert.Zero(t, ctx.Prices().Get(registry.SilverOre))
}

func TestDeficitScan(t *testing.T) {
	// 库存低于当日需求的部分按王国累计
	ctx := newTestContext(t, singleRealmWorld(testCounty(0, 100, nil)))
	econ := NewEconomySystem(ctx)
	inter := NewInterRealmTradeSystem(ctx, econ)
	inter.Update()

	r := ctx.RealmManager().Get(0)
	// 空库存：小麦缺口 = 100×0.30×1.0
	assert.InDelta(t, 30.0, r.Deficit()[registry.Wheat], 1e-9)
	// 盐：人口消费0.01 + 无行政消耗
	assert.InDelta(t, 1.0, r.Deficit()[registry.Salt], 1e-9)
}

func TestDeficitScanDurableAtTarget(t *testing.T) {
	// 存量达标的耐用品仍按当日磨损量记缺口
	ctx := newTestContext(t, singleRealmWorld(testCounty(0, 100, map[string]float64{
		"tools": 100, // 目标 100×1.0，缺口追赶项为0
	})))
	econ := NewEconomySystem(ctx)
	inter := NewInterRealmTradeSystem(ctx, econ)
	inter.scanDeficits()

	r := ctx.RealmManager().Get(0)
	// 磨损 100×0.003；行政消耗 100×0.002 有库存覆盖，不计短缺
	assert.InDelta(t, 0.3, r.Deficit()[registry.Tools], 1e-9)
}

func TestDeficitScanDurableBelowTarget(t *testing.T) {
	// 低于目标的耐用品缺口 = 磨损 + 存量缺口×追赶率，不再重复扣减库存
	ctx := newTestContext(t, singleRealmWorld(testCounty(0, 100, map[string]float64{
		"clothes": 400, // 目标 100×5.0=500
	})))
	econ := NewEconomySystem(ctx)
	inter := NewInterRealmTradeSystem(ctx, econ)
	inter.scanDeficits()

	r := ctx.RealmManager().Get(0)
	want := 400*0.001 + (500-400)*0.05
	assert.InDelta(t, want, r.Deficit()[registry.Clothes], 1e-9)
}
