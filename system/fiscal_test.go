package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/registry"
	"github.com/feudalsim/feudalsim-oss/utils/config"
	"github.com/feudalsim/feudalsim-oss/utils/worldgen"
)

// totalMoney 全体金库之和
func totalMoney(ctx entity.ITaskContext) float64 {
	sum := 0.0
	for _, c := range ctx.CountyManager().Counties() {
		sum += c.Treasury()
	}
	for _, p := range ctx.ProvinceManager().Provinces() {
		sum += p.Treasury()
	}
	for _, r := range ctx.RealmManager().Realms() {
		sum += r.Treasury()
	}
	return sum
}

func TestMinting(t *testing.T) {
	// 10kg金矿石，1%收得率×1000Cr/kg ⇒ 100 Crown
	w := singleRealmWorld(testCounty(0, 100, map[string]float64{
		"goldOre": 10,
	}))
	ctx := newTestContext(t, w)
	fiscal := NewFiscalSystem(ctx)
	fiscal.Update()

	c := ctx.CountyManager().Get(0)
	r := ctx.RealmManager().Get(0)
	assert.Zero(t, c.Stock()[registry.GoldOre])
	assert.Zero(t, r.Stockpile()[registry.GoldOre])
	assert.InDelta(t, 100.0, fiscal.Minted(), 1e-9)
	assert.InDelta(t, 100.0, r.Treasury(), 1e-9)
}

func TestTradeExcessDemandClearing(t *testing.T) {
	// 供给50，需求60+20 ⇒ 成交50；按需求比例配给，卖方全额出清
	market := testCounty(0, 10, nil)
	seller := testCounty(1, 10, map[string]float64{"stone": 50})
	buyer1 := testCounty(2, 10, nil)
	buyer1.Treasury = 1e6
	buyer2 := testCounty(3, 10, nil)
	buyer2.Treasury = 1e6
	ctx := newTestContext(t, singleRealmWorld(market, seller, buyer1, buyer2))
	fiscal := NewFiscalSystem(ctx)

	cs := ctx.CountyManager().Counties()
	cs[2].InputDemand()[registry.Stone] = 60
	cs[3].InputDemand()[registry.Stone] = 20

	before := totalMoney(ctx)
	fiscal.clearScope(tradeScope{counties: cs})

	assert.InDelta(t, 0.0, cs[1].Stock()[registry.Stone], 1e-9)
	assert.InDelta(t, 37.5, cs[2].Stock()[registry.Stone], 1e-9)
	assert.InDelta(t, 12.5, cs[3].Stock()[registry.Stone], 1e-9)
	// 卖方按市价收款
	price := ctx.Prices().Get(registry.Stone)
	assert.InDelta(t, 50*price, cs[1].Treasury(), 1e-9)
	// 手续费汇入市场县，总货币量不变
	assert.InDelta(t, 50*price*marketFeeRate, cs[0].Treasury(), 1e-9)
	assert.InDelta(t, before, totalMoney(ctx), 1e-6)
}

func TestTradeFullClearing(t *testing.T) {
	// 供给100 ≥ 需求50 ⇒ 买方全额满足，卖方按供给比例出清
	market := testCounty(0, 10, nil)
	seller1 := testCounty(1, 10, map[string]float64{"stone": 60})
	seller2 := testCounty(2, 10, map[string]float64{"stone": 40})
	buyer := testCounty(3, 10, nil)
	buyer.Treasury = 1e6
	ctx := newTestContext(t, singleRealmWorld(market, seller1, seller2, buyer))
	fiscal := NewFiscalSystem(ctx)

	cs := ctx.CountyManager().Counties()
	cs[3].InputDemand()[registry.Stone] = 50
	fiscal.clearScope(tradeScope{counties: cs})

	assert.InDelta(t, 50.0, cs[3].Stock()[registry.Stone], 1e-9)
	assert.InDelta(t, 30.0, cs[1].Stock()[registry.Stone], 1e-9)
	assert.InDelta(t, 20.0, cs[2].Stock()[registry.Stone], 1e-9)
}

func TestTradeSurcharges(t *testing.T) {
	// 全球贸易：通行税入买方省，关税入买方王国，手续费入市场县
	market := testCounty(0, 10, nil)
	seller := testCounty(1, 10, map[string]float64{"stone": 100})
	buyer := testCounty(2, 10, nil)
	buyer.Treasury = 1e6
	ctx := newTestContext(t, singleRealmWorld(market, seller, buyer))
	fiscal := NewFiscalSystem(ctx)

	cs := ctx.CountyManager().Counties()
	cs[2].InputDemand()[registry.Stone] = 40
	fiscal.clearScope(tradeScope{
		counties: cs,
		toll:     provinceTollRate,
		tariff:   realmTariffRate,
	})

	price := ctx.Prices().Get(registry.Stone)
	base := 40 * price
	assert.InDelta(t, base*provinceTollRate, ctx.ProvinceManager().Get(0).Treasury(), 1e-9)
	assert.InDelta(t, base*realmTariffRate, ctx.RealmManager().Get(0).Treasury(), 1e-9)
	assert.InDelta(t, base*marketFeeRate, cs[0].Treasury(), 1e-9)
	flows := fiscal.Flows()
	assert.InDelta(t, base*marketFeeRate, flows.Fees, 1e-9)
	assert.InDelta(t, base*provinceTollRate, flows.Tolls, 1e-9)
	assert.InDelta(t, base*realmTariffRate, flows.Tariffs, 1e-9)
	assert.InDelta(t, 1e6-base*(1+marketFeeRate+provinceTollRate+realmTariffRate),
		cs[2].Treasury(), 1e-6)
}

func TestTradeAffordabilityCap(t *testing.T) {
	// 买方支付能力不足时需求被金库截断
	market := testCounty(0, 10, nil)
	seller := testCounty(1, 10, map[string]float64{"stone": 100})
	buyer := testCounty(2, 10, nil)
	buyer.Treasury = 3.0 // 仅够买少量
	ctx := newTestContext(t, singleRealmWorld(market, seller, buyer))
	fiscal := NewFiscalSystem(ctx)

	cs := ctx.CountyManager().Counties()
	cs[2].InputDemand()[registry.Stone] = 50
	fiscal.clearScope(tradeScope{counties: cs})

	price := ctx.Prices().Get(registry.Stone)
	afford := 3.0 / (price * (1 + marketFeeRate))
	assert.InDelta(t, afford, cs[2].Stock()[registry.Stone], 1e-9)
	assert.GreaterOrEqual(t, cs[2].Treasury(), -1e-9)
}

func TestGranaryRequisition(t *testing.T) {
	// 省以6折从盈余县征购主食，向7日储备推进
	w := singleRealmWorld(
		testCounty(0, 100, map[string]float64{"wheat": 5000}),
	)
	w.Provinces[0].Treasury = 1000
	ctx := newTestContext(t, w)
	fiscal := NewFiscalSystem(ctx)

	before := totalMoney(ctx)
	fiscal.fillGranaries()

	p := ctx.ProvinceManager().Get(0)
	// 目标 7×100×0.30=210，首日买入5%缺口=10.5
	assert.InDelta(t, 10.5, p.Granary()[registry.Wheat], 1e-9)
	c := ctx.CountyManager().Get(0)
	price := ctx.Prices().Get(registry.Wheat) * granaryDiscount
	assert.InDelta(t, 10.5*price, c.Treasury(), 1e-9)
	assert.InDelta(t, before, totalMoney(ctx), 1e-9)
}

func TestMoneyConservation(t *testing.T) {
	// 多日推进：总货币量只因铸币增长
	world := worldgen.Generate(&config.Demo{Counties: 16, Provinces: 4, Realms: 2, Seed: 7})
	ctx := newTestContext(t, world)
	econ := NewEconomySystem(ctx)
	fiscal := NewFiscalSystem(ctx)
	inter := NewInterRealmTradeSystem(ctx, econ)

	for day := 0; day < 10; day++ {
		ctx.prepareDay()
		before := totalMoney(ctx)
		econ.Update()
		fiscal.Update()
		inter.Update()
		assert.InDelta(t, before+fiscal.Minted(), totalMoney(ctx), 1e-6)

		// 价格始终在区间内
		for i := 0; i < registry.NumGoods; i++ {
			g := ctx.Registry().Good(registry.GoodID(i))
			price := ctx.Prices().Get(registry.GoodID(i))
			assert.GreaterOrEqual(t, price, g.MinPrice)
			assert.LessOrEqual(t, price, g.MaxPrice)
		}
		// 库存与金库不为负
		for _, c := range ctx.CountyManager().Counties() {
			assert.GreaterOrEqual(t, c.Treasury(), -1e-6)
			for i := 0; i < registry.NumGoods; i++ {
				assert.GreaterOrEqual(t, c.Stock()[i], -1e-6)
			}
		}
	}
}
