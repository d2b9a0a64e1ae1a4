package system

import (
	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/registry"
)

const (
	// priceEps 价格发现中供给侧的零除保护
	priceEps = 0.1
	// stockSupplyDays 库存折算为日供给的摊销天数
	stockSupplyDays = 7.0
)

// InterRealmTradeSystem 跨国贸易系统（每日）
// 功能：两项独立工作——缺口汇总与价格发现，自身不执行任何交易
// 说明：价格发现把全球供需折算为单一价格表，是价格的唯一写入方
type InterRealmTradeSystem struct {
	ctx  entity.ITaskContext
	econ *EconomySystem // 提供当日全球产能

	// 当日全球供需（快照输出用）
	demand [registry.NumGoods]float64
	supply [registry.NumGoods]float64
}

// NewInterRealmTradeSystem 创建跨国贸易系统
func NewInterRealmTradeSystem(ctx entity.ITaskContext, econ *EconomySystem) *InterRealmTradeSystem {
	return &InterRealmTradeSystem{ctx: ctx, econ: econ}
}

// Name 系统名
func (s *InterRealmTradeSystem) Name() string { return "interrealm" }

// Interval 执行间隔（天）
func (s *InterRealmTradeSystem) Interval() int32 { return 1 }

// Demand 当日全球需求，按商品索引
func (s *InterRealmTradeSystem) Demand() *[registry.NumGoods]float64 { return &s.demand }

// Supply 当日全球供给，按商品索引
func (s *InterRealmTradeSystem) Supply() *[registry.NumGoods]float64 { return &s.supply }

// Update 执行缺口汇总与价格发现
func (s *InterRealmTradeSystem) Update() {
	s.scanDeficits()
	s.discoverPrices()
}

// countyDailyNeed 县对某商品的每日需求
// 算法说明：主食按理想份额占食物预算，流量消费品按人均消耗率，
// 耐用品按磨损+缺口追赶；另计各级行政实物消耗
func (s *InterRealmTradeSystem) countyDailyNeed(c entity.ICounty, g registry.GoodID) float64 {
	good := s.ctx.Registry().Good(g)
	pop := c.Population()
	need := pop * (good.AdminCounty + good.AdminProvince + good.AdminRealm)
	switch {
	case good.IsStaple():
		need += pop * good.IdealShare * registry.FoodBudget
	case good.IsDurable():
		need += durableDailyNeed(c, g, good)
	case good.Consumption > 0:
		need += pop * good.Consumption
	}
	return need
}

// scanDeficits 缺口汇总
// 算法说明：逐县逐商品计算当日短缺并累计到所属王国。流量商品的
// 短缺 = 当日需求 − 库存；耐用品的磨损+追赶公式本身已内含存量，
// 直接作为短缺量，只有行政实物消耗部分再与库存比较
func (s *InterRealmTradeSystem) scanDeficits() {
	reg := s.ctx.Registry()
	for _, c := range s.ctx.CountyManager().Counties() {
		realm := s.ctx.RealmManager().Get(c.RealmID())
		pop := c.Population()
		stock := c.Stock()
		for i := 0; i < registry.NumGoods; i++ {
			g := registry.GoodID(i)
			good := reg.Good(g)
			admin := pop * (good.AdminCounty + good.AdminProvince + good.AdminRealm)
			var shortfall float64
			if good.IsDurable() {
				shortfall = durableDailyNeed(c, g, good)
				if adminShort := admin - stock[i]; adminShort > 0 {
					shortfall += adminShort
				}
			} else {
				need := admin
				switch {
				case good.IsStaple():
					need += pop * good.IdealShare * registry.FoodBudget
				case good.Consumption > 0:
					need += pop * good.Consumption
				}
				shortfall = need - stock[i]
			}
			if shortfall > 0 {
				realm.Deficit()[i] += shortfall
			}
		}
	}
}

// discoverPrices 价格发现
// 算法说明：
// 1. 需求 = Σ县（设施投入需求+人口消费+行政消耗+耐用品补充）
// 2. 供给 = 全球产能 + 总库存/7
// 3. raw = 基准价×需求/(供给+0.1)，写入价格表时截断到价格区间
func (s *InterRealmTradeSystem) discoverPrices() {
	reg := s.ctx.Registry()
	prices := s.ctx.Prices()
	counties := s.ctx.CountyManager().Counties()
	capacity := s.econ.Capacity()

	s.demand = [registry.NumGoods]float64{}
	s.supply = [registry.NumGoods]float64{}
	for _, c := range counties {
		stock := c.Stock()
		inputDemand := c.InputDemand()
		for i := 0; i < registry.NumGoods; i++ {
			s.demand[i] += inputDemand[i] + s.countyDailyNeed(c, registry.GoodID(i))
			s.supply[i] += stock[i] / stockSupplyDays
		}
	}
	for i := 0; i < registry.NumGoods; i++ {
		s.supply[i] += capacity[i]
		good := reg.Good(registry.GoodID(i))
		if good.BasePrice <= 0 {
			continue
		}
		raw := good.BasePrice * s.demand[i] / (s.supply[i] + priceEps)
		prices.Set(registry.GoodID(i), raw)
	}
}
