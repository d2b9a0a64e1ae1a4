package system

import (
	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/output"
	"github.com/feudalsim/feudalsim-oss/registry"
)

const (
	// titheRate 县上缴省的什一税率（按当日产值）
	titheRate = 0.013
	// realmShareRate 省上缴王国的税收分成比例
	realmShareRate = 0.40
	// provinceWageRate 省级行政人员人均日薪（Crown/人/天）
	provinceWageRate = 0.002
	// realmWageRate 王国级行政人员人均日薪（Crown/人/天）
	realmWageRate = 0.001

	// marketFeeRate 所有贸易的市场手续费（汇入市场县）
	marketFeeRate = 0.02
	// provinceTollRate 跨省贸易通行税（汇入买方省）
	provinceTollRate = 0.05
	// realmTariffRate 跨国贸易关税（汇入买方王国）
	realmTariffRate = 0.10

	// retainDays 县在贸易中保留的消费品天数
	retainDays = 3.0
	// granaryTargetDays 公爵粮仓的目标储备天数
	granaryTargetDays = 7.0
	// granaryFillRate 粮仓每日向目标推进的比例
	granaryFillRate = 0.05
	// granaryDiscount 粮仓征购价相对市价的折扣
	granaryDiscount = 0.6
	// reliefThreshold 触发紧急赈济的基本满意度阈值
	reliefThreshold = 0.70

	// tradeEps 贸易量的下限，低于该值视为无盈余/无缺口
	tradeEps = 1e-9
)

// FiscalSystem 财政系统（每日）
// 功能：在县→省→王国的行政树上执行八个有序阶段：行政消耗、
// 矿石征收、货币税、行政薪俸、铸币、三级贸易出清、粮仓征购、
// 紧急赈济
// 说明：各阶段跨实体转移资金与物资，全部串行执行以保证确定性
type FiscalSystem struct {
	ctx entity.ITaskContext

	minted float64            // 当日铸币量（Crown）
	traded float64            // 当日贸易额（Crown，按市价计）
	flows  output.FiscalFlows // 当日财政流量汇总
}

// NewFiscalSystem 创建财政系统
func NewFiscalSystem(ctx entity.ITaskContext) *FiscalSystem {
	return &FiscalSystem{ctx: ctx}
}

// Name 系统名
func (s *FiscalSystem) Name() string { return "fiscal" }

// Interval 执行间隔（天）
func (s *FiscalSystem) Interval() int32 { return 1 }

// Minted 当日铸币量（Crown）
func (s *FiscalSystem) Minted() float64 { return s.minted }

// Traded 当日贸易额（Crown，按市价计）
func (s *FiscalSystem) Traded() float64 { return s.traded }

// Flows 当日财政流量汇总
func (s *FiscalSystem) Flows() output.FiscalFlows { return s.flows }

// Update 执行一个财政日
func (s *FiscalSystem) Update() {
	s.minted = 0
	s.traded = 0
	s.flows = output.FiscalFlows{}
	s.adminConsumption()
	s.confiscateOre()
	s.collectTaxes()
	s.payWages()
	s.mint()
	s.trade()
	s.fillGranaries()
	s.relieve()
}

// adminConsumption 阶段1：行政实物消耗
// 算法说明：各级行政机构的人均实物需求从县库存扣除（min(need,库存)），
// 短缺计入所属王国的当日缺口
func (s *FiscalSystem) adminConsumption() {
	reg := s.ctx.Registry()
	for _, c := range s.ctx.CountyManager().Counties() {
		pop := c.Population()
		stock := c.Stock()
		consumption := c.Consumption()
		realm := s.ctx.RealmManager().Get(c.RealmID())
		for i := 0; i < registry.NumGoods; i++ {
			good := reg.Good(registry.GoodID(i))
			need := pop * (good.AdminCounty + good.AdminProvince + good.AdminRealm)
			if need <= 0 {
				continue
			}
			take := need
			if stock[i] < take {
				take = stock[i]
			}
			stock[i] -= take
			consumption[i] += take
			if shortfall := need - take; shortfall > 0 {
				realm.Deficit()[i] += shortfall
			}
		}
	}
}

// confiscateOre 阶段2：贵金属矿石征收
// 说明：金银矿石为王室专有，县库存100%转入王国储备
func (s *FiscalSystem) confiscateOre() {
	for _, c := range s.ctx.CountyManager().Counties() {
		stock := c.Stock()
		realm := s.ctx.RealmManager().Get(c.RealmID())
		for _, g := range []registry.GoodID{registry.GoldOre, registry.SilverOre} {
			if stock[g] > 0 {
				realm.Stockpile()[g] += stock[g]
				stock[g] = 0
			}
		}
	}
}

// collectTaxes 阶段3：货币税
// 算法说明：
// 1. 县→省什一税 = min(1.3%×当日产值, 县金库)
// 2. 省→王国分成 = min(40%×省当日征税, 省金库)
func (s *FiscalSystem) collectTaxes() {
	prices := s.ctx.Prices()
	for _, c := range s.ctx.CountyManager().Counties() {
		production := c.Production()
		value := 0.0
		for i := 0; i < registry.NumGoods; i++ {
			value += production[i] * prices.Get(registry.GoodID(i))
		}
		tax := titheRate * value
		if tax > c.Treasury() {
			tax = c.Treasury()
		}
		if tax <= 0 {
			continue
		}
		c.AddTreasury(-tax)
		prov := s.ctx.ProvinceManager().Get(c.ProvinceID())
		prov.AddTreasury(tax)
		prov.AddTaxCollected(tax)
		s.flows.Tithes += tax
	}
	for _, p := range s.ctx.ProvinceManager().Provinces() {
		share := realmShareRate * p.TaxCollected()
		if share > p.Treasury() {
			share = p.Treasury()
		}
		if share <= 0 {
			continue
		}
		p.AddTreasury(-share)
		s.ctx.RealmManager().Get(p.RealmID()).AddTreasury(share)
		s.flows.RealmShares += share
	}
}

// payWages 阶段4：行政薪俸
// 算法说明：省和王国按人均日薪向下辖县发放薪俸，按县人口比例分配，
// 金库不足时等比缩减——资金在体系内循环，不在此处消灭
func (s *FiscalSystem) payWages() {
	for _, p := range s.ctx.ProvinceManager().Provinces() {
		s.payWagesDown(p.CountyIDs(), provinceWageRate, p)
	}
	for _, r := range s.ctx.RealmManager().Realms() {
		ids := make([]int32, 0)
		for _, pid := range r.ProvinceIDs() {
			ids = append(ids, s.ctx.ProvinceManager().Get(pid).CountyIDs()...)
		}
		s.payWagesDown(ids, realmWageRate, r)
	}
}

// treasuryHolder 可发薪的上级财政主体
type treasuryHolder interface {
	Treasury() float64
	AddTreasury(v float64)
}

// payWagesDown 从上级金库按人口比例向县发薪
func (s *FiscalSystem) payWagesDown(countyIDs []int32, rate float64, payer treasuryHolder) {
	totalPop := 0.0
	for _, id := range countyIDs {
		totalPop += s.ctx.CountyManager().Get(id).Population()
	}
	if totalPop <= 0 {
		return
	}
	want := rate * totalPop
	pay := want
	if pay > payer.Treasury() {
		pay = payer.Treasury()
	}
	if pay <= 0 {
		return
	}
	payer.AddTreasury(-pay)
	s.flows.Wages += pay
	for _, id := range countyIDs {
		c := s.ctx.CountyManager().Get(id)
		c.AddTreasury(pay * c.Population() / totalPop)
	}
}

// mint 阶段5：铸币
// 说明：王国将征收的金银矿石按固定冶炼收得率转换为Crown，
// 这是整个体系中唯一的货币创造来源
func (s *FiscalSystem) mint() {
	for _, r := range s.ctx.RealmManager().Realms() {
		stockpile := r.Stockpile()
		crowns := stockpile[registry.GoldOre]*registry.GoldSmeltYield*registry.GoldCrownPerKg +
			stockpile[registry.SilverOre]*registry.SilverSmeltYield*registry.SilverCrownPerKg
		stockpile[registry.GoldOre] = 0
		stockpile[registry.SilverOre] = 0
		if crowns > 0 {
			r.AddTreasury(crowns)
			s.minted += crowns
		}
	}
}

// retainNeed 县在贸易中对某商品的保留量
// 算法说明：主食与流量消费品保留3日消费量，耐用品保留目标存量，
// 其余商品不保留
func (s *FiscalSystem) retainNeed(c entity.ICounty, g registry.GoodID) float64 {
	good := s.ctx.Registry().Good(g)
	pop := c.Population()
	switch {
	case good.IsStaple():
		return pop * good.IdealShare * registry.FoodBudget * retainDays
	case good.IsDurable():
		return pop * good.DurableTarget
	case good.Consumption > 0:
		return pop * good.Consumption * retainDays
	default:
		return 0
	}
}

// tradeScope 一次贸易出清的县集合与附加费率
type tradeScope struct {
	counties []entity.ICounty
	toll     float64 // 省通行税率
	tariff   float64 // 王国关税率
}

// trade 阶段6：三级贸易出清
// 算法说明：三个级联阶段——省内、国内（重新汇集省内未出清的
// 盈余/缺口）、全球，每阶段按购买优先级逐商品比例配给出清
func (s *FiscalSystem) trade() {
	counties := s.ctx.CountyManager().Counties()

	byProvince := make(map[int32][]entity.ICounty)
	byRealm := make(map[int32][]entity.ICounty)
	for _, c := range counties {
		byProvince[c.ProvinceID()] = append(byProvince[c.ProvinceID()], c)
		byRealm[c.RealmID()] = append(byRealm[c.RealmID()], c)
	}

	// 省内：仅手续费
	for _, p := range s.ctx.ProvinceManager().Provinces() {
		s.clearScope(tradeScope{counties: byProvince[p.ID()]})
	}
	// 国内：手续费+通行税
	for _, r := range s.ctx.RealmManager().Realms() {
		s.clearScope(tradeScope{counties: byRealm[r.ID()], toll: provinceTollRate})
	}
	// 全球：手续费+通行税+关税
	s.clearScope(tradeScope{counties: counties, toll: provinceTollRate, tariff: realmTariffRate})
}

// clearScope 在一个贸易范围内逐商品出清
// 算法说明：对每个商品，县的盈余/缺口 = 库存−保留量−设施投入需求；
// 买方需求受金库支付能力约束；按 fill=min(1,S/D)、sell=min(1,D/S)
// 比例配给；卖方按市价收款，买方支付市价加成，各项附加费分别
// 汇入买方省、买方王国与市场县
func (s *FiscalSystem) clearScope(scope tradeScope) {
	prices := s.ctx.Prices()
	market := s.ctx.MarketCounty()
	surcharge := marketFeeRate + scope.toll + scope.tariff

	sellers := make([]entity.ICounty, 0, len(scope.counties))
	buyers := make([]entity.ICounty, 0, len(scope.counties))
	supplies := make([]float64, 0, len(scope.counties))
	demands := make([]float64, 0, len(scope.counties))

	for _, g := range s.ctx.Registry().BuyPriority() {
		price := prices.Get(g)
		if price <= 0 {
			continue
		}
		sellers = sellers[:0]
		buyers = buyers[:0]
		supplies = supplies[:0]
		demands = demands[:0]
		totalSupply, totalDemand := 0.0, 0.0
		for _, c := range scope.counties {
			net := c.Stock()[g] - s.retainNeed(c, g) - c.InputDemand()[g]
			if net > tradeEps {
				sellers = append(sellers, c)
				supplies = append(supplies, net)
				totalSupply += net
			} else if net < -tradeEps {
				want := -net
				afford := c.Treasury() / (price * (1 + surcharge))
				if want > afford {
					want = afford
				}
				if want > tradeEps {
					buyers = append(buyers, c)
					demands = append(demands, want)
					totalDemand += want
				}
			}
		}
		if totalSupply <= 0 || totalDemand <= 0 {
			continue
		}
		fill := 1.0
		if totalSupply < totalDemand {
			fill = totalSupply / totalDemand
		}
		sell := 1.0
		if totalDemand < totalSupply {
			sell = totalDemand / totalSupply
		}

		for i, c := range sellers {
			qty := supplies[i] * sell
			c.Stock()[g] -= qty
			c.AddTreasury(qty * price)
		}
		for i, c := range buyers {
			qty := demands[i] * fill
			base := qty * price
			c.Stock()[g] += qty
			c.AddTreasury(-base * (1 + surcharge))
			if scope.toll > 0 {
				s.ctx.ProvinceManager().Get(c.ProvinceID()).AddTreasury(base * scope.toll)
				s.flows.Tolls += base * scope.toll
			}
			if scope.tariff > 0 {
				s.ctx.RealmManager().Get(c.RealmID()).AddTreasury(base * scope.tariff)
				s.flows.Tariffs += base * scope.tariff
			}
			market.AddTreasury(base * marketFeeRate)
			s.flows.Fees += base * marketFeeRate
			s.traded += base
		}
	}
}

// fillGranaries 阶段7：公爵粮仓征购
// 算法说明：各省以市价6折从盈余县逐步（每日5%缺口）征购主食，
// 向7日储备目标推进，受省金库约束；盈余县按盈余比例分摊
func (s *FiscalSystem) fillGranaries() {
	reg := s.ctx.Registry()
	prices := s.ctx.Prices()
	for _, p := range s.ctx.ProvinceManager().Provinces() {
		granary := p.Granary()
		totalPop := 0.0
		for _, id := range p.CountyIDs() {
			totalPop += s.ctx.CountyManager().Get(id).Population()
		}
		for _, g := range reg.Staples() {
			target := granaryTargetDays * totalPop * reg.Good(g).IdealShare * registry.FoodBudget
			want := (target - granary[g]) * granaryFillRate
			if want <= tradeEps {
				continue
			}
			price := prices.Get(g) * granaryDiscount
			if price <= 0 {
				continue
			}
			if afford := p.Treasury() / price; want > afford {
				want = afford
			}
			if want <= tradeEps {
				continue
			}

			totalSurplus := 0.0
			surpluses := make([]float64, 0, len(p.CountyIDs()))
			cs := make([]entity.ICounty, 0, len(p.CountyIDs()))
			for _, id := range p.CountyIDs() {
				c := s.ctx.CountyManager().Get(id)
				net := c.Stock()[g] - s.retainNeed(c, g) - c.InputDemand()[g]
				if net > tradeEps {
					cs = append(cs, c)
					surpluses = append(surpluses, net)
					totalSurplus += net
				}
			}
			if totalSurplus <= 0 {
				continue
			}
			take := want
			if take > totalSurplus {
				take = totalSurplus
			}
			for i, c := range cs {
				qty := take * surpluses[i] / totalSurplus
				c.Stock()[g] -= qty
				c.AddTreasury(qty * price)
				p.AddTreasury(-qty * price)
				granary[g] += qty
				s.flows.GranaryPurchases += qty * price
			}
		}
	}
}

// relieve 阶段8：紧急赈济
// 算法说明：基本满意度低于阈值的县按其占全省主食缺口的比例
// 获得粮仓发放，单县不超过自身缺口
func (s *FiscalSystem) relieve() {
	reg := s.ctx.Registry()
	for _, p := range s.ctx.ProvinceManager().Provinces() {
		granary := p.Granary()
		for _, g := range reg.Staples() {
			if granary[g] <= tradeEps {
				continue
			}
			share := reg.Good(g).IdealShare * registry.FoodBudget
			totalDeficit := 0.0
			deficits := make([]float64, 0, len(p.CountyIDs()))
			cs := make([]entity.ICounty, 0, len(p.CountyIDs()))
			for _, id := range p.CountyIDs() {
				c := s.ctx.CountyManager().Get(id)
				if c.BasicSatisfaction() >= reliefThreshold {
					continue
				}
				deficit := c.Population()*share - c.Stock()[g]
				if deficit > tradeEps {
					cs = append(cs, c)
					deficits = append(deficits, deficit)
					totalDeficit += deficit
				}
			}
			if totalDeficit <= 0 {
				continue
			}
			give := granary[g]
			if give > totalDeficit {
				give = totalDeficit
			}
			for i, c := range cs {
				qty := give * deficits[i] / totalDeficit
				if qty > deficits[i] {
					qty = deficits[i]
				}
				c.Stock()[g] += qty
				granary[g] -= qty
				s.flows.Relief += qty
			}
		}
	}
}
