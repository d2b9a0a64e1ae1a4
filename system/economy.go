package system

import (
	"git.fiblab.net/general/common/v2/parallel"

	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/registry"
)

const (
	// durableCatchUpRate 耐用品存量缺口的每日追赶速率
	durableCatchUpRate = 0.05
	// durableBurst 耐用品设施相对每日需求的最大超产倍数
	durableBurst = 3.0
	// chainBufferDays 产业链中间品的目标库存缓冲天数
	chainBufferDays = 7.0
	// chainRawBufferDays 产业链原料的采集目标缓冲天数
	chainRawBufferDays = 14.0
)

// EconomySystem 经济系统（每日）
// 功能：推进所有县的生产与消费：设施投入需求、采集、设施加工、
// 人口消费与满意度
// 说明：逐县阶段只读写县内状态，可安全并行；全球产能汇总在其后
// 串行执行，供当日价格发现使用
type EconomySystem struct {
	ctx entity.ITaskContext

	// 当日全球产能（采集能力+设施劳动力上限），按商品索引
	capacity [registry.NumGoods]float64
}

// NewEconomySystem 创建经济系统
func NewEconomySystem(ctx entity.ITaskContext) *EconomySystem {
	return &EconomySystem{ctx: ctx}
}

// Name 系统名
func (s *EconomySystem) Name() string { return "economy" }

// Interval 执行间隔（天）
func (s *EconomySystem) Interval() int32 { return 1 }

// Capacity 当日全球产能，按商品索引
func (s *EconomySystem) Capacity() *[registry.NumGoods]float64 { return &s.capacity }

// Update 执行一个经济日
// 算法说明：
// 1. 并行逐县推进：需求累计→采集→设施加工→消费→满意度
// 2. 串行汇总全球产能
func (s *EconomySystem) Update() {
	counties := s.ctx.CountyManager().Counties()
	parallel.GoFor(counties, func(c entity.ICounty) { s.updateCounty(c) })
	s.aggregateCapacity(counties)
}

// updateCounty 推进单个县的经济日
func (s *EconomySystem) updateCounty(c entity.ICounty) {
	s.accumulateDemand(c)
	s.extract(c)
	s.process(c)
	s.consume(c)
}

// laborMax 设施的劳动力加工上限（单位批次/天，每批次产出OutputAmount千克）
func laborMax(c entity.ICounty, rec *registry.Recipe) float64 {
	return c.Population() * rec.MaxWorkforce / rec.LaborPerUnit
}

// durableDailyNeed 耐用品的每日补充需求：磨损+缺口追赶
func durableDailyNeed(c entity.ICounty, g registry.GoodID, good *registry.Good) float64 {
	stock := c.Stock()[g]
	wear := stock * good.SpoilRate
	gap := c.Population()*good.DurableTarget - stock
	if gap < 0 {
		gap = 0
	}
	return wear + gap*durableCatchUpRate
}

// accumulateDemand 设施投入需求累计，两遍
// 算法说明：
// 1. 第一遍：耐用品设施按存量缺口公式计算目标产量并累计投入需求
// 2. 第二遍：非耐用品设施按显式顺序计算目标产量——中间品的消费方
// 先执行，使其累计的需求对后执行的生产方可见
func (s *EconomySystem) accumulateDemand(c entity.ICounty) {
	reg := s.ctx.Registry()
	demand := c.InputDemand()
	for _, f := range reg.DurablePass() {
		rec := reg.Recipe(f)
		thr := s.targetThroughput(c, rec)
		for _, in := range rec.Inputs {
			demand[in.Good] += thr * in.Amount
		}
	}
	for _, f := range reg.FlowPass() {
		rec := reg.Recipe(f)
		thr := s.targetThroughput(c, rec)
		for _, in := range rec.Inputs {
			demand[in.Good] += thr * in.Amount
		}
	}
}

// targetThroughput 设施的目标产量（kg/天，不考虑原料可得性）
// 算法说明：以劳动力上限为基数，再按产出商品类型施加约束：
// 耐用品按存量缺口限产；链中间品按下游需求的7日缓冲限产；
// 无直接人口需求的普通商品按价格比例限产
func (s *EconomySystem) targetThroughput(c entity.ICounty, rec *registry.Recipe) float64 {
	reg := s.ctx.Registry()
	good := reg.Good(rec.Output)
	thr := laborMax(c, rec)
	switch {
	case good.IsDurable():
		need := durableDailyNeed(c, rec.Output, good) * durableBurst / rec.OutputAmount
		if thr > need {
			thr = need
		}
	case good.IsChainMid():
		limit := (c.InputDemand()[rec.Output]*chainBufferDays - c.Stock()[rec.Output]) / rec.OutputAmount
		if limit < 0 {
			limit = 0
		}
		if thr > limit {
			thr = limit
		}
	case !good.HasDirectDemand() && good.BasePrice > 0:
		ratio := s.ctx.Prices().Get(rec.Output) / good.BasePrice
		if ratio > 1 {
			ratio = 1
		}
		thr *= ratio
	}
	return thr
}

// extract 采集
// 算法说明：produced = 人口×生产率×可用劳力比例，再按商品类型修正：
// 产业链原料以14日本地设施需求为上限；无直接人口需求的商品按
// 价格比例限产（基准价为0的王室矿石不限）
func (s *EconomySystem) extract(c entity.ICounty) {
	reg := s.ctx.Registry()
	pop := c.Population()
	ws := c.ExtractionWorkshare()
	stock := c.Stock()
	prod := c.Productivity()
	production := c.Production()
	demand := c.InputDemand()
	for i := 0; i < registry.NumGoods; i++ {
		if prod[i] <= 0 {
			continue
		}
		g := registry.GoodID(i)
		good := reg.Good(g)
		produced := pop * prod[i] * ws
		if good.IsChainRaw() {
			limit := demand[i]*chainRawBufferDays - stock[i]
			if limit < 0 {
				limit = 0
			}
			if produced > limit {
				produced = limit
			}
		} else if !good.HasDirectDemand() && good.BasePrice > 0 {
			ratio := s.ctx.Prices().Get(g) / good.BasePrice
			if ratio > 1 {
				ratio = 1
			}
			produced *= ratio
		}
		stock[i] += produced
		production[i] += produced
	}
}

// process 设施加工
// 算法说明：按与需求累计相同的显式顺序逐设施执行；
// 实际产量 = min(原料约束, 目标产量)，原料约束为各投入品
// stock/amount 的最小值；按比例扣减投入、入库产出、记录用工
func (s *EconomySystem) process(c entity.ICounty) {
	reg := s.ctx.Registry()
	for _, f := range reg.DurablePass() {
		s.runFacility(c, f)
	}
	for _, f := range reg.FlowPass() {
		s.runFacility(c, f)
	}
}

// runFacility 执行单个设施的当日加工
func (s *EconomySystem) runFacility(c entity.ICounty, f registry.FacilityType) {
	reg := s.ctx.Registry()
	rec := reg.Recipe(f)
	stock := c.Stock()

	thr := s.targetThroughput(c, rec)
	for _, in := range rec.Inputs {
		if material := stock[in.Good] / in.Amount; material < thr {
			thr = material
		}
	}
	if thr <= 0 {
		return
	}
	for _, in := range rec.Inputs {
		stock[in.Good] -= thr * in.Amount
	}
	out := thr * rec.OutputAmount
	stock[rec.Output] += out
	c.Production()[rec.Output] += out

	workers := thr * rec.LaborPerUnit
	slot := c.Facility(f)
	slot.Workers = workers
	slot.Throughput = out
	c.AddFacilityWorkers(workers)
}

// consume 人口消费与满意度
// 算法说明：
// 1. 主食共享食物预算：总量充足时按各主食占总库存的比例消费；
// 不足时全部清空（饥荒事件），各主食按理想份额记未满足量
// 2. 非主食流量商品消费 min(库存, 人口×消耗率)
// 3. 耐用品先磨损再记存量缺口
// 4. 以当日满足率推进两项满意度EMA
func (s *EconomySystem) consume(c entity.ICounty) {
	reg := s.ctx.Registry()
	pop := c.Population()
	stock := c.Stock()
	consumption := c.Consumption()
	unmet := c.Unmet()

	// 主食池
	budget := pop * registry.FoodBudget
	totalStaple := 0.0
	for _, g := range reg.Staples() {
		totalStaple += stock[g]
	}
	stapleFulfill := 1.0
	if budget > 0 {
		if totalStaple >= budget {
			for _, g := range reg.Staples() {
				eaten := budget * stock[g] / totalStaple
				stock[g] -= eaten
				consumption[g] += eaten
			}
		} else {
			// 饥荒：吃光全部主食，缺口按理想份额分摊
			shortfall := budget - totalStaple
			for _, g := range reg.Staples() {
				consumption[g] += stock[g]
				stock[g] = 0
				unmet[g] += reg.Good(g).IdealShare * shortfall
			}
			stapleFulfill = totalStaple / budget
		}
	}

	// 非主食需求与满意度打分
	basicSum, basicCount := 0.0, 0
	comfortSum, comfortCount := 0.0, 0
	for i := 0; i < registry.NumGoods; i++ {
		g := registry.GoodID(i)
		good := reg.Good(g)
		fulfill := 1.0
		switch {
		case good.IsDurable():
			wear := stock[i] * good.SpoilRate
			stock[i] -= wear
			consumption[i] += wear
			target := pop * good.DurableTarget
			gap := target - stock[i]
			if gap < 0 {
				gap = 0
			}
			unmet[i] += gap
			if target > 0 {
				fulfill = stock[i] / target
				if fulfill > 1 {
					fulfill = 1
				}
			}
		case good.Consumption > 0:
			need := pop * good.Consumption
			eaten := need
			if stock[i] < eaten {
				eaten = stock[i]
			}
			stock[i] -= eaten
			consumption[i] += eaten
			unmet[i] += need - eaten
			if need > 0 {
				fulfill = eaten / need
			}
		default:
			continue
		}
		switch good.Category {
		case registry.NeedBasic:
			basicSum += fulfill
			basicCount++
		case registry.NeedComfort:
			comfortSum += fulfill
			comfortCount++
		}
	}

	basicScore := 0.6 * stapleFulfill
	if basicCount > 0 {
		basicScore += 0.4 * basicSum / float64(basicCount)
	} else {
		basicScore += 0.4
	}
	comfortScore := 1.0
	if comfortCount > 0 {
		comfortScore = comfortSum / float64(comfortCount)
	}
	c.UpdateSatisfaction(basicScore, 0.7*basicScore+0.3*comfortScore)
}

// aggregateCapacity 全球产能汇总（串行）
// 算法说明：逐县累加 人口×生产率 的采集能力，再叠加各设施的
// 劳动力产出上限，结果供跨国贸易系统的价格发现使用
func (s *EconomySystem) aggregateCapacity(counties []entity.ICounty) {
	reg := s.ctx.Registry()
	s.capacity = [registry.NumGoods]float64{}
	for _, c := range counties {
		pop := c.Population()
		prod := c.Productivity()
		for i := 0; i < registry.NumGoods; i++ {
			s.capacity[i] += pop * prod[i]
		}
		for f := 0; f < registry.NumFacilities; f++ {
			rec := reg.Recipe(registry.FacilityType(f))
			s.capacity[rec.Output] += laborMax(c, rec) * rec.OutputAmount
		}
	}
}
