package county

import (
	"fmt"
	"sort"

	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/registry"
	"github.com/feudalsim/feudalsim-oss/utils/input"
)

// satEMA 满意度指数滑动平均系数
// 说明：α=2/(N+1)取N≈30天的平滑窗口，使满意度对单日波动不敏感
const satEMA = 0.065

// County 县实体
// 功能：经济模拟的基本单元，持有人口、金库、按商品索引寻址的库存与
// 各类当日流量累计，以及全部13种设施的运行状态
type County struct {
	ctx entity.ITaskContext

	id         int32
	name       string
	provinceID int32
	realmID    int32
	adjacent   []int32 // 相邻县ID，升序

	population float64
	treasury   float64

	stock        [registry.NumGoods]float64 // 库存（kg），跨日持久
	productivity [registry.NumGoods]float64 // 采集生产率（kg/人/天），静态

	// 当日流量累计，BeginTick时清零
	inputDemand [registry.NumGoods]float64
	production  [registry.NumGoods]float64
	consumption [registry.NumGoods]float64
	unmet       [registry.NumGoods]float64

	facilities [registry.NumFacilities]entity.FacilitySlot

	// 设施用工双缓冲：当日累计写入cur，次日采集可用劳力按prev计算，
	// 避免同日内设施处理顺序影响采集结果
	facilityWorkersPrev float64
	facilityWorkersCur  float64

	basicSatisfaction float64
	satisfaction      float64

	// 迁移缓冲，人口系统统一结算
	arrivals   float64
	departures float64
}

// newCounty 创建并初始化一个新的County实例
// 功能：根据输入数据创建County对象，将按商品名组织的输入转换为索引数组
// 参数：ctx-任务上下文，pb-县输入数据
// 返回：初始化完成的County实例
// 说明：未知商品名视为数据错误直接panic；满意度以1.0起步
func newCounty(ctx entity.ITaskContext, pb *input.County) *County {
	c := &County{
		ctx:               ctx,
		id:                pb.ID,
		name:              pb.Name,
		provinceID:        pb.ProvinceID,
		realmID:           pb.RealmID,
		population:        pb.Population,
		treasury:          pb.Treasury,
		basicSatisfaction: 1.0,
		satisfaction:      1.0,
	}
	c.adjacent = append(c.adjacent, pb.Adjacent...)
	sort.Slice(c.adjacent, func(i, j int) bool { return c.adjacent[i] < c.adjacent[j] })

	r := ctx.Registry()
	for name, v := range pb.Productivity {
		g, ok := r.GoodByName(name)
		if !ok {
			log.Panicf("county %d: unknown good %s in productivity", pb.ID, name)
		}
		c.productivity[g] = v
	}
	for name, v := range pb.Stock {
		g, ok := r.GoodByName(name)
		if !ok {
			log.Panicf("county %d: unknown good %s in stock", pb.ID, name)
		}
		c.stock[g] = v
	}
	return c
}

// ID 获取县ID
func (c *County) ID() int32 {
	if c == nil {
		return -1
	}
	return c.id
}

// Name 获取县名
func (c *County) Name() string { return c.name }

// String 获取县的字符串表示
func (c *County) String() string {
	return fmt.Sprintf("County %d(%s)", c.id, c.name)
}

// ProvinceID 所属省ID
func (c *County) ProvinceID() int32 { return c.provinceID }

// RealmID 所属王国ID
func (c *County) RealmID() int32 { return c.realmID }

// AdjacentIDs 相邻县ID列表（升序）
func (c *County) AdjacentIDs() []int32 { return c.adjacent }

// Population 当前人口
func (c *County) Population() float64 { return c.population }

// SetPopulation 设置人口
func (c *County) SetPopulation(p float64) { c.population = p }

// Treasury 县金库（Crown）
func (c *County) Treasury() float64 { return c.treasury }

// AddTreasury 金库增减
func (c *County) AddTreasury(v float64) { c.treasury += v }

// SetTreasury 设置金库
func (c *County) SetTreasury(v float64) { c.treasury = v }

// Stock 库存数组
func (c *County) Stock() *[registry.NumGoods]float64 { return &c.stock }

// Productivity 采集生产率数组
func (c *County) Productivity() *[registry.NumGoods]float64 { return &c.productivity }

// InputDemand 当日投入品需求累计
func (c *County) InputDemand() *[registry.NumGoods]float64 { return &c.inputDemand }

// Production 当日产出
func (c *County) Production() *[registry.NumGoods]float64 { return &c.production }

// Consumption 当日消费
func (c *County) Consumption() *[registry.NumGoods]float64 { return &c.consumption }

// Unmet 当日未满足需求
func (c *County) Unmet() *[registry.NumGoods]float64 { return &c.unmet }

// Facility 获取指定设施的当日运行状态
func (c *County) Facility(f registry.FacilityType) *entity.FacilitySlot {
	return &c.facilities[f]
}

// AddFacilityWorkers 累计当日设施用工
func (c *County) AddFacilityWorkers(w float64) { c.facilityWorkersCur += w }

// ExtractionWorkshare 可用于采集的人口比例
// 算法说明：按前一日设施总用工占人口的比例折减，结果截断到[0,1]；
// 首日无历史用工，返回1
func (c *County) ExtractionWorkshare() float64 {
	if c.population <= 0 {
		return 0
	}
	share := 1 - c.facilityWorkersPrev/c.population
	if share < 0 {
		return 0
	}
	if share > 1 {
		return 1
	}
	return share
}

// BasicSatisfaction 基本需求满意度（EMA）
func (c *County) BasicSatisfaction() float64 { return c.basicSatisfaction }

// Satisfaction 综合满意度（EMA）
func (c *County) Satisfaction() float64 { return c.satisfaction }

// UpdateSatisfaction 以当日瞬时值推进满意度EMA
func (c *County) UpdateSatisfaction(basic, all float64) {
	c.basicSatisfaction += satEMA * (basic - c.basicSatisfaction)
	c.satisfaction += satEMA * (all - c.satisfaction)
}

// QueueArrival 缓冲迁入
func (c *County) QueueArrival(n float64) { c.arrivals += n }

// QueueDeparture 缓冲迁出
func (c *County) QueueDeparture(n float64) { c.departures += n }

// ApplyMigration 结算迁移缓冲
// 说明：先全量缓冲、后统一结算，保证结果与县的遍历顺序无关
func (c *County) ApplyMigration() {
	c.population += c.arrivals - c.departures
	c.arrivals = 0
	c.departures = 0
}

// BeginTick 每日开始的状态复位
// 功能：清零当日流量累计与设施状态，轮换设施用工双缓冲
func (c *County) BeginTick() {
	c.inputDemand = [registry.NumGoods]float64{}
	c.production = [registry.NumGoods]float64{}
	c.consumption = [registry.NumGoods]float64{}
	c.unmet = [registry.NumGoods]float64{}
	c.facilities = [registry.NumFacilities]entity.FacilitySlot{}
	c.facilityWorkersPrev = c.facilityWorkersCur
	c.facilityWorkersCur = 0
}
