package entity

import (
	"github.com/feudalsim/feudalsim-oss/registry"
)

// FacilitySlot 县内一座设施的当日运行状态
// 说明：每个县固定拥有每种设施各一座，按registry.FacilityType寻址
type FacilitySlot struct {
	Workers    float64 // 当日实际用工（人）
	Throughput float64 // 当日实际产出（kg）
}

// entity/county/county.go的依赖倒置
type ICounty interface {
	// 自身属性

	ID() int32            // 获取县ID
	Name() string         // 获取县名
	ProvinceID() int32    // 所属省ID
	RealmID() int32       // 所属王国ID
	AdjacentIDs() []int32 // 相邻县ID列表（升序）

	// 人口与财政

	Population() float64     // 当前人口
	SetPopulation(p float64) // 设置人口（人口系统专用）
	Treasury() float64       // 县金库（Crown）
	AddTreasury(v float64)   // 金库增减（可为负）
	SetTreasury(v float64)   // 设置金库

	// 商品维度状态：返回数组指针，系统按商品索引直接读写

	Stock() *[registry.NumGoods]float64        // 库存（kg）
	Productivity() *[registry.NumGoods]float64 // 采集生产率（kg/人/天）
	InputDemand() *[registry.NumGoods]float64  // 当日投入品需求累计（kg）
	Production() *[registry.NumGoods]float64   // 当日产出（kg）
	Consumption() *[registry.NumGoods]float64  // 当日消费（kg）
	Unmet() *[registry.NumGoods]float64        // 当日未满足需求（kg）

	// 设施与劳动力

	Facility(f registry.FacilityType) *FacilitySlot
	AddFacilityWorkers(w float64) // 累计当日设施用工
	ExtractionWorkshare() float64 // 可用于采集的人口比例（基于前一日用工）

	// 满意度

	BasicSatisfaction() float64            // 基本需求满意度（EMA）
	Satisfaction() float64                 // 综合满意度（EMA）
	UpdateSatisfaction(basic, all float64) // 以当日瞬时值推进EMA

	// 迁移缓冲：人口系统先全量累计，再统一结算，保证与遍历顺序无关

	QueueArrival(n float64)   // 缓冲迁入
	QueueDeparture(n float64) // 缓冲迁出
	ApplyMigration()          // 结算迁移缓冲

	BeginTick() // 每日开始：清零流量累计，轮换用工缓冲
}

// entity/province/province.go的依赖倒置
type IProvince interface {
	ID() int32          // 获取省ID
	Name() string       // 获取省名
	RealmID() int32     // 所属王国ID
	CountyIDs() []int32 // 下辖县ID列表（升序）
	CapitalID() int32   // 省治县ID

	Treasury() float64     // 省金库（Crown）
	AddTreasury(v float64) // 金库增减
	SetTreasury(v float64) // 设置金库

	Granary() *[registry.NumGoods]float64 // 公爵粮仓（kg）

	TaxCollected() float64 // 当日已征什一税（Crown）
	AddTaxCollected(v float64)

	BeginTick() // 每日开始：清零当日征税累计
}

// entity/realm/realm.go的依赖倒置
type IRealm interface {
	ID() int32            // 获取王国ID
	Name() string         // 获取王国名
	ProvinceIDs() []int32 // 下辖省ID列表（升序）
	CapitalCountyID() int32

	Treasury() float64     // 王室金库（Crown）
	AddTreasury(v float64) // 金库增减
	SetTreasury(v float64) // 设置金库

	Stockpile() *[registry.NumGoods]float64 // 王室物资储备（含待铸币矿石，kg）
	Deficit() *[registry.NumGoods]float64   // 当日短缺汇总（kg）

	BeginTick() // 每日开始：清零短缺汇总
}
