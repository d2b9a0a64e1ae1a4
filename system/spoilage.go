package system

import (
	"math"

	"git.fiblab.net/general/common/v2/parallel"

	"github.com/feudalsim/feudalsim-oss/clock"
	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/registry"
)

// SpoilageSystem 腐坏系统（每月）
// 功能：对所有易腐商品（有日损耗率且非耐用品）的县库存、
// 省粮仓与王国储备按 (1−日损耗率)^30 结算月度损耗
type SpoilageSystem struct {
	ctx entity.ITaskContext

	// factors 各商品的月度保有系数，非易腐商品为1
	factors [registry.NumGoods]float64
}

// NewSpoilageSystem 创建腐坏系统
func NewSpoilageSystem(ctx entity.ITaskContext) *SpoilageSystem {
	s := &SpoilageSystem{ctx: ctx}
	reg := ctx.Registry()
	for i := 0; i < registry.NumGoods; i++ {
		good := reg.Good(registry.GoodID(i))
		if good.IsPerishable() {
			s.factors[i] = math.Pow(1-good.SpoilRate, clock.DaysPerMonth)
		} else {
			s.factors[i] = 1
		}
	}
	return s
}

// Name 系统名
func (s *SpoilageSystem) Name() string { return "spoilage" }

// Interval 执行间隔（天）
func (s *SpoilageSystem) Interval() int32 { return clock.DaysPerMonth }

// Update 执行一个腐坏月
func (s *SpoilageSystem) Update() {
	parallel.GoFor(s.ctx.CountyManager().Counties(), func(c entity.ICounty) {
		s.decay(c.Stock())
	})
	for _, p := range s.ctx.ProvinceManager().Provinces() {
		s.decay(p.Granary())
	}
	for _, r := range s.ctx.RealmManager().Realms() {
		s.decay(r.Stockpile())
	}
}

// decay 对一组按商品索引的库存应用月度保有系数
func (s *SpoilageSystem) decay(stock *[registry.NumGoods]float64) {
	for i := 0; i < registry.NumGoods; i++ {
		stock[i] *= s.factors[i]
	}
}
