package system

import (
	"github.com/feudalsim/feudalsim-oss/clock"
	"github.com/feudalsim/feudalsim-oss/entity"
)

const (
	// populationFloor 县人口下限
	populationFloor = 10.0
	// birthRate 月度基础出生率
	birthRate = 0.003
	// deathRate 月度基础死亡率
	deathRate = 0.0025
	// migrationMinPop 允许迁出的最小人口
	migrationMinPop = 15.0
	// migrationGapThreshold 触发迁移的满意度差阈值
	migrationGapThreshold = 0.15
	// migrationGapFull 达到最大迁移率的满意度差
	migrationGapFull = 0.50
	// migrationMaxRate 月度最大迁出率
	migrationMaxRate = 0.02
)

// PopulationSystem 人口系统（每月）
// 功能：两个阶段——按满意度调制的出生/死亡，以及缓冲式迁移
// 说明：迁移先全量扫描并缓冲流量，再统一结算，结果与遍历顺序无关
type PopulationSystem struct {
	ctx entity.ITaskContext
}

// NewPopulationSystem 创建人口系统
func NewPopulationSystem(ctx entity.ITaskContext) *PopulationSystem {
	return &PopulationSystem{ctx: ctx}
}

// Name 系统名
func (s *PopulationSystem) Name() string { return "population" }

// Interval 执行间隔（天）
func (s *PopulationSystem) Interval() int32 { return clock.DaysPerMonth }

// Update 执行一个人口月
func (s *PopulationSystem) Update() {
	s.birthsAndDeaths()
	s.migrate()
}

// birthsAndDeaths 阶段1：出生与死亡
// 算法说明：
// 1. 出生乘数 = 0.5+基本满意度（区间0.5-1.5）
// 2. 死亡乘数 = 1+9×(1−基本满意度)²（区间1-10），只作用于饥荒项
// 3. 应用净变化并以10为人口下限
func (s *PopulationSystem) birthsAndDeaths() {
	for _, c := range s.ctx.CountyManager().Counties() {
		pop := c.Population()
		sat := c.BasicSatisfaction()
		births := pop * birthRate * (0.5 + sat)
		starve := 1 - sat
		deaths := pop * deathRate * (1 + 9*starve*starve)
		pop += births - deaths
		if pop < populationFloor {
			pop = populationFloor
		}
		c.SetPopulation(pop)
	}
}

// migrate 阶段2：缓冲式迁移
// 算法说明：
// 1. 对人口>15的县，在同王国的相邻县中找综合满意度差最大者
// 2. 差值超过阈值时，迁出率随差值线性增长至2%/月
// 3. 迁出量不使本县跌破人口下限；流量先缓冲，扫描完成后统一结算
func (s *PopulationSystem) migrate() {
	counties := s.ctx.CountyManager().Counties()
	for _, c := range counties {
		pop := c.Population()
		if pop <= migrationMinPop {
			continue
		}
		var best entity.ICounty
		bestGap := migrationGapThreshold
		for _, id := range c.AdjacentIDs() {
			adj := s.ctx.CountyManager().Get(id)
			if adj.RealmID() != c.RealmID() {
				continue
			}
			if gap := adj.Satisfaction() - c.Satisfaction(); gap > bestGap {
				best = adj
				bestGap = gap
			}
		}
		if best == nil {
			continue
		}
		scale := (bestGap - migrationGapThreshold) / (migrationGapFull - migrationGapThreshold)
		if scale > 1 {
			scale = 1
		}
		movers := pop * migrationMaxRate * scale
		if limit := pop - populationFloor; movers > limit {
			movers = limit
		}
		if movers <= 0 {
			continue
		}
		c.QueueDeparture(movers)
		best.QueueArrival(movers)
	}
	for _, c := range counties {
		c.ApplyMigration()
	}
}
