package province

import (
	"fmt"
	"sort"

	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/registry"
	"github.com/feudalsim/feudalsim-oss/utils/input"
)

// Province 省实体
// 功能：县的上级行政单元，持有省金库、公爵粮仓与当日征税累计
type Province struct {
	ctx entity.ITaskContext

	id        int32
	name      string
	realmID   int32
	capitalID int32
	countyIDs []int32 // 下辖县ID，升序，Init后由管理器填充

	treasury float64
	granary  [registry.NumGoods]float64

	taxCollected float64 // 当日已征什一税，BeginTick清零
}

// newProvince 创建并初始化一个新的Province实例
// 参数：ctx-任务上下文，pb-省输入数据
func newProvince(ctx entity.ITaskContext, pb *input.Province) *Province {
	p := &Province{
		ctx:       ctx,
		id:        pb.ID,
		name:      pb.Name,
		realmID:   pb.RealmID,
		capitalID: pb.CapitalID,
		treasury:  pb.Treasury,
	}
	r := ctx.Registry()
	for name, v := range pb.Granary {
		g, ok := r.GoodByName(name)
		if !ok {
			log.Panicf("province %d: unknown good %s in granary", pb.ID, name)
		}
		p.granary[g] = v
	}
	return p
}

// attachCounty 登记下辖县（Init时由管理器调用）
func (p *Province) attachCounty(id int32) {
	p.countyIDs = append(p.countyIDs, id)
	sort.Slice(p.countyIDs, func(i, j int) bool { return p.countyIDs[i] < p.countyIDs[j] })
}

// ID 获取省ID
func (p *Province) ID() int32 {
	if p == nil {
		return -1
	}
	return p.id
}

// Name 获取省名
func (p *Province) Name() string { return p.name }

// String 获取省的字符串表示
func (p *Province) String() string {
	return fmt.Sprintf("Province %d(%s)", p.id, p.name)
}

// RealmID 所属王国ID
func (p *Province) RealmID() int32 { return p.realmID }

// CountyIDs 下辖县ID列表（升序）
func (p *Province) CountyIDs() []int32 { return p.countyIDs }

// CapitalID 省治县ID
func (p *Province) CapitalID() int32 { return p.capitalID }

// Treasury 省金库（Crown）
func (p *Province) Treasury() float64 { return p.treasury }

// AddTreasury 金库增减
func (p *Province) AddTreasury(v float64) { p.treasury += v }

// SetTreasury 设置金库
func (p *Province) SetTreasury(v float64) { p.treasury = v }

// Granary 公爵粮仓
func (p *Province) Granary() *[registry.NumGoods]float64 { return &p.granary }

// TaxCollected 当日已征什一税（Crown）
func (p *Province) TaxCollected() float64 { return p.taxCollected }

// AddTaxCollected 累计当日征税
func (p *Province) AddTaxCollected(v float64) { p.taxCollected += v }

// BeginTick 每日开始的状态复位
func (p *Province) BeginTick() {
	p.taxCollected = 0
}
