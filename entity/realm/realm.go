package realm

import (
	"fmt"
	"sort"

	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/registry"
	"github.com/feudalsim/feudalsim-oss/utils/input"
)

// Realm 王国实体
// 功能：行政层级的顶端，持有王室金库、物资储备（含待铸币矿石）
// 与当日各商品短缺汇总
type Realm struct {
	ctx entity.ITaskContext

	id              int32
	name            string
	capitalCountyID int32
	provinceIDs     []int32 // 下辖省ID，升序，Init后由管理器填充

	treasury  float64
	stockpile [registry.NumGoods]float64

	deficit [registry.NumGoods]float64 // 当日短缺汇总，BeginTick清零
}

// newRealm 创建并初始化一个新的Realm实例
// 参数：ctx-任务上下文，pb-王国输入数据
func newRealm(ctx entity.ITaskContext, pb *input.Realm) *Realm {
	r := &Realm{
		ctx:             ctx,
		id:              pb.ID,
		name:            pb.Name,
		capitalCountyID: pb.CapitalCountyID,
		treasury:        pb.Treasury,
	}
	reg := ctx.Registry()
	for name, v := range pb.Stockpile {
		g, ok := reg.GoodByName(name)
		if !ok {
			log.Panicf("realm %d: unknown good %s in stockpile", pb.ID, name)
		}
		r.stockpile[g] = v
	}
	return r
}

// attachProvince 登记下辖省（Init时由管理器调用）
func (r *Realm) attachProvince(id int32) {
	r.provinceIDs = append(r.provinceIDs, id)
	sort.Slice(r.provinceIDs, func(i, j int) bool { return r.provinceIDs[i] < r.provinceIDs[j] })
}

// ID 获取王国ID
func (r *Realm) ID() int32 {
	if r == nil {
		return -1
	}
	return r.id
}

// Name 获取王国名
func (r *Realm) Name() string { return r.name }

// String 获取王国的字符串表示
func (r *Realm) String() string {
	return fmt.Sprintf("Realm %d(%s)", r.id, r.name)
}

// ProvinceIDs 下辖省ID列表（升序）
func (r *Realm) ProvinceIDs() []int32 { return r.provinceIDs }

// CapitalCountyID 王都县ID
func (r *Realm) CapitalCountyID() int32 { return r.capitalCountyID }

// Treasury 王室金库（Crown）
func (r *Realm) Treasury() float64 { return r.treasury }

// AddTreasury 金库增减
func (r *Realm) AddTreasury(v float64) { r.treasury += v }

// SetTreasury 设置金库
func (r *Realm) SetTreasury(v float64) { r.treasury = v }

// Stockpile 王室物资储备
func (r *Realm) Stockpile() *[registry.NumGoods]float64 { return &r.stockpile }

// Deficit 当日短缺汇总
func (r *Realm) Deficit() *[registry.NumGoods]float64 { return &r.deficit }

// BeginTick 每日开始的状态复位
func (r *Realm) BeginTick() {
	r.deficit = [registry.NumGoods]float64{}
}
