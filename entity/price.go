package entity

import (
	"github.com/feudalsim/feudalsim-oss/registry"
)

// PriceTable 全局价格表
// 功能：维护每种商品的当前全局价格（Crown/kg）
// 说明：所有县共享同一份价格；价格仅由跨国贸易系统每日按供需重估，
// 写入时强制落在商品的[MinPrice, MaxPrice]区间内
type PriceTable struct {
	prices [registry.NumGoods]float64
	min    [registry.NumGoods]float64
	max    [registry.NumGoods]float64
}

// NewPriceTable 创建价格表并以基准价格初始化
func NewPriceTable(r *registry.Registry) *PriceTable {
	t := &PriceTable{}
	for i := 0; i < registry.NumGoods; i++ {
		g := r.Good(registry.GoodID(i))
		t.prices[i] = g.BasePrice
		t.min[i] = g.MinPrice
		t.max[i] = g.MaxPrice
	}
	return t
}

// Get 获取商品当前价格
func (t *PriceTable) Get(g registry.GoodID) float64 {
	return t.prices[g]
}

// Set 设置商品价格，越界时截断到价格区间
func (t *PriceTable) Set(g registry.GoodID, v float64) {
	if v < t.min[g] {
		v = t.min[g]
	} else if v > t.max[g] {
		v = t.max[g]
	}
	t.prices[g] = v
}

// All 导出全部价格的副本（快照输出用）
func (t *PriceTable) All() [registry.NumGoods]float64 {
	return t.prices
}
