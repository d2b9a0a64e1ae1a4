package task

import (
	"github.com/feudalsim/feudalsim-oss/output"
	"github.com/feudalsim/feudalsim-oss/registry"
)

// goodMap 把按商品索引的数组转为以商品名为键的映射，跳过零值
func (ctx *Context) goodMap(arr *[registry.NumGoods]float64) map[string]float64 {
	m := make(map[string]float64)
	for i := 0; i < registry.NumGoods; i++ {
		if arr[i] != 0 {
			m[ctx.registry.Good(registry.GoodID(i)).Name] = arr[i]
		}
	}
	return m
}

// Snapshot 构建当前时刻的完整模拟快照
// 功能：面向渲染/调试协作方的只读视图：货币总量、全球价格与供需、
// 逐县/省/王国状态、各系统耗时
// 说明：只读取状态，不产生任何模拟副作用
func (ctx *Context) Snapshot() *output.Snapshot {
	s := &output.Snapshot{
		Day:        ctx.clock.Day,
		Year:       ctx.clock.Year(),
		Month:      ctx.clock.Month(),
		DayOfMonth: ctx.clock.DayOfMonth(),
		Minted:     ctx.fiscal.Minted(),
		Traded:     ctx.fiscal.Traded(),
		Fiscal:     ctx.fiscal.Flows(),
		Prices:     make(map[string]float64, registry.NumGoods),
	}
	for i := 0; i < registry.NumGoods; i++ {
		s.Prices[ctx.registry.Good(registry.GoodID(i)).Name] = ctx.prices.Get(registry.GoodID(i))
	}
	s.Supply = ctx.goodMap(ctx.interRealm.Supply())
	s.Demand = ctx.goodMap(ctx.interRealm.Demand())

	var production [registry.NumGoods]float64
	for _, c := range ctx.countyManager.Counties() {
		prod := c.Production()
		for i := 0; i < registry.NumGoods; i++ {
			production[i] += prod[i]
		}
		s.Population += c.Population()
		unmet := c.Unmet()
		for _, g := range ctx.registry.Staples() {
			if unmet[g] > 0 {
				s.StarvingCounties++
				break
			}
		}
		s.MoneySupply += c.Treasury()
		s.Counties = append(s.Counties, output.CountySnapshot{
			ID:                c.ID(),
			Name:              c.Name(),
			ProvinceID:        c.ProvinceID(),
			RealmID:           c.RealmID(),
			Population:        c.Population(),
			Treasury:          c.Treasury(),
			BasicSatisfaction: c.BasicSatisfaction(),
			Satisfaction:      c.Satisfaction(),
			Stock:             ctx.goodMap(c.Stock()),
			Production:        ctx.goodMap(c.Production()),
			Unmet:             ctx.goodMap(c.Unmet()),
		})
	}
	s.ProductionByGood = ctx.goodMap(&production)

	for _, p := range ctx.provinceManager.Provinces() {
		s.MoneySupply += p.Treasury()
		s.Provinces = append(s.Provinces, output.ProvinceSnapshot{
			ID:       p.ID(),
			Name:     p.Name(),
			RealmID:  p.RealmID(),
			Treasury: p.Treasury(),
			Granary:  ctx.goodMap(p.Granary()),
		})
	}
	for _, r := range ctx.realmManager.Realms() {
		s.MoneySupply += r.Treasury()
		pop := 0.0
		for _, pid := range r.ProvinceIDs() {
			for _, cid := range ctx.provinceManager.Get(pid).CountyIDs() {
				pop += ctx.countyManager.Get(cid).Population()
			}
		}
		s.Realms = append(s.Realms, output.RealmSnapshot{
			ID:         r.ID(),
			Name:       r.Name(),
			Treasury:   r.Treasury(),
			Population: pop,
			Stockpile:  ctx.goodMap(r.Stockpile()),
			Deficit:    ctx.goodMap(r.Deficit()),
		})
	}

	s.Performance = make(map[string]output.SystemPerf)
	for name, stat := range ctx.scheduler.Stats() {
		perf := output.SystemPerf{
			Count:   stat.Count,
			TotalMs: float64(stat.Total.Microseconds()) / 1000,
			MaxMs:   float64(stat.Max.Microseconds()) / 1000,
		}
		if stat.Count > 0 {
			perf.AvgMs = perf.TotalMs / float64(stat.Count)
		}
		s.Performance[name] = perf
	}
	return s
}
