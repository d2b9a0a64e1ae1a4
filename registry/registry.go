package registry

import (
	"fmt"
	"math"
)

// Registry 静态注册表
// 功能：持有商品、设施配方、处理顺序、贸易优先级等全部静态配置
// 说明：引导期装载并校验一次，之后全局共享只读；任何校验失败都会
// 阻止模拟开始（快速失败），运行期不存在配置类错误路径
type Registry struct {
	goods       [NumGoods]Good
	recipes     [NumFacilities]Recipe
	goodByName  map[string]GoodID
	durablePass []FacilityType
	flowPass    []FacilityType
	buyPriority []GoodID
	staples     []GoodID
}

// New 装载并校验静态注册表
// 返回：注册表实例和校验错误
// 算法说明：
// 1. 复制静态定义表
// 2. 从配方推导产业链属性（耐用品链原料/中间品）
// 3. 逐项校验商品、配方、处理顺序的完整性与一致性
func New() (*Registry, error) {
	r := &Registry{
		goods:       goodDefs,
		recipes:     recipeDefs,
		goodByName:  make(map[string]GoodID, NumGoods),
		durablePass: durablePass,
		flowPass:    flowPass,
		buyPriority: buyPriority,
	}
	for i := range r.goods {
		r.goodByName[r.goods[i].Name] = GoodID(i)
		if r.goods[i].IsStaple() {
			r.staples = append(r.staples, GoodID(i))
		}
	}
	r.deriveChains()
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// deriveChains 从配方推导耐用品产业链属性
// 算法说明：
// 1. 中间品：被耐用品设施消费、且自身由设施产出的商品
// 2. 原料：被耐用品设施或中间品设施消费、且不由任何设施产出的商品
func (r *Registry) deriveChains() {
	produced := make(map[GoodID]bool, NumFacilities)
	for i := range r.recipes {
		produced[r.recipes[i].Output] = true
	}
	chainConsumed := make(map[GoodID]bool)
	for i := range r.recipes {
		if !r.goods[r.recipes[i].Output].IsDurable() {
			continue
		}
		for _, in := range r.recipes[i].Inputs {
			chainConsumed[in.Good] = true
		}
	}
	// 中间品设施的投入同样属于链路（如smelter消费的ironOre）
	for i := range r.recipes {
		if !chainConsumed[r.recipes[i].Output] || !produced[r.recipes[i].Output] {
			continue
		}
		for _, in := range r.recipes[i].Inputs {
			chainConsumed[in.Good] = true
		}
	}
	for g := range chainConsumed {
		if produced[g] {
			r.goods[g].chainMid = true
		} else {
			r.goods[g].chainRaw = true
		}
	}
}

// validate 引导期完整性校验
func (r *Registry) validate() error {
	shareSum := 0.0
	for i := range r.goods {
		g := &r.goods[i]
		if g.Name == "" {
			return fmt.Errorf("good %d: empty name", i)
		}
		if g.MinPrice > g.BasePrice || g.BasePrice > g.MaxPrice {
			return fmt.Errorf("good %s: price bounds %f <= %f <= %f violated",
				g.Name, g.MinPrice, g.BasePrice, g.MaxPrice)
		}
		if g.Consumption < 0 || g.SpoilRate < 0 || g.DurableTarget < 0 ||
			g.AdminCounty < 0 || g.AdminProvince < 0 || g.AdminRealm < 0 {
			return fmt.Errorf("good %s: negative rate", g.Name)
		}
		if g.IsStaple() {
			if g.IdealShare <= 0 {
				return fmt.Errorf("staple %s: ideal share must be positive", g.Name)
			}
			shareSum += g.IdealShare
		} else if g.IdealShare != 0 {
			return fmt.Errorf("good %s: ideal share on non-staple", g.Name)
		}
		// 耐用品的日消耗由磨损+缺口公式结算，流量消耗率必须为0
		if g.IsDurable() && g.Consumption > 0 {
			return fmt.Errorf("good %s: durable and flow consumption are exclusive", g.Name)
		}
	}
	if math.Abs(shareSum-1.0) > 1e-9 {
		return fmt.Errorf("staple ideal shares sum to %f, want 1.0", shareSum)
	}

	for i := range r.recipes {
		rec := &r.recipes[i]
		if rec.Name == "" {
			return fmt.Errorf("recipe %d: empty name", i)
		}
		if !r.validGood(rec.Output) {
			return fmt.Errorf("recipe %s: invalid output good %d", rec.Name, rec.Output)
		}
		if len(rec.Inputs) == 0 {
			return fmt.Errorf("recipe %s: no inputs", rec.Name)
		}
		for _, in := range rec.Inputs {
			if !r.validGood(in.Good) {
				return fmt.Errorf("recipe %s: invalid input good %d", rec.Name, in.Good)
			}
			if in.Amount <= 0 {
				return fmt.Errorf("recipe %s: non-positive input amount", rec.Name)
			}
		}
		if rec.OutputAmount <= 0 || rec.LaborPerUnit <= 0 ||
			rec.MaxWorkforce <= 0 || rec.MaxWorkforce > 1 {
			return fmt.Errorf("recipe %s: invalid output/labor parameters", rec.Name)
		}
	}

	return r.validatePasses()
}

// validatePasses 校验两遍处理顺序
// 算法说明：
// 1. 第一遍必须恰好覆盖全部耐用品设施
// 2. 第二遍必须是非耐用品设施的一个排列
// 3. 第二遍中，中间品的消费方必须出现在其生产方之前
func (r *Registry) validatePasses() error {
	seen := make(map[FacilityType]bool, NumFacilities)
	for _, f := range r.durablePass {
		if seen[f] {
			return fmt.Errorf("durable pass: duplicate facility %s", r.recipes[f].Name)
		}
		seen[f] = true
		if !r.goods[r.recipes[f].Output].IsDurable() {
			return fmt.Errorf("durable pass: %s outputs non-durable good", r.recipes[f].Name)
		}
	}
	pos := make(map[FacilityType]int, NumFacilities)
	for i, f := range r.flowPass {
		if seen[f] {
			return fmt.Errorf("flow pass: facility %s already scheduled", r.recipes[f].Name)
		}
		seen[f] = true
		pos[f] = i
	}
	if len(seen) != NumFacilities {
		return fmt.Errorf("processing passes cover %d of %d facilities", len(seen), NumFacilities)
	}
	// 消费方先于生产方：若flowPass中f消费了g且g由p产出，则pos[f] < pos[p]
	for _, f := range r.flowPass {
		for _, in := range r.recipes[f].Inputs {
			for _, p := range r.flowPass {
				if r.recipes[p].Output == in.Good && pos[f] > pos[p] {
					return fmt.Errorf("flow pass: %s consumes %s but runs after its producer %s",
						r.recipes[f].Name, r.goods[in.Good].Name, r.recipes[p].Name)
				}
			}
		}
	}

	seenGood := make(map[GoodID]bool, len(r.buyPriority))
	for _, g := range r.buyPriority {
		if !r.validGood(g) || !r.goods[g].Tradeable {
			return fmt.Errorf("buy priority: good %d not tradeable", g)
		}
		if seenGood[g] {
			return fmt.Errorf("buy priority: duplicate good %s", r.goods[g].Name)
		}
		seenGood[g] = true
	}
	for i := range r.goods {
		if r.goods[i].Tradeable && !seenGood[GoodID(i)] {
			return fmt.Errorf("buy priority: tradeable good %s missing", r.goods[i].Name)
		}
	}
	return nil
}

func (r *Registry) validGood(g GoodID) bool {
	return g >= 0 && int(g) < NumGoods
}

// Good 获取商品静态定义（只读）
func (r *Registry) Good(g GoodID) *Good { return &r.goods[g] }

// Recipe 获取设施配方（只读）
func (r *Registry) Recipe(f FacilityType) *Recipe { return &r.recipes[f] }

// GoodByName 按名称查找商品索引
func (r *Registry) GoodByName(name string) (GoodID, bool) {
	g, ok := r.goodByName[name]
	return g, ok
}

// DurablePass 第一遍处理顺序（耐用品设施）
func (r *Registry) DurablePass() []FacilityType { return r.durablePass }

// FlowPass 第二遍处理顺序（非耐用品设施，显式拓扑序）
func (r *Registry) FlowPass() []FacilityType { return r.flowPass }

// BuyPriority 贸易购买优先级
func (r *Registry) BuyPriority() []GoodID { return r.buyPriority }

// Staples 全部主食
func (r *Registry) Staples() []GoodID { return r.staples }
