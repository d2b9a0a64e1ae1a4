package registry

// GoodID 商品索引
// 说明：所有按商品维度存储的数组均以该索引寻址，顺序固定不可变
type GoodID int32

const (
	Wheat GoodID = iota
	Flour
	Bread
	Ale
	Salt
	Fish
	SaltedFish
	Stockfish
	Milk
	Cheese
	Pork
	Sausage
	Bacon
	Wool
	Clothes
	Timber
	Furniture
	Clay
	Pottery
	IronOre
	Charcoal
	Iron
	Tools
	Stone
	GoldOre
	SilverOre

	// NumGoods 商品总数
	NumGoods = int(SilverOre) + 1
)

// NeedCategory 需求类别
type NeedCategory int32

const (
	NeedNone    NeedCategory = iota // 无直接人口需求（原料、中间品）
	NeedStaple                      // 主食：参与共享食物预算
	NeedBasic                       // 基本需求
	NeedComfort                     // 舒适品
)

// FoodBudget 共享食物预算（kg/人/天）
// 说明：所有主食共同填充该预算，各主食按理想份额分摊
const FoodBudget = 1.0

// Good 商品静态定义
// 功能：描述一种商品的全部静态属性
// 说明：注册表加载后不可变，运行期只读
type Good struct {
	Name     string       // 商品名（与外部数据、调试输出中的名称一致）
	Category NeedCategory // 需求类别

	Consumption float64 // 人均每日消耗（kg），主食为0（由食物预算统一结算）
	BasePrice   float64 // 基准价格（Crown/kg）
	MinPrice    float64 // 价格下限
	MaxPrice    float64 // 价格上限
	SpoilRate   float64 // 每日损耗率；对耐用品表示磨损率

	// DurableTarget 耐用品人均目标存量（kg/人），0表示流量商品
	DurableTarget float64

	// 各级行政机构的人均每日实物消耗（kg/人/天），从县库存扣除
	AdminCounty   float64
	AdminProvince float64
	AdminRealm    float64

	// IdealShare 主食在食物预算中的理想份额，非主食为0
	IdealShare float64

	Tradeable bool // 是否参与贸易（金银矿石为王室专有，不可交易）

	// 以下两项为注册表装载时从配方推导的链路属性
	chainRaw bool // 耐用品产业链原料（铁矿石、木材、陶土、羊毛）
	chainMid bool // 耐用品产业链中间品（木炭、铁）
}

// IsDurable 是否为耐用品
func (g *Good) IsDurable() bool { return g.DurableTarget > 0 }

// IsStaple 是否为主食
func (g *Good) IsStaple() bool { return g.Category == NeedStaple }

// IsPerishable 是否参与月度腐坏结算（有损耗率且非耐用品）
func (g *Good) IsPerishable() bool { return g.SpoilRate > 0 && !g.IsDurable() }

// IsChainRaw 是否为耐用品产业链原料
func (g *Good) IsChainRaw() bool { return g.chainRaw }

// IsChainMid 是否为耐用品产业链中间品
func (g *Good) IsChainMid() bool { return g.chainMid }

// HasDirectDemand 是否存在直接人口需求
func (g *Good) HasDirectDemand() bool {
	return g.IsStaple() || g.Consumption > 0 || g.IsDurable()
}

// goodDefs 全部26种商品的静态定义，下标与GoodID一致
var goodDefs = [NumGoods]Good{
	Wheat:      {Name: "wheat", Category: NeedStaple, BasePrice: 0.6, MinPrice: 0.15, MaxPrice: 2.4, SpoilRate: 0.002, IdealShare: 0.30, Tradeable: true},
	Flour:      {Name: "flour", Category: NeedNone, BasePrice: 0.8, MinPrice: 0.2, MaxPrice: 3.2, SpoilRate: 0.002, Tradeable: true},
	Bread:      {Name: "bread", Category: NeedStaple, BasePrice: 1.0, MinPrice: 0.25, MaxPrice: 4.0, SpoilRate: 0.05, IdealShare: 0.25, AdminCounty: 0.002, AdminProvince: 0.001, AdminRealm: 0.0005, Tradeable: true},
	Ale:        {Name: "ale", Category: NeedBasic, Consumption: 0.3, BasePrice: 0.8, MinPrice: 0.2, MaxPrice: 3.2, SpoilRate: 0.01, AdminCounty: 0.001, Tradeable: true},
	Salt:       {Name: "salt", Category: NeedBasic, Consumption: 0.01, BasePrice: 3.0, MinPrice: 0.75, MaxPrice: 12.0, Tradeable: true},
	Fish:       {Name: "fish", Category: NeedNone, BasePrice: 1.5, MinPrice: 0.4, MaxPrice: 6.0, SpoilRate: 0.1, Tradeable: true},
	SaltedFish: {Name: "saltedFish", Category: NeedStaple, BasePrice: 3.0, MinPrice: 0.75, MaxPrice: 12.0, SpoilRate: 0.005, IdealShare: 0.12, Tradeable: true},
	Stockfish:  {Name: "stockfish", Category: NeedStaple, BasePrice: 2.5, MinPrice: 0.6, MaxPrice: 10.0, SpoilRate: 0.002, IdealShare: 0.08, Tradeable: true},
	Milk:       {Name: "milk", Category: NeedNone, BasePrice: 1.5, MinPrice: 0.4, MaxPrice: 6.0, SpoilRate: 0.15, Tradeable: true},
	Cheese:     {Name: "cheese", Category: NeedStaple, BasePrice: 6.0, MinPrice: 1.5, MaxPrice: 24.0, SpoilRate: 0.003, IdealShare: 0.10, Tradeable: true},
	Pork:       {Name: "pork", Category: NeedNone, BasePrice: 2.0, MinPrice: 0.5, MaxPrice: 8.0, SpoilRate: 0.08, Tradeable: true},
	Sausage:    {Name: "sausage", Category: NeedStaple, BasePrice: 4.0, MinPrice: 1.0, MaxPrice: 16.0, SpoilRate: 0.01, IdealShare: 0.15, Tradeable: true},
	Bacon:      {Name: "bacon", Category: NeedComfort, Consumption: 0.05, BasePrice: 5.0, MinPrice: 1.25, MaxPrice: 20.0, SpoilRate: 0.005, Tradeable: true},
	Wool:       {Name: "wool", Category: NeedNone, BasePrice: 2.0, MinPrice: 0.5, MaxPrice: 8.0, Tradeable: true},
	Clothes:    {Name: "clothes", Category: NeedBasic, BasePrice: 3.0, MinPrice: 0.75, MaxPrice: 12.0, SpoilRate: 0.001, DurableTarget: 5.0, Tradeable: true},
	Timber:     {Name: "timber", Category: NeedNone, BasePrice: 0.5, MinPrice: 0.125, MaxPrice: 2.0, AdminCounty: 0.003, AdminProvince: 0.002, AdminRealm: 0.001, Tradeable: true},
	Furniture:  {Name: "furniture", Category: NeedComfort, BasePrice: 5.0, MinPrice: 1.25, MaxPrice: 20.0, SpoilRate: 0.0005, DurableTarget: 10.0, Tradeable: true},
	Clay:       {Name: "clay", Category: NeedNone, BasePrice: 0.2, MinPrice: 0.05, MaxPrice: 0.8, Tradeable: true},
	Pottery:    {Name: "pottery", Category: NeedBasic, BasePrice: 2.0, MinPrice: 0.5, MaxPrice: 8.0, SpoilRate: 0.002, DurableTarget: 2.0, Tradeable: true},
	IronOre:    {Name: "ironOre", Category: NeedNone, BasePrice: 5.0, MinPrice: 1.25, MaxPrice: 20.0, Tradeable: true},
	Charcoal:   {Name: "charcoal", Category: NeedNone, BasePrice: 2.0, MinPrice: 0.5, MaxPrice: 8.0, Tradeable: true},
	Iron:       {Name: "iron", Category: NeedNone, BasePrice: 10.0, MinPrice: 2.5, MaxPrice: 40.0, Tradeable: true},
	Tools:      {Name: "tools", Category: NeedBasic, BasePrice: 15.0, MinPrice: 3.75, MaxPrice: 60.0, SpoilRate: 0.003, DurableTarget: 1.0, AdminCounty: 0.001, AdminProvince: 0.0005, AdminRealm: 0.0005, Tradeable: true},
	Stone:      {Name: "stone", Category: NeedNone, BasePrice: 0.3, MinPrice: 0.075, MaxPrice: 1.2, AdminCounty: 0.002, AdminProvince: 0.002, AdminRealm: 0.002, Tradeable: true},
	GoldOre:    {Name: "goldOre", Category: NeedNone},
	SilverOre:  {Name: "silverOre", Category: NeedNone},
}

// 铸币参数：矿石冶炼收得率与每公斤成币价值（Crown/kg）
const (
	GoldSmeltYield   = 0.01
	GoldCrownPerKg   = 1000.0
	SilverSmeltYield = 0.05
	SilverCrownPerKg = 100.0
)

// buyPriority 贸易购买优先级（主食优先），各贸易阶段内按该顺序逐商品出清
var buyPriority = []GoodID{
	Wheat, Bread, Sausage, SaltedFish, Cheese, Stockfish,
	Salt, Ale, Clothes, Tools, Pottery, Bacon, Furniture,
	Flour, Fish, Milk, Pork, Wool, Timber, Clay, IronOre, Charcoal, Iron, Stone,
}
