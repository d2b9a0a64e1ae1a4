package registry

// FacilityType 设施类型索引
// 说明：每个县固定拥有每种设施各一座，按该索引寻址
type FacilityType int32

const (
	Mill FacilityType = iota
	Bakery
	Brewery
	Butcher
	Smokehouse
	Creamery
	Saltery
	CharcoalBurner
	Smelter
	Toolsmith
	Carpenter
	PotteryKiln
	Weaver

	// NumFacilities 设施类型总数
	NumFacilities = int(Weaver) + 1
)

// Ingredient 配方投入项
type Ingredient struct {
	Good   GoodID  // 投入商品
	Amount float64 // 每单位产出所需投入量（kg）
}

// Recipe 设施配方静态定义
// 功能：描述一种设施的投入产出、劳动力需求与用工上限
type Recipe struct {
	Name         string       // 设施名
	Inputs       []Ingredient // 投入列表
	Output       GoodID       // 产出商品
	OutputAmount float64      // 每单位产出量（kg）
	LaborPerUnit float64      // 每单位产出所需劳动力（人·天）
	MaxWorkforce float64      // 最大用工比例（占县人口）
}

// recipeDefs 全部13种设施配方，下标与FacilityType一致
var recipeDefs = [NumFacilities]Recipe{
	Mill:           {Name: "mill", Inputs: []Ingredient{{Wheat, 1.2}}, Output: Flour, OutputAmount: 1.0, LaborPerUnit: 0.02, MaxWorkforce: 0.03},
	Bakery:         {Name: "bakery", Inputs: []Ingredient{{Flour, 0.8}}, Output: Bread, OutputAmount: 1.0, LaborPerUnit: 0.025, MaxWorkforce: 0.04},
	Brewery:        {Name: "brewery", Inputs: []Ingredient{{Wheat, 0.5}}, Output: Ale, OutputAmount: 1.0, LaborPerUnit: 0.02, MaxWorkforce: 0.02},
	Butcher:        {Name: "butcher", Inputs: []Ingredient{{Pork, 1.1}, {Salt, 0.03}}, Output: Sausage, OutputAmount: 1.0, LaborPerUnit: 0.03, MaxWorkforce: 0.02},
	Smokehouse:     {Name: "smokehouse", Inputs: []Ingredient{{Pork, 1.2}, {Salt, 0.04}}, Output: Bacon, OutputAmount: 1.0, LaborPerUnit: 0.03, MaxWorkforce: 0.01},
	Creamery:       {Name: "creamery", Inputs: []Ingredient{{Milk, 2.5}, {Salt, 0.02}}, Output: Cheese, OutputAmount: 1.0, LaborPerUnit: 0.04, MaxWorkforce: 0.015},
	Saltery:        {Name: "saltery", Inputs: []Ingredient{{Fish, 1.3}, {Salt, 0.2}}, Output: SaltedFish, OutputAmount: 1.0, LaborPerUnit: 0.02, MaxWorkforce: 0.02},
	CharcoalBurner: {Name: "charcoalBurner", Inputs: []Ingredient{{Timber, 4.0}}, Output: Charcoal, OutputAmount: 1.0, LaborPerUnit: 0.01, MaxWorkforce: 0.015},
	Smelter:        {Name: "smelter", Inputs: []Ingredient{{IronOre, 2.0}, {Charcoal, 1.0}}, Output: Iron, OutputAmount: 1.0, LaborPerUnit: 0.05, MaxWorkforce: 0.01},
	Toolsmith:      {Name: "toolsmith", Inputs: []Ingredient{{Iron, 1.1}, {Charcoal, 0.5}}, Output: Tools, OutputAmount: 1.0, LaborPerUnit: 0.2, MaxWorkforce: 0.01},
	Carpenter:      {Name: "carpenter", Inputs: []Ingredient{{Timber, 2.0}}, Output: Furniture, OutputAmount: 1.0, LaborPerUnit: 0.1, MaxWorkforce: 0.02},
	PotteryKiln:    {Name: "potteryKiln", Inputs: []Ingredient{{Clay, 1.5}, {Charcoal, 0.2}}, Output: Pottery, OutputAmount: 1.0, LaborPerUnit: 0.05, MaxWorkforce: 0.015},
	Weaver:         {Name: "weaver", Inputs: []Ingredient{{Wool, 1.2}}, Output: Clothes, OutputAmount: 1.0, LaborPerUnit: 0.15, MaxWorkforce: 0.02},
}

// durablePass 第一遍处理顺序：耐用品设施（按存量缺口驱动）
var durablePass = []FacilityType{Toolsmith, Carpenter, PotteryKiln, Weaver}

// flowPass 第二遍处理顺序：非耐用品设施
// 说明：这是一个显式的正确性契约，不是偶然的枚举顺序——
// 中间品的消费方必须先于其生产方执行，使生产方在计算自身目标产量时
// 能看到已累计的下游需求（如smelter先于charcoalBurner）
var flowPass = []FacilityType{
	Bakery, Butcher, Smokehouse, Creamery, Saltery, Brewery,
	Mill, Smelter, CharcoalBurner,
}
