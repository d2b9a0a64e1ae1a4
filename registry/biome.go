package registry

// Biome 地块生物群系
type Biome int32

const (
	BiomePlains Biome = iota
	BiomeForest
	BiomeHills
	BiomeMountains
	BiomeCoast
	BiomeMarsh

	// NumBiomes 生物群系总数
	NumBiomes = int(BiomeMarsh) + 1
)

// biomeNames 生物群系名称
var biomeNames = [NumBiomes]string{"plains", "forest", "hills", "mountains", "coast", "marsh"}

// Name 生物群系名称
func (b Biome) Name() string {
	if int(b) < 0 || int(b) >= NumBiomes {
		return "unknown"
	}
	return biomeNames[b]
}

// BiomeYield 生物群系基础产出表（kg/人/天）
// 说明：仅被世界生成器/地图协作方消费，用于预计算县的商品生产率；
// 模拟核心只读取县上已计算好的生产率
type BiomeYield [NumGoods]float64

// biomeYields 各生物群系对可采集商品的基础产出
var biomeYields = [NumBiomes]BiomeYield{
	BiomePlains: {
		Wheat: 1.6, Milk: 0.5, Pork: 0.4, Wool: 0.3, Clay: 0.4, Stone: 0.1,
	},
	BiomeForest: {
		Wheat: 0.6, Pork: 0.5, Timber: 1.2, Clay: 0.2, Stone: 0.1,
	},
	BiomeHills: {
		Wheat: 0.8, Milk: 0.4, Wool: 0.6, Timber: 0.5, Stone: 0.6,
		IronOre: 0.2, SilverOre: 0.01,
	},
	BiomeMountains: {
		Milk: 0.3, Wool: 0.4, Stone: 1.0,
		IronOre: 0.5, GoldOre: 0.005, SilverOre: 0.03,
	},
	BiomeCoast: {
		Wheat: 0.7, Fish: 1.5, Stockfish: 0.2, Salt: 0.3, Clay: 0.3,
	},
	BiomeMarsh: {
		Fish: 0.8, Clay: 0.6, Salt: 0.1,
	},
}

// CoastalFishBonus 按到海岸距离等级给出的渔获加成系数
// 参数：distClass-距离等级（0为沿海，越大越内陆）
// 返回：乘在fish/stockfish/salt生产率上的系数
func CoastalFishBonus(distClass int32) float64 {
	switch {
	case distClass <= 0:
		return 1.5
	case distClass == 1:
		return 1.2
	case distClass == 2:
		return 1.0
	default:
		return 0.5
	}
}

// YieldOf 获取指定生物群系的基础产出表
func YieldOf(b Biome) BiomeYield {
	if int(b) < 0 || int(b) >= NumBiomes {
		return BiomeYield{}
	}
	return biomeYields[b]
}
