// 演示世界生成器
// 说明：在没有外部地图协作方数据时，按配置合成一个确定性的演示世界：
// 县排布在矩形网格上，四邻接，生物群系抽样决定采集生产率，
// 到网格边缘的距离近似到海岸距离
package worldgen

import (
	"fmt"
	"math"

	"github.com/feudalsim/feudalsim-oss/registry"
	"github.com/feudalsim/feudalsim-oss/utils/config"
	"github.com/feudalsim/feudalsim-oss/utils/input"
	"github.com/feudalsim/feudalsim-oss/utils/randengine"
)

// 生物群系抽样权重，下标与registry.Biome一致
var biomeWeights = []float64{0.30, 0.20, 0.18, 0.10, 0.15, 0.07}

const (
	// 初始库存的覆盖天数
	initStockDays = 5.0
	// 耐用品初始存量相对目标的比例
	initDurableFill = 0.8
)

// Generate 生成演示世界
// 参数：demo-演示世界配置（县/省/王国数量与随机种子）
// 返回：与外部数据同构的世界输入
// 算法说明：
// 1. 县排布在接近正方形的网格上，四邻接
// 2. 每县抽样生物群系，生产率 = 群系基础产出×扰动，渔获类
// 按到网格边缘的距离等级加成
// 3. 县按下标顺序均匀切分为省，省均匀切分为王国
// 4. 初始库存按人口给出若干天消费量，避免开局即饥荒
func Generate(demo *config.Demo) *input.World {
	n := int(demo.Counties)
	numProvinces := int(demo.Provinces)
	numRealms := int(demo.Realms)
	if n <= 0 || numProvinces <= 0 || numRealms <= 0 ||
		numProvinces > n || numRealms > numProvinces {
		log.Panicf("invalid demo config: %d counties, %d provinces, %d realms",
			n, numProvinces, numRealms)
	}
	engine := randengine.New(demo.Seed)
	reg := mustRegistry()

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	// 均衡切分：县按下标均匀划入省，省均匀划入王国，
	// 任何数量组合下每个省/王国都非空，省治取本省第一个县
	countyProvince := make([]int32, n)
	provinceCapital := make([]int32, numProvinces)
	for i := 0; i < n; i++ {
		p := int32(i * numProvinces / n)
		countyProvince[i] = p
		if i == 0 || countyProvince[i-1] != p {
			provinceCapital[p] = int32(i)
		}
	}
	provinceRealm := make([]int32, numProvinces)
	realmFirstProvince := make([]int32, numRealms)
	for p := 0; p < numProvinces; p++ {
		r := int32(p * numRealms / numProvinces)
		provinceRealm[p] = r
		if p == 0 || provinceRealm[p-1] != r {
			realmFirstProvince[r] = int32(p)
		}
	}

	w := &input.World{Name: fmt.Sprintf("demo-%d", demo.Seed)}
	for i := 0; i < n; i++ {
		row, col := i/cols, i%cols
		provinceID := countyProvince[i]
		realmID := provinceRealm[provinceID]

		c := &input.County{
			ID:           int32(i),
			Name:         fmt.Sprintf("county-%d", i),
			ProvinceID:   provinceID,
			RealmID:      realmID,
			Population:   math.Floor(engine.Range(200, 2000)),
			Productivity: make(map[string]float64),
			Stock:        make(map[string]float64),
		}
		// 四邻接
		if col > 0 {
			c.Adjacent = append(c.Adjacent, int32(i-1))
		}
		if col < cols-1 && i+1 < n {
			c.Adjacent = append(c.Adjacent, int32(i+1))
		}
		if row > 0 {
			c.Adjacent = append(c.Adjacent, int32(i-cols))
		}
		if i+cols < n {
			c.Adjacent = append(c.Adjacent, int32(i+cols))
		}

		biome := registry.Biome(engine.DiscreteDistribution(biomeWeights))
		distClass := int32(min(min(row, col), min(rows-1-row, cols-1-col)))
		bonus := registry.CoastalFishBonus(distClass)
		yields := registry.YieldOf(biome)
		for g := 0; g < registry.NumGoods; g++ {
			y := yields[g]
			if y <= 0 {
				continue
			}
			y *= engine.Range(0.8, 1.2)
			switch registry.GoodID(g) {
			case registry.Fish, registry.Stockfish, registry.Salt:
				y *= bonus
			}
			c.Productivity[reg.Good(registry.GoodID(g)).Name] = y
		}
		fillInitialStock(reg, c)
		c.Treasury = c.Population * 2

		w.Counties = append(w.Counties, c)
	}

	for p := 0; p < numProvinces; p++ {
		w.Provinces = append(w.Provinces, &input.Province{
			ID:        int32(p),
			Name:      fmt.Sprintf("province-%d", p),
			RealmID:   provinceRealm[p],
			CapitalID: provinceCapital[p],
			Treasury:  500,
			Granary:   map[string]float64{},
		})
	}
	for r := 0; r < numRealms; r++ {
		w.Realms = append(w.Realms, &input.Realm{
			ID:              int32(r),
			Name:            fmt.Sprintf("realm-%d", r),
			CapitalCountyID: provinceCapital[realmFirstProvince[r]],
			Treasury:        2000,
			Stockpile:       map[string]float64{},
		})
	}
	log.Infof("generated demo world: %d counties on %dx%d grid, %d provinces, %d realms",
		n, rows, cols, numProvinces, numRealms)
	return w
}

// fillInitialStock 按人口填充初始库存
// 说明：主食给5日预算份额，流量消费品给5日消耗，耐用品给八成目标
// 存量，保证模拟开局处于大致满足状态
func fillInitialStock(reg *registry.Registry, c *input.County) {
	for g := 0; g < registry.NumGoods; g++ {
		good := reg.Good(registry.GoodID(g))
		var amount float64
		switch {
		case good.IsStaple():
			amount = c.Population * good.IdealShare * registry.FoodBudget * initStockDays
		case good.IsDurable():
			amount = c.Population * good.DurableTarget * initDurableFill
		case good.Consumption > 0:
			amount = c.Population * good.Consumption * initStockDays
		}
		if amount > 0 {
			c.Stock[good.Name] = amount
		}
	}
}

// mustRegistry 获取静态注册表，失败时panic
func mustRegistry() *registry.Registry {
	reg, err := registry.New()
	if err != nil {
		log.Panicf("failed to load registry: %v", err)
	}
	return reg
}
