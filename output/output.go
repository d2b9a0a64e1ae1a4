package output

// 模拟快照输出结构
// 说明：面向渲染/调试协作方的只读视图，全部商品量以商品名为键，
// 与输入数据的命名保持一致；按JSON Lines逐条写出

// CountySnapshot 县快照
type CountySnapshot struct {
	ID                int32              `json:"id"`
	Name              string             `json:"name"`
	ProvinceID        int32              `json:"provinceId"`
	RealmID           int32              `json:"realmId"`
	Population        float64            `json:"population"`
	Treasury          float64            `json:"treasury"`
	BasicSatisfaction float64            `json:"basicSatisfaction"`
	Satisfaction      float64            `json:"satisfaction"`
	Stock             map[string]float64 `json:"stock"`
	Production        map[string]float64 `json:"production"`
	Unmet             map[string]float64 `json:"unmet,omitempty"`
}

// ProvinceSnapshot 省快照
type ProvinceSnapshot struct {
	ID       int32              `json:"id"`
	Name     string             `json:"name"`
	RealmID  int32              `json:"realmId"`
	Treasury float64            `json:"treasury"`
	Granary  map[string]float64 `json:"granary"`
}

// RealmSnapshot 王国快照
type RealmSnapshot struct {
	ID         int32              `json:"id"`
	Name       string             `json:"name"`
	Treasury   float64            `json:"treasury"`
	Population float64            `json:"population"`
	Stockpile  map[string]float64 `json:"stockpile"`
	Deficit    map[string]float64 `json:"deficit,omitempty"`
}

// SystemPerf 单个系统的累计性能统计
type SystemPerf struct {
	Count   int64   `json:"count"`
	TotalMs float64 `json:"totalMs"`
	AvgMs   float64 `json:"avgMs"`
	MaxMs   float64 `json:"maxMs"`
}

// FiscalFlows 当日财政流量汇总
type FiscalFlows struct {
	// Tithes 县上缴省的什一税（Crown）
	Tithes float64 `json:"tithes"`
	// RealmShares 省上缴王国的分成（Crown）
	RealmShares float64 `json:"realmShares"`
	// Wages 发放的行政薪俸（Crown）
	Wages float64 `json:"wages"`
	// Fees 市场手续费（Crown）
	Fees float64 `json:"fees"`
	// Tolls 通行税（Crown）
	Tolls float64 `json:"tolls"`
	// Tariffs 关税（Crown）
	Tariffs float64 `json:"tariffs"`
	// GranaryPurchases 粮仓征购支出（Crown）
	GranaryPurchases float64 `json:"granaryPurchases"`
	// Relief 赈济发放量（kg）
	Relief float64 `json:"relief"`
}

// Snapshot 一次完整的模拟快照
type Snapshot struct {
	Day        int32 `json:"day"`
	Year       int32 `json:"year"`
	Month      int32 `json:"month"`
	DayOfMonth int32 `json:"dayOfMonth"`

	// Population 全体县人口之和
	Population float64 `json:"population"`
	// StarvingCounties 当日发生主食缺口的县数量
	StarvingCounties int `json:"starvingCounties"`

	// MoneySupply 全体金库之和（Crown）
	MoneySupply float64 `json:"moneySupply"`
	// Minted 当日铸币量（Crown）
	Minted float64 `json:"minted"`
	// Traded 当日贸易额（Crown，按市价计）
	Traded float64 `json:"traded"`
	// Fiscal 当日财政流量汇总
	Fiscal FiscalFlows `json:"fiscal"`

	Prices map[string]float64 `json:"prices"`
	Supply map[string]float64 `json:"supply"`
	Demand map[string]float64 `json:"demand"`

	// ProductionByGood 当日全球产出汇总（kg）
	ProductionByGood map[string]float64 `json:"productionByGood"`

	Counties  []CountySnapshot   `json:"counties"`
	Provinces []ProvinceSnapshot `json:"provinces"`
	Realms    []RealmSnapshot    `json:"realms"`

	// Performance 各系统累计耗时（仅观测用途）
	Performance map[string]SystemPerf `json:"performance,omitempty"`
}
