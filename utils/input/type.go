package input

// 世界输入数据结构
// 说明：商品数量用以商品名为键的映射表示，与外部数据、调试输出中的
// 名称保持一致；实体初始化时再转换为按商品索引寻址的数组

// County 县输入数据
type County struct {
	ID         int32   `bson:"id" json:"id"`
	Name       string  `bson:"name" json:"name"`
	ProvinceID int32   `bson:"provinceId" json:"provinceId"`
	RealmID    int32   `bson:"realmId" json:"realmId"`
	Population float64 `bson:"population" json:"population"`
	Treasury   float64 `bson:"treasury" json:"treasury"`
	// Adjacent 相邻县ID列表
	Adjacent []int32 `bson:"adjacent" json:"adjacent"`
	// Productivity 采集生产率（kg/人/天），键为商品名
	Productivity map[string]float64 `bson:"productivity" json:"productivity"`
	// Stock 初始库存（kg），键为商品名
	Stock map[string]float64 `bson:"stock" json:"stock"`
}

// Province 省输入数据
type Province struct {
	ID        int32   `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	RealmID   int32   `bson:"realmId" json:"realmId"`
	CapitalID int32   `bson:"capitalId" json:"capitalId"`
	Treasury  float64 `bson:"treasury" json:"treasury"`
	// Granary 公爵粮仓初始库存（kg），键为商品名
	Granary map[string]float64 `bson:"granary" json:"granary"`
}

// Realm 王国输入数据
type Realm struct {
	ID              int32   `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	CapitalCountyID int32   `bson:"capitalCountyId" json:"capitalCountyId"`
	Treasury        float64 `bson:"treasury" json:"treasury"`
	// Stockpile 王室物资储备初始库存（kg），键为商品名
	Stockpile map[string]float64 `bson:"stockpile" json:"stockpile"`
}

// World 完整世界输入数据
type World struct {
	Name      string      `bson:"name" json:"name"`
	Counties  []*County   `bson:"counties" json:"counties"`
	Provinces []*Province `bson:"provinces" json:"provinces"`
	Realms    []*Realm    `bson:"realms" json:"realms"`
}
