package config

// InputPath 指定输入数据来源的配置（MongoDB、文件系统）
// 功能：定义世界数据输入路径的配置结构，支持多种数据源
// 说明：支持MongoDB数据库和文件系统两种数据源，支持缓存机制
type InputPath struct {
	DB        string `yaml:"db"`                   // 数据库名
	Col       string `yaml:"col"`                  // 集合名
	Cache     string `yaml:"cache,omitempty"`      // 缓存文件名，为空则采用默认路径{db}.{col}.json
	OnlyCache bool   `yaml:"only_cache,omitempty"` // 只从缓存中获取
	File      string `yaml:"file,omitempty"`       // 文件路径（优先级高于MongoDB）
}

// GetCachePath 获取缓存文件路径
// 算法说明：
// 1. 如果指定了缓存路径，直接返回
// 2. 否则使用默认命名规则：{数据库名}.{集合名}.json
func (p InputPath) GetCachePath() string {
	if p.Cache != "" {
		return p.Cache
	}
	return p.DB + "." + p.Col + ".json"
}

// Demo 内置演示世界的生成配置
// 说明：当未提供外部世界数据时，由worldgen按该配置合成一个确定性的演示世界
type Demo struct {
	Counties  int32  `yaml:"counties"`  // 县数量
	Provinces int32  `yaml:"provinces"` // 省数量
	Realms    int32  `yaml:"realms"`    // 王国数量
	Seed      uint64 `yaml:"seed"`      // 随机种子（相同种子产生相同世界）
}

// Input 指定模拟器所有输入数据的配置项
type Input struct {
	URI   string    `yaml:"uri,omitempty"`   // MongoDB连接字符串
	World InputPath `yaml:"world,omitempty"` // 世界数据（县树、邻接图、市场县）
	Demo  *Demo     `yaml:"demo,omitempty"`  // 演示世界配置（无外部数据时使用）
}

// ControlStep 指定模拟器模拟时间范围和步长的配置项
type ControlStep struct {
	Start           int32   `yaml:"start"`                        // 开始天数
	Total           int32   `yaml:"total"`                        // 总天数
	DaySeconds      float64 `yaml:"day_seconds,omitempty"`        // 每个模拟天对应的真实秒数（默认1）
	MaxDaysPerFrame int32   `yaml:"max_days_per_frame,omitempty"` // 单帧最大推进天数（默认8）
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
}

// Output 模拟结果输出配置
type Output struct {
	File     string `yaml:"file,omitempty"`     // 快照输出文件（JSON Lines），为空则不输出
	Interval int32  `yaml:"interval,omitempty"` // 输出间隔（天），默认30
}

// Config YAML配置文件的根结构
type Config struct {
	Input   Input   `yaml:"input"`            // 输入
	Control Control `yaml:"control"`          // 模拟过程控制
	Output  Output  `yaml:"output,omitempty"` // 输出
}
