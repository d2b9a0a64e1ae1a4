package config

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息
// 说明：将YAML配置转换为运行时可用的配置对象，填充各项默认值
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 算法说明：
// 1. 创建运行时配置对象
// 2. 设置默认值：未指定总天数则默认为1天，未指定输出间隔则默认30天
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control
	if rc.C.Step.Total <= 0 {
		rc.C.Step.Total = 1
	}
	if rc.All.Output.Interval <= 0 {
		rc.All.Output.Interval = 30
	}

	return rc
}
