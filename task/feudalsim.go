package task

import (
	"flag"
)

const (
	SelfName = "feudalsim" // 本程序在模拟任务集群中的名字
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔天数")
)

// step 推进一个模拟天
// 功能：驱动调度器执行当日的全部系统，处理心跳日志与快照输出
// 算法说明：
// 1. 调度器按固定顺序执行间隔整除当前天数的系统
// 2. 按配置间隔写出快照
// 3. 推进天数计数
func (ctx *Context) step() {
	ctx.scheduler.Step()

	day := ctx.clock.Day
	if *heartBeatInterval > 0 && day%int32(*heartBeatInterval) == 0 {
		log.Infof("DAY: %s", ctx.clock)
	}
	if ctx.writer != nil && day%ctx.runtimeConfig.All.Output.Interval == 0 {
		if err := ctx.writer.Write(ctx.Snapshot()); err != nil {
			log.Errorf("failed to write snapshot: %v", err)
		}
	}

	ctx.clock.Day++
}

// Step 按真实时间推进模拟
// 功能：外部驱动器每帧调用一次，按时钟折算出的天数推进
// 参数：dt-自上次调用以来经过的真实秒数
// 返回：本帧实际推进的天数
func (ctx *Context) Step(dt float64) int32 {
	days := ctx.clock.Accumulate(dt)
	for i := int32(0); i < days; i++ {
		if ctx.closed.Load() {
			return i
		}
		ctx.step()
	}
	return days
}

// Run 运行
// 功能：初始化后以固定步长推进到模拟终点
func (ctx *Context) Run() {
	// 初始化
	ctx.Init()
	for !ctx.clock.Done() {
		if ctx.closed.Load() {
			break
		}
		ctx.Step(ctx.clock.DAY_DT)
	}
	for name, stat := range ctx.scheduler.Stats() {
		log.Infof("system %s: %d runs, %v total", name, stat.Count, stat.Total)
	}
	log.Infof("engine complete")
	ctx.Close()
}
