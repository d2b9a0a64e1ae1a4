package system

import (
	"time"

	"github.com/feudalsim/feudalsim-oss/entity"
)

// ISystem 模拟系统接口
// 说明：每个系统声明自己的执行间隔（天），由调度器在天边界统一驱动
type ISystem interface {
	Name() string    // 系统名
	Interval() int32 // 执行间隔（天）
	Update()         // 执行一个周期
}

// SystemStat 单个系统的累计耗时统计
// 说明：仅用于性能观测，不参与任何模拟语义
type SystemStat struct {
	Count int64         // 执行次数
	Total time.Duration // 累计耗时
	Max   time.Duration // 单次最大耗时
}

// Scheduler 天级调度器
// 功能：在每个天边界按固定顺序驱动各模拟系统
// 说明：调度器自身不持有任何经济状态；相同天数与相同上游状态
// 必然产生相同的系统调用序列
type Scheduler struct {
	ctx entity.ITaskContext

	systems []ISystem
	stats   map[string]*SystemStat
}

// NewScheduler 创建调度器
// 参数：ctx-任务上下文，systems-按执行顺序排列的系统列表
func NewScheduler(ctx entity.ITaskContext, systems ...ISystem) *Scheduler {
	stats := make(map[string]*SystemStat, len(systems))
	for _, s := range systems {
		stats[s.Name()] = &SystemStat{}
	}
	return &Scheduler{
		ctx:     ctx,
		systems: systems,
		stats:   stats,
	}
}

// Step 推进一天
// 算法说明：
// 1. 并行复位所有实体的当日状态
// 2. 按注册顺序遍历系统，执行间隔整除当前天数的系统
// 3. 记录各系统耗时（仅统计用途，不影响模拟结果）
func (s *Scheduler) Step() {
	day := s.ctx.Clock().Day
	s.ctx.CountyManager().Prepare()
	s.ctx.ProvinceManager().Prepare()
	s.ctx.RealmManager().Prepare()
	for _, sys := range s.systems {
		if day%sys.Interval() != 0 {
			continue
		}
		start := time.Now()
		sys.Update()
		stat := s.stats[sys.Name()]
		stat.Count++
		elapsed := time.Since(start)
		stat.Total += elapsed
		if elapsed > stat.Max {
			stat.Max = elapsed
		}
	}
	log.Debugf("day %d complete", day)
}

// Stats 导出各系统的累计耗时统计
func (s *Scheduler) Stats() map[string]SystemStat {
	out := make(map[string]SystemStat, len(s.stats))
	for name, stat := range s.stats {
		out[name] = *stat
	}
	return out
}
