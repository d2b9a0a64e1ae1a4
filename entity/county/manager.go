package county

import (
	"fmt"
	"sort"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"

	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/utils/input"
)

// CountyManager County管理器
// 功能：管理所有County实体，提供创建、查找、准备等功能
type CountyManager struct {
	ctx entity.ITaskContext

	data     map[int32]*County
	counties []*County        // 按ID升序
	ordered  []entity.ICounty // counties的接口视图，供系统确定性遍历
}

// NewManager 创建County管理器实例
// 参数：ctx-任务上下文
// 返回：新创建的County管理器实例
func NewManager(ctx entity.ITaskContext) *CountyManager {
	return &CountyManager{
		ctx:      ctx,
		data:     make(map[int32]*County),
		counties: make([]*County, 0),
	}
}

// Init 初始化所有County
// 功能：根据输入数据初始化所有County对象，建立ID映射关系
// 参数：pbs-County的输入数据列表
// 说明：使用并行处理提高初始化效率；遍历序固定为ID升序
func (m *CountyManager) Init(pbs []*input.County) {
	m.counties = parallel.GoMap(pbs, func(pb *input.County) *County {
		return newCounty(m.ctx, pb)
	})
	sort.Slice(m.counties, func(i, j int) bool { return m.counties[i].id < m.counties[j].id })
	m.data = lo.SliceToMap(m.counties, func(c *County) (int32, *County) {
		return c.id, c
	})
	m.ordered = lo.Map(m.counties, func(c *County, _ int) entity.ICounty { return c })
}

// Get 根据ID获取County实例
// 参数：id-County的唯一标识符
// 返回：对应的County实例，如果不存在则panic
func (m *CountyManager) Get(id int32) entity.ICounty {
	if c, ok := m.data[id]; !ok {
		log.Panicf("no id %d in county data", id)
		return nil
	} else {
		return c
	}
}

// GetOrError 根据ID获取County实例（带错误处理）
// 参数：id-County的唯一标识符
// 返回：County实例和错误信息，如果不存在则返回nil和错误
func (m *CountyManager) GetOrError(id int32) (entity.ICounty, error) {
	if c, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in county data", id)
	} else {
		return c, nil
	}
}

// Counties 按ID升序返回全部县
func (m *CountyManager) Counties() []entity.ICounty { return m.ordered }

// Prepare 准备阶段
// 功能：并行执行所有County的每日状态复位
func (m *CountyManager) Prepare() {
	parallel.GoFor(m.counties, func(c *County) { c.BeginTick() })
}
