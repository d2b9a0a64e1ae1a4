package province

import (
	"fmt"
	"sort"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"

	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/utils/input"
)

// ProvinceManager Province管理器
// 功能：管理所有Province实体，提供创建、查找、准备等功能
type ProvinceManager struct {
	ctx entity.ITaskContext

	data      map[int32]*Province
	provinces []*Province // 按ID升序
	ordered   []entity.IProvince
}

// NewManager 创建Province管理器实例
// 参数：ctx-任务上下文
// 返回：新创建的Province管理器实例
func NewManager(ctx entity.ITaskContext) *ProvinceManager {
	return &ProvinceManager{
		ctx:       ctx,
		data:      make(map[int32]*Province),
		provinces: make([]*Province, 0),
	}
}

// Init 初始化所有Province
// 参数：pbs-Province的输入数据列表
func (m *ProvinceManager) Init(pbs []*input.Province) {
	m.provinces = parallel.GoMap(pbs, func(pb *input.Province) *Province {
		return newProvince(m.ctx, pb)
	})
	sort.Slice(m.provinces, func(i, j int) bool { return m.provinces[i].id < m.provinces[j].id })
	m.data = lo.SliceToMap(m.provinces, func(p *Province) (int32, *Province) {
		return p.id, p
	})
	m.ordered = lo.Map(m.provinces, func(p *Province, _ int) entity.IProvince { return p })
}

// InitAfterCounty 登记各省下辖县
// 功能：在所有County初始化完成后，把县挂到所属省下
// 参数：countyManager-County管理器
func (m *ProvinceManager) InitAfterCounty(countyManager entity.ICountyManager) {
	for _, c := range countyManager.Counties() {
		m.Get(c.ProvinceID()).(*Province).attachCounty(c.ID())
	}
}

// Get 根据ID获取Province实例
// 参数：id-Province的唯一标识符
// 返回：对应的Province实例，如果不存在则panic
func (m *ProvinceManager) Get(id int32) entity.IProvince {
	if p, ok := m.data[id]; !ok {
		log.Panicf("no id %d in province data", id)
		return nil
	} else {
		return p
	}
}

// GetOrError 根据ID获取Province实例（带错误处理）
// 参数：id-Province的唯一标识符
// 返回：Province实例和错误信息，如果不存在则返回nil和错误
func (m *ProvinceManager) GetOrError(id int32) (entity.IProvince, error) {
	if p, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in province data", id)
	} else {
		return p, nil
	}
}

// Provinces 按ID升序返回全部省
func (m *ProvinceManager) Provinces() []entity.IProvince { return m.ordered }

// Prepare 准备阶段
// 功能：并行执行所有Province的每日状态复位
func (m *ProvinceManager) Prepare() {
	parallel.GoFor(m.provinces, func(p *Province) { p.BeginTick() })
}
