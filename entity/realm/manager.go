package realm

import (
	"fmt"
	"sort"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"

	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/utils/input"
)

// RealmManager Realm管理器
// 功能：管理所有Realm实体，提供创建、查找、准备等功能
type RealmManager struct {
	ctx entity.ITaskContext

	data    map[int32]*Realm
	realms  []*Realm // 按ID升序
	ordered []entity.IRealm
}

// NewManager 创建Realm管理器实例
// 参数：ctx-任务上下文
// 返回：新创建的Realm管理器实例
func NewManager(ctx entity.ITaskContext) *RealmManager {
	return &RealmManager{
		ctx:    ctx,
		data:   make(map[int32]*Realm),
		realms: make([]*Realm, 0),
	}
}

// Init 初始化所有Realm
// 参数：pbs-Realm的输入数据列表
func (m *RealmManager) Init(pbs []*input.Realm) {
	m.realms = parallel.GoMap(pbs, func(pb *input.Realm) *Realm {
		return newRealm(m.ctx, pb)
	})
	sort.Slice(m.realms, func(i, j int) bool { return m.realms[i].id < m.realms[j].id })
	m.data = lo.SliceToMap(m.realms, func(r *Realm) (int32, *Realm) {
		return r.id, r
	})
	m.ordered = lo.Map(m.realms, func(r *Realm, _ int) entity.IRealm { return r })
}

// InitAfterProvince 登记各王国下辖省
// 功能：在所有Province初始化完成后，把省挂到所属王国下
// 参数：provinceManager-Province管理器
func (m *RealmManager) InitAfterProvince(provinceManager entity.IProvinceManager) {
	for _, p := range provinceManager.Provinces() {
		m.Get(p.RealmID()).(*Realm).attachProvince(p.ID())
	}
}

// Get 根据ID获取Realm实例
// 参数：id-Realm的唯一标识符
// 返回：对应的Realm实例，如果不存在则panic
func (m *RealmManager) Get(id int32) entity.IRealm {
	if r, ok := m.data[id]; !ok {
		log.Panicf("no id %d in realm data", id)
		return nil
	} else {
		return r
	}
}

// GetOrError 根据ID获取Realm实例（带错误处理）
// 参数：id-Realm的唯一标识符
// 返回：Realm实例和错误信息，如果不存在则返回nil和错误
func (m *RealmManager) GetOrError(id int32) (entity.IRealm, error) {
	if r, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in realm data", id)
	} else {
		return r, nil
	}
}

// Realms 按ID升序返回全部王国
func (m *RealmManager) Realms() []entity.IRealm { return m.ordered }

// Prepare 准备阶段
// 功能：并行执行所有Realm的每日状态复位
func (m *RealmManager) Prepare() {
	parallel.GoFor(m.realms, func(r *Realm) { r.BeginTick() })
}
