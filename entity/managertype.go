package entity

import (
	"github.com/feudalsim/feudalsim-oss/utils/input"
)

// Manager依赖倒置

// entity/county/manager.go的依赖倒置
type ICountyManager interface {
	Init(pbs []*input.County) // 初始化

	// 输入County ID，查找County，如果不存在则panic
	Get(id int32) ICounty
	// 输入County ID，查找County，如果不存在则返回error
	GetOrError(id int32) (ICounty, error)

	// 按ID升序返回全部县，供系统做确定性遍历
	Counties() []ICounty

	Prepare() // 准备阶段：每日开始的状态复位
}

// entity/province/manager.go的依赖倒置
type IProvinceManager interface {
	Init(pbs []*input.Province)                   // 初始化
	InitAfterCounty(countyManager ICountyManager) // 登记各省下辖县

	// 输入Province ID，查找Province，如果不存在则panic
	Get(id int32) IProvince
	// 输入Province ID，查找Province，如果不存在则返回error
	GetOrError(id int32) (IProvince, error)

	// 按ID升序返回全部省
	Provinces() []IProvince

	Prepare() // 准备阶段：每日开始的状态复位
}

// entity/realm/manager.go的依赖倒置
type IRealmManager interface {
	Init(pbs []*input.Realm)                            // 初始化
	InitAfterProvince(provinceManager IProvinceManager) // 登记各王国下辖省

	// 输入Realm ID，查找Realm，如果不存在则panic
	Get(id int32) IRealm
	// 输入Realm ID，查找Realm，如果不存在则返回error
	GetOrError(id int32) (IRealm, error)

	// 按ID升序返回全部王国
	Realms() []IRealm

	Prepare() // 准备阶段：每日开始的状态复位
}
