package entity

import (
	"github.com/feudalsim/feudalsim-oss/clock"
	"github.com/feudalsim/feudalsim-oss/registry"
	"github.com/feudalsim/feudalsim-oss/utils/config"
)

type ITaskContext interface {
	Clock() *clock.Clock
	Registry() *registry.Registry
	CountyManager() ICountyManager
	ProvinceManager() IProvinceManager
	RealmManager() IRealmManager
	Prices() *PriceTable
	// MarketCounty 全局市场县（贸易手续费的唯一汇入方）
	MarketCounty() ICounty
	RuntimeConfig() *config.RuntimeConfig
}
