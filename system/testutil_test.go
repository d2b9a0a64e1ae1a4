package system

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feudalsim/feudalsim-oss/clock"
	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/entity/county"
	"github.com/feudalsim/feudalsim-oss/entity/province"
	"github.com/feudalsim/feudalsim-oss/entity/realm"
	"github.com/feudalsim/feudalsim-oss/registry"
	"github.com/feudalsim/feudalsim-oss/utils/config"
	"github.com/feudalsim/feudalsim-oss/utils/input"
)

// testCtx 测试用任务上下文，实现entity.ITaskContext
type testCtx struct {
	clk *clock.Clock
	reg *registry.Registry

	countyManager   entity.ICountyManager
	provinceManager entity.IProvinceManager
	realmManager    entity.IRealmManager

	prices *entity.PriceTable
	market entity.ICounty
	rc     *config.RuntimeConfig
}

func (c *testCtx) Clock() *clock.Clock                  { return c.clk }
func (c *testCtx) Registry() *registry.Registry         { return c.reg }
func (c *testCtx) CountyManager() entity.ICountyManager { return c.countyManager }
func (c *testCtx) ProvinceManager() entity.IProvinceManager {
	return c.provinceManager
}
func (c *testCtx) RealmManager() entity.IRealmManager { return c.realmManager }
func (c *testCtx) Prices() *entity.PriceTable         { return c.prices }
func (c *testCtx) MarketCounty() entity.ICounty       { return c.market }
func (c *testCtx) RuntimeConfig() *config.RuntimeConfig {
	return c.rc
}

// newTestContext 以给定世界构建完整的测试上下文
func newTestContext(t *testing.T, w *input.World) *testCtx {
	reg, err := registry.New()
	require.NoError(t, err)
	ctx := &testCtx{
		reg:    reg,
		clk:    clock.New(config.ControlStep{Start: 0, Total: 10000}),
		prices: entity.NewPriceTable(reg),
		rc:     config.NewRuntimeConfig(config.Config{}),
	}
	ctx.countyManager = county.NewManager(ctx)
	ctx.provinceManager = province.NewManager(ctx)
	ctx.realmManager = realm.NewManager(ctx)
	ctx.countyManager.Init(w.Counties)
	ctx.provinceManager.Init(w.Provinces)
	ctx.realmManager.Init(w.Realms)
	ctx.provinceManager.InitAfterCounty(ctx.countyManager)
	ctx.realmManager.InitAfterProvince(ctx.provinceManager)
	ctx.market = ctx.countyManager.Counties()[0]
	ctx.prepareDay()
	return ctx
}

// prepareDay 模拟调度器在天边界执行的实体复位
func (ctx *testCtx) prepareDay() {
	ctx.countyManager.Prepare()
	ctx.provinceManager.Prepare()
	ctx.realmManager.Prepare()
}

// singleRealmWorld 构建单王国单省的测试世界，县按参数给定
func singleRealmWorld(counties ...*input.County) *input.World {
	w := &input.World{
		Name: "test",
		Provinces: []*input.Province{
			{ID: 0, Name: "p0", RealmID: 0, CapitalID: counties[0].ID},
		},
		Realms: []*input.Realm{
			{ID: 0, Name: "r0", CapitalCountyID: counties[0].ID},
		},
	}
	w.Counties = append(w.Counties, counties...)
	return w
}

// testCounty 构建一个测试县
func testCounty(id int32, pop float64, stock map[string]float64) *input.County {
	if stock == nil {
		stock = map[string]float64{}
	}
	return &input.County{
		ID:         id,
		Name:       fmt.Sprintf("c%d", id),
		ProvinceID: 0,
		RealmID:    0,
		Population: pop,
		Stock:      stock,
	}
}
