package task

import (
	"sync/atomic"

	"github.com/feudalsim/feudalsim-oss/clock"
	"github.com/feudalsim/feudalsim-oss/entity"
	"github.com/feudalsim/feudalsim-oss/entity/county"
	"github.com/feudalsim/feudalsim-oss/entity/province"
	"github.com/feudalsim/feudalsim-oss/entity/realm"
	"github.com/feudalsim/feudalsim-oss/output"
	"github.com/feudalsim/feudalsim-oss/registry"
	"github.com/feudalsim/feudalsim-oss/system"
	"github.com/feudalsim/feudalsim-oss/utils/config"
	"github.com/feudalsim/feudalsim-oss/utils/input"
	"github.com/feudalsim/feudalsim-oss/utils/worldgen"
)

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态
// 说明：管理仿真系统的所有组件，包括时钟、注册表、实体管理器、
// 价格表、调度器与输出
type Context struct {
	// 任务名
	job string
	// 关闭指令
	closed atomic.Bool

	// 时钟
	clock *clock.Clock
	// 静态注册表
	registry *registry.Registry
	// 缓存文件夹
	cacheDir string

	// County管理器
	countyManager entity.ICountyManager
	// Province管理器
	provinceManager entity.IProvinceManager
	// Realm管理器
	realmManager entity.IRealmManager

	// 全局价格表
	prices *entity.PriceTable
	// 市场县（贸易手续费的唯一汇入方）
	marketCounty entity.ICounty

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig

	// 调度器与各系统
	scheduler  *system.Scheduler
	economy    *system.EconomySystem
	fiscal     *system.FiscalSystem
	interRealm *system.InterRealmTradeSystem

	// 快照输出器，未配置输出文件时为nil
	writer *output.Writer

	// 用于初始化的输入
	initRes *input.World
}

// NewContext 创建新的仿真任务上下文
// 参数：job-任务名称，cacheDir-缓存目录，c-配置对象
// 返回：初始化完成的Context实例
// 算法说明：
// 1. 装载并校验静态注册表（失败即拒绝启动）
// 2. 初始化时钟与价格表
// 3. 加载世界输入：配置了demo时由worldgen合成，否则走input
// 4. 新建各实体管理器
func NewContext(job string, cacheDir string, c config.Config) *Context {
	ctx := &Context{
		job:      job,
		cacheDir: cacheDir,
	}
	reg, err := registry.New()
	if err != nil {
		log.Panicf("failed to load registry: %v", err)
	}
	ctx.registry = reg
	ctx.clock = clock.New(c.Control.Step)
	ctx.prices = entity.NewPriceTable(reg)

	// 下载所有模拟器启动所需的数据
	if c.Input.Demo != nil {
		ctx.initRes = worldgen.Generate(c.Input.Demo)
	} else {
		ctx.initRes = input.Init(c, ctx.cacheDir)
	}

	ctx.runtimeConfig = config.NewRuntimeConfig(c)

	// 新建各类模拟对象
	ctx.countyManager = county.NewManager(ctx)
	ctx.provinceManager = province.NewManager(ctx)
	ctx.realmManager = realm.NewManager(ctx)

	return ctx
}

func (ctx *Context) GetInput() *input.World {
	return ctx.initRes
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) Registry() *registry.Registry {
	return ctx.registry
}

func (ctx *Context) CountyManager() entity.ICountyManager {
	return ctx.countyManager
}

func (ctx *Context) ProvinceManager() entity.IProvinceManager {
	return ctx.provinceManager
}

func (ctx *Context) RealmManager() entity.IRealmManager {
	return ctx.realmManager
}

func (ctx *Context) Prices() *entity.PriceTable {
	return ctx.prices
}

func (ctx *Context) MarketCounty() entity.ICounty {
	return ctx.marketCounty
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// Init 初始化模拟
// 算法说明：
// 1. 初始化时钟与各实体管理器，建立行政树
// 2. 选定市场县：第一个王国的王都县，不存在时取人口最高的县
// 3. 构建五个系统并按固定顺序注册到调度器
// 4. 按配置打开快照输出
func (ctx *Context) Init() {
	ctx.clock.Init()

	initRes := ctx.initRes
	log.Infof("County: %v", len(initRes.Counties))
	log.Infof("Province: %v", len(initRes.Provinces))
	log.Infof("Realm: %v", len(initRes.Realms))

	ctx.countyManager.Init(initRes.Counties)
	ctx.provinceManager.Init(initRes.Provinces)
	ctx.realmManager.Init(initRes.Realms)
	// 在县、省完成初始化的基础上建立行政树
	ctx.provinceManager.InitAfterCounty(ctx.countyManager)
	ctx.realmManager.InitAfterProvince(ctx.provinceManager)

	ctx.marketCounty = ctx.pickMarketCounty()
	log.Infof("market county: %d(%s)", ctx.marketCounty.ID(), ctx.marketCounty.Name())

	ctx.economy = system.NewEconomySystem(ctx)
	ctx.fiscal = system.NewFiscalSystem(ctx)
	ctx.interRealm = system.NewInterRealmTradeSystem(ctx, ctx.economy)
	ctx.scheduler = system.NewScheduler(
		ctx,
		ctx.economy,
		ctx.fiscal,
		ctx.interRealm,
		system.NewPopulationSystem(ctx),
		system.NewSpoilageSystem(ctx),
	)

	if file := ctx.runtimeConfig.All.Output.File; file != "" {
		w, err := output.NewWriter(file)
		if err != nil {
			log.Panicf("failed to open output file %s: %v", file, err)
		}
		ctx.writer = w
	}
}

// pickMarketCounty 选定市场县
// 算法说明：优先取第一个王国（按ID升序）的王都县；
// 该县不存在时回退到全体县中人口最高者
func (ctx *Context) pickMarketCounty() entity.ICounty {
	realms := ctx.realmManager.Realms()
	if len(realms) > 0 {
		if c, err := ctx.countyManager.GetOrError(realms[0].CapitalCountyID()); err == nil {
			return c
		}
		log.Warnf("realm %d capital county %d not found, fallback to most populous",
			realms[0].ID(), realms[0].CapitalCountyID())
	}
	var best entity.ICounty
	for _, c := range ctx.countyManager.Counties() {
		if best == nil || c.Population() > best.Population() {
			best = c
		}
	}
	if best == nil {
		log.Panic("no county to designate as market")
	}
	return best
}

// Close 结束任务并释放输出资源
func (ctx *Context) Close() {
	if ctx.closed.Load() {
		return
	}
	if ctx.writer != nil {
		if err := ctx.writer.Close(); err != nil {
			log.Errorf("failed to close output: %v", err)
		}
	}
	ctx.closed.Store(true)
}
