package input

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/feudalsim/feudalsim-oss/utils/config"
)

// 世界文档在MongoDB集合中按class字段区分实体类型
type worldDoc struct {
	Class string   `bson:"class"`
	Name  string   `bson:"name"`
	Data  bson.Raw `bson:"data"`
}

// Init 下载数据
// 功能：根据配置加载世界输入数据
// 参数：config-配置对象，cacheDir-缓存目录
// 返回：加载完成的世界数据指针
// 算法说明：
// 1. 缓存检查：验证缓存目录的有效性
// 2. 文件加载：若配置了文件路径则直接从JSON文件加载
// 3. 缓存加载：尝试从本地缓存读取上次下载的数据
// 4. 数据库加载：从MongoDB按class字段逐文档解码县/省/王国
// 5. 缓存写回：下载成功后将数据序列化到缓存目录
// 6. 数据校验：检查ID唯一性与行政隶属关系的完整性
func Init(config config.Config, cacheDir string) *World {
	useCache := preCheckCache(cacheDir)
	if !useCache {
		cacheDir = ""
	}

	var world *World
	if config.Input.World.File != "" {
		world = mustLoadFile(config.Input.World.File)
	} else {
		world = mustLoad(config, cacheDir)
	}

	if err := validate(world); err != nil {
		log.Panicf("invalid world data: %v", err)
	}
	log.Infof("loaded world %s: %d counties, %d provinces, %d realms",
		world.Name, len(world.Counties), len(world.Provinces), len(world.Realms))
	return world
}

// mustLoadFile 从JSON文件加载世界数据
func mustLoadFile(path string) *World {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Panicf("failed to load world from file: %v", err)
	}
	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		log.Panicf("failed to parse world file %s: %v", path, err)
	}
	return &w
}

// mustLoad 从MongoDB或缓存加载世界数据
// 算法说明：
// 1. 优先尝试缓存文件，命中则直接返回
// 2. 未命中且允许下载时连接MongoDB，遍历集合逐文档解码
// 3. 下载完成后写回缓存（写失败仅告警，不影响加载）
func mustLoad(cfg config.Config, cacheDir string) *World {
	cachePath := ""
	if cacheDir != "" {
		cachePath = filepath.Join(cacheDir, cfg.Input.World.GetCachePath())
		if data, err := os.ReadFile(cachePath); err == nil {
			var w World
			if err := json.Unmarshal(data, &w); err == nil {
				log.Infof("load world from cache %s", cachePath)
				return &w
			}
			log.Warnf("broken cache %s, fallback to download", cachePath)
		}
	}
	if cfg.Input.World.OnlyCache {
		log.Panicf("cache-only mode but no usable cache for %s.%s",
			cfg.Input.World.DB, cfg.Input.World.Col)
	}

	log.Infof("start fetching from %s.%s", cfg.Input.World.DB, cfg.Input.World.Col)
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.Input.URI))
	if err != nil {
		log.Panicf("failed to connect mongodb: %v", err)
	}
	defer client.Disconnect(context.Background())

	coll := client.Database(cfg.Input.World.DB).Collection(cfg.Input.World.Col)
	cur, err := coll.Find(context.Background(), bson.D{})
	if err != nil {
		log.Panicf("failed to query %s.%s: %v", cfg.Input.World.DB, cfg.Input.World.Col, err)
	}
	defer cur.Close(context.Background())

	w := &World{}
	for cur.Next(context.Background()) {
		var doc worldDoc
		if err := cur.Decode(&doc); err != nil {
			log.Panicf("failed to decode world document: %v", err)
		}
		switch doc.Class {
		case "meta":
			w.Name = doc.Name
		case "county":
			var c County
			if err := bson.Unmarshal(doc.Data, &c); err != nil {
				log.Panicf("failed to decode county: %v", err)
			}
			w.Counties = append(w.Counties, &c)
		case "province":
			var p Province
			if err := bson.Unmarshal(doc.Data, &p); err != nil {
				log.Panicf("failed to decode province: %v", err)
			}
			w.Provinces = append(w.Provinces, &p)
		case "realm":
			var r Realm
			if err := bson.Unmarshal(doc.Data, &r); err != nil {
				log.Panicf("failed to decode realm: %v", err)
			}
			w.Realms = append(w.Realms, &r)
		default:
			log.Warnf("unknown world document class %s, skip", doc.Class)
		}
	}
	if err := cur.Err(); err != nil {
		log.Panicf("cursor error while fetching world: %v", err)
	}
	log.Infof("finish fetching from %s.%s", cfg.Input.World.DB, cfg.Input.World.Col)

	if cachePath != "" {
		if data, err := json.Marshal(w); err != nil {
			log.Warnf("failed to serialize world cache: %v", err)
		} else if err := os.WriteFile(cachePath, data, 0o644); err != nil {
			log.Warnf("failed to write world cache %s: %v", cachePath, err)
		}
	}
	return w
}

// validate 校验世界数据的完整性
// 算法说明：
// 1. ID唯一性：县/省/王国各自不得有重复ID
// 2. 隶属关系：县指向的省与王国、省指向的王国必须存在且相互一致
// 3. 邻接关系：相邻县必须存在且不指向自身
func validate(w *World) error {
	if len(w.Counties) == 0 || len(w.Provinces) == 0 || len(w.Realms) == 0 {
		return fmt.Errorf("world must contain at least one county, province and realm")
	}
	realms := make(map[int32]*Realm, len(w.Realms))
	for _, r := range w.Realms {
		if _, ok := realms[r.ID]; ok {
			return fmt.Errorf("realms have duplicated ids %d", r.ID)
		}
		realms[r.ID] = r
	}
	provinces := make(map[int32]*Province, len(w.Provinces))
	for _, p := range w.Provinces {
		if _, ok := provinces[p.ID]; ok {
			return fmt.Errorf("provinces have duplicated ids %d", p.ID)
		}
		if _, ok := realms[p.RealmID]; !ok {
			return fmt.Errorf("province %d refers to unknown realm %d", p.ID, p.RealmID)
		}
		provinces[p.ID] = p
	}
	counties := make(map[int32]*County, len(w.Counties))
	for _, c := range w.Counties {
		if _, ok := counties[c.ID]; ok {
			return fmt.Errorf("counties have duplicated ids %d", c.ID)
		}
		p, ok := provinces[c.ProvinceID]
		if !ok {
			return fmt.Errorf("county %d refers to unknown province %d", c.ID, c.ProvinceID)
		}
		if p.RealmID != c.RealmID {
			return fmt.Errorf("county %d realm %d disagrees with province %d realm %d",
				c.ID, c.RealmID, p.ID, p.RealmID)
		}
		counties[c.ID] = c
	}
	for _, c := range w.Counties {
		for _, adj := range c.Adjacent {
			if adj == c.ID {
				return fmt.Errorf("county %d is adjacent to itself", c.ID)
			}
			if _, ok := counties[adj]; !ok {
				return fmt.Errorf("county %d is adjacent to unknown county %d", c.ID, adj)
			}
		}
	}
	return nil
}
