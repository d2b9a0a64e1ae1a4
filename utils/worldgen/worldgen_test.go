package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feudalsim/feudalsim-oss/utils/config"
)

func TestGenerateDeterministic(t *testing.T) {
	demo := &config.Demo{Counties: 16, Provinces: 4, Realms: 2, Seed: 42}
	a := Generate(demo)
	b := Generate(demo)
	require.Equal(t, a, b)

	c := Generate(&config.Demo{Counties: 16, Provinces: 4, Realms: 2, Seed: 43})
	assert.NotEqual(t, a.Counties[0].Productivity, c.Counties[0].Productivity)
}

func TestGenerateStructure(t *testing.T) {
	w := Generate(&config.Demo{Counties: 10, Provinces: 3, Realms: 2, Seed: 1})
	require.Len(t, w.Counties, 10)
	require.Len(t, w.Provinces, 3)
	require.Len(t, w.Realms, 2)

	// 邻接对称
	adj := map[int32]map[int32]bool{}
	for _, c := range w.Counties {
		adj[c.ID] = map[int32]bool{}
		for _, n := range c.Adjacent {
			adj[c.ID][n] = true
		}
	}
	for _, c := range w.Counties {
		for _, n := range c.Adjacent {
			assert.True(t, adj[n][c.ID], "adjacency %d->%d not symmetric", c.ID, n)
		}
	}

	// 行政树一致
	for _, c := range w.Counties {
		p := w.Provinces[c.ProvinceID]
		assert.Equal(t, p.RealmID, c.RealmID, "county %d", c.ID)
	}
	for _, p := range w.Provinces {
		capital := w.Counties[p.CapitalID]
		assert.Equal(t, p.ID, capital.ProvinceID)
	}

	// 人口与初始状态在合理区间
	for _, c := range w.Counties {
		assert.GreaterOrEqual(t, c.Population, 200.0)
		assert.Less(t, c.Population, 2000.0)
		assert.Equal(t, c.Population*2, c.Treasury)
		assert.NotEmpty(t, c.Stock)
	}
}

func TestGenerateUnevenPartition(t *testing.T) {
	// 县数不被省数整除时每个省/王国仍非空，首府指向本辖区内的县
	w := Generate(&config.Demo{Counties: 9, Provinces: 4, Realms: 3, Seed: 5})
	require.Len(t, w.Counties, 9)
	require.Len(t, w.Provinces, 4)
	require.Len(t, w.Realms, 3)

	countiesPer := map[int32]int{}
	for _, c := range w.Counties {
		countiesPer[c.ProvinceID]++
	}
	provincesPer := map[int32]int{}
	for _, p := range w.Provinces {
		provincesPer[p.RealmID]++
		assert.Positive(t, countiesPer[p.ID], "province %d has no county", p.ID)
		capital := w.Counties[p.CapitalID]
		assert.Equal(t, p.ID, capital.ProvinceID, "province %d capital", p.ID)
	}
	for _, r := range w.Realms {
		assert.Positive(t, provincesPer[r.ID], "realm %d has no province", r.ID)
		capital := w.Counties[r.CapitalCountyID]
		assert.Equal(t, r.ID, capital.RealmID, "realm %d capital", r.ID)
	}
}
