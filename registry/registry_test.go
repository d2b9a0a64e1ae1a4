package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Len(t, r.DurablePass(), 4)
	assert.Len(t, r.FlowPass(), NumFacilities-4)
}

func TestValidateDurableConsumptionExclusive(t *testing.T) {
	// 耐用品不允许同时携带流量消耗率
	r, err := New()
	require.NoError(t, err)
	r.goods[Clothes].Consumption = 0.1
	assert.ErrorContains(t, r.validate(), "exclusive")
}

func TestChainDerivation(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	// 原料：被耐用品链消费且无设施产出
	for _, g := range []GoodID{IronOre, Timber, Clay, Wool} {
		assert.True(t, r.Good(g).IsChainRaw(), r.Good(g).Name)
	}
	// 中间品：被耐用品链消费且由设施产出
	for _, g := range []GoodID{Charcoal, Iron} {
		assert.True(t, r.Good(g).IsChainMid(), r.Good(g).Name)
	}
	// 面粉由磨坊产出、被面包坊消费，但不属于耐用品链
	assert.False(t, r.Good(Flour).IsChainMid())
	assert.False(t, r.Good(Wheat).IsChainRaw())
}

func TestStapleShares(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	staples := r.Staples()
	assert.ElementsMatch(t, []GoodID{Wheat, Bread, SaltedFish, Stockfish, Cheese, Sausage}, staples)
	sum := 0.0
	for _, g := range staples {
		sum += r.Good(g).IdealShare
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestBuyPriorityCoversTradeables(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	seen := map[GoodID]bool{}
	for _, g := range r.BuyPriority() {
		assert.True(t, r.Good(g).Tradeable)
		assert.False(t, seen[g])
		seen[g] = true
	}
	for i := 0; i < NumGoods; i++ {
		if r.Good(GoodID(i)).Tradeable {
			assert.True(t, seen[GoodID(i)], r.Good(GoodID(i)).Name)
		}
	}
	// 王室专有矿石不参与贸易
	assert.False(t, seen[GoldOre])
	assert.False(t, seen[SilverOre])
}

func TestFlowPassTopology(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	// 消费方排在生产方之前，保证当日中间品不被即产即耗
	pos := map[FacilityType]int{}
	for i, f := range r.FlowPass() {
		pos[f] = i
	}
	for _, f := range r.FlowPass() {
		for _, in := range r.Recipe(f).Inputs {
			for _, p := range r.FlowPass() {
				if r.Recipe(p).Output == in.Good {
					assert.Less(t, pos[f], pos[p],
						"%s must run before %s", r.Recipe(f).Name, r.Recipe(p).Name)
				}
			}
		}
	}
}

func TestGoodByName(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	g, ok := r.GoodByName("saltedFish")
	assert.True(t, ok)
	assert.Equal(t, SaltedFish, g)
	_, ok = r.GoodByName("unobtainium")
	assert.False(t, ok)
}
