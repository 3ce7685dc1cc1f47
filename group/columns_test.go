package group

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/itemfeedback/core"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "a|b", Key(core.Itemset{"b": "w", "a": "z"}))
	assert.Equal(t, "a", Key(core.Itemset{"a": "x"}))
	assert.Equal(t, "", Key(core.Itemset{}))
}

func TestByColumns_Tiers(t *testing.T) {
	itemsets := []core.Itemset{
		{"a": "x"},
		{"a": "y"},
		{"a": "z", "b": "w"},
	}
	very, mildly, un := ByColumns(itemsets, nil, "")

	assert.Equal(t, []string{"a|b"}, very.Keys())
	assert.Equal(t, []string{"a"}, mildly.Keys())
	assert.Empty(t, un)

	g, ok := mildly.Lookup("a")
	require.True(t, ok)
	require.Len(t, g.Members, 2)
	assert.Equal(t, core.Itemset{"a": "x"}, g.Members[0].Itemset)
	assert.Equal(t, core.Itemset{"a": "y"}, g.Members[1].Itemset)
	assert.Equal(t, core.RowIDs{}, g.Members[0].RowIDs)
	assert.Equal(t, TierMildlyInteresting, g.Tier())
}

func TestByColumns_FourthItemsetReclassifies(t *testing.T) {
	itemsets := []core.Itemset{
		{"a": "x"},
		{"a": "y"},
		{"a": "z", "b": "w"},
		{"a": "q"},
	}
	very, mildly, un := ByColumns(itemsets, nil, "")

	assert.Equal(t, []string{"a|b"}, very.Keys())
	assert.Empty(t, mildly)
	require.Equal(t, []string{"a"}, un.Keys())
	g, _ := un.Lookup("a")
	assert.Len(t, g.Members, 3)
	_, ok := mildly.Lookup("a")
	assert.False(t, ok)
}

func TestByColumns_KeyOrderIndependent(t *testing.T) {
	itemsets := []core.Itemset{
		{"b": "1", "a": "2"},
		{"a": "3", "b": "4"},
	}
	_, mildly, _ := ByColumns(itemsets, nil, "")
	assert.Equal(t, []string{"a|b"}, mildly.Keys())
}

func TestByColumns_RowIDs(t *testing.T) {
	itemsets := []core.Itemset{
		{"a": "x"},
		{"a": "y"},
		{"b": "z"},
		{"c": "extra"},
	}
	records := core.Collection{
		{"a": "x", "ids": []any{1, 2}},
		{"a": "y"},
		{"b": "z", "ids": []any{"r-9"}},
	}

	very, mildly, _ := ByColumns(itemsets, records, "ids")

	g, _ := mildly.Lookup("a")
	assert.Equal(t, core.RowIDs{int64(1), int64(2)}, g.Members[0].RowIDs)
	// 列不存在
	assert.Equal(t, core.RowIDs{}, g.Members[1].RowIDs)
	assert.Equal(t, "ids", g.Members[0].Field)

	b, _ := very.Lookup("b")
	assert.Equal(t, core.RowIDs{"r-9"}, b.Members[0].RowIDs)
	// 位置越界
	c, _ := very.Lookup("c")
	assert.Equal(t, core.RowIDs{}, c.Members[0].RowIDs)
}

func TestByColumns_EmptyColumnNameIgnoresRecords(t *testing.T) {
	itemsets := []core.Itemset{{"a": "x"}}
	records := core.Collection{{"a": "x", "": []any{1}}}
	very, _, _ := ByColumns(itemsets, records, "")
	assert.Equal(t, core.RowIDs{}, very[0].Members[0].RowIDs)
	assert.Equal(t, "", very[0].Members[0].Field)
}

func TestByColumns_PartitionAndIdempotence(t *testing.T) {
	itemsets := []core.Itemset{
		{"a": "1"}, {"b": "1"}, {"a": "2"}, {"c": "1", "d": "1"},
		{"b": "2"}, {"a": "3"}, {"e": "1"}, {"d": "2", "c": "2"},
	}
	very, mildly, un := ByColumns(itemsets, nil, "")

	assert.Equal(t, len(itemsets), very.Size()+mildly.Size()+un.Size())
	assert.Equal(t, []string{"e"}, very.Keys())
	assert.Equal(t, []string{"b", "c|d"}, mildly.Keys())
	assert.Equal(t, []string{"a"}, un.Keys())

	very2, mildly2, un2 := ByColumns(itemsets, nil, "")
	assert.Equal(t, very, very2)
	assert.Equal(t, mildly, mildly2)
	assert.Equal(t, un, un2)
}

func TestByColumns_Empty(t *testing.T) {
	very, mildly, un := ByColumns(nil, nil, "ids")
	assert.Empty(t, very)
	assert.Empty(t, mildly)
	assert.Empty(t, un)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, TierVeryInteresting, Classify(1))
	assert.Equal(t, TierMildlyInteresting, Classify(2))
	assert.Equal(t, TierUninteresting, Classify(3))
	assert.Equal(t, TierUninteresting, Classify(10))
}

func TestTier_Parse(t *testing.T) {
	for _, tier := range []Tier{TierVeryInteresting, TierMildlyInteresting, TierUninteresting} {
		got, ok := ParseTier(tier.String())
		assert.True(t, ok)
		assert.Equal(t, tier, got)
	}
	_, ok := ParseTier("boring")
	assert.False(t, ok)
}

func TestGroups_MarshalJSON(t *testing.T) {
	itemsets := []core.Itemset{{"b": "1"}, {"a": "x"}}
	records := core.Collection{{"b": "1", "ids": []any{3}}, {"a": "x"}}
	very, _, _ := ByColumns(itemsets, records, "ids")

	data, err := json.Marshal(very)
	require.NoError(t, err)
	assert.Equal(t, `{"b":[{"ids":[3],"itemset":{"b":"1"}}],"a":[{"ids":[],"itemset":{"a":"x"}}]}`, string(data))
}

func TestClassified(t *testing.T) {
	records := core.Collection{
		{"a": "x", "ids": []any{1}},
		{"a": "y", "ids": []any{2}},
		{"a": "z", "b": "w"},
	}
	tiers := Classified(records, "ids")

	assert.Equal(t, []string{"a|b"}, tiers.Get(TierVeryInteresting).Keys())
	assert.Equal(t, []string{"a"}, tiers.Get(TierMildlyInteresting).Keys())
	assert.Empty(t, tiers.Get(TierUninteresting))
	assert.Nil(t, tiers.Get(Tier(0)))

	g, _ := tiers.MildlyInteresting.Lookup("a")
	assert.Equal(t, core.RowIDs{int64(2)}, g.Members[1].RowIDs)
}
