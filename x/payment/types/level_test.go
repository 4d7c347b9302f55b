package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rewardchain/x/payment/types"
)

func TestDefaultLevelTable(t *testing.T) {
	table := types.DefaultLevelTable()
	require.Len(t, table, types.DefaultMaxLevel)
	require.Equal(t, []uint64{100, 300, 600, 1000, 1500}, []uint64(table[:5]))
	require.EqualValues(t, 21000, table[types.DefaultMaxLevel-1])
	require.NoError(t, table.Validate())
}

func TestLevel(t *testing.T) {
	table := types.DefaultLevelTable()
	cases := []struct {
		xp    uint64
		level uint64
	}{
		{xp: 0, level: 0},
		{xp: 23, level: 0},
		{xp: 99, level: 0},
		{xp: 100, level: 1},
		{xp: 299, level: 1},
		{xp: 1258, level: 4},
		{xp: 1500, level: 5},
		{xp: 20999, level: 19},
		{xp: 21000, level: 20},
		{xp: 1 << 62, level: 20},
	}
	for _, tc := range cases {
		require.Equal(t, tc.level, table.Level(tc.xp), "xp %d", tc.xp)
	}

	var prev uint64
	for xp := uint64(0); xp < 25000; xp += 7 {
		l := table.Level(xp)
		require.GreaterOrEqual(t, l, prev)
		prev = l
	}
}

func TestLevelTableValidate(t *testing.T) {
	require.NoError(t, types.LevelTable{}.Validate())
	require.Error(t, types.LevelTable{0, 10}.Validate())
	require.Error(t, types.LevelTable{10, 10}.Validate())
	require.Error(t, types.LevelTable{10, 5}.Validate())
}

func TestThreshold(t *testing.T) {
	table := types.DefaultLevelTable()

	th, ok := table.Threshold(0)
	require.True(t, ok)
	require.Zero(t, th)

	th, ok = table.Threshold(4)
	require.True(t, ok)
	require.EqualValues(t, 1000, th)

	_, ok = table.Threshold(types.DefaultMaxLevel + 1)
	require.False(t, ok)
}
