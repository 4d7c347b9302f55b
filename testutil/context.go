// Package testutil holds the store fixtures shared by the module tests.
package testutil

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// NewContext mounts every key on one in-memory multistore and returns a
// deliver-mode context over it. Keepers sharing the context share its cache
// branches, so a failed CacheContext discards writes across all of them.
func NewContext(t testing.TB, keys ...*storetypes.KVStoreKey) sdk.Context {
	t.Helper()

	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, cms.LoadLatestVersion())

	header := cmtproto.Header{Height: 1, Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	return sdk.NewContext(cms, header, false, log.NewTestLogger(t))
}
