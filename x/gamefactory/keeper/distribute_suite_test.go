package keeper_test

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"rewardchain/testutil"
	"rewardchain/x/gamefactory/keeper"
	gftestutil "rewardchain/x/gamefactory/testutil"
	"rewardchain/x/gamefactory/types"
)

// DistributeSuite drives DistributeRewards against a mocked bank to cover
// token ledger failures.
type DistributeSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockBank *gftestutil.MockBankKeeper
	ctx      sdk.Context
	keeper   keeper.Keeper

	admin   string
	game    types.Game
	players []string
}

func TestDistributeSuite(t *testing.T) {
	suite.Run(t, new(DistributeSuite))
}

func (s *DistributeSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBank = gftestutil.NewMockBankKeeper(s.mockCtrl)

	key := storetypes.NewKVStoreKey(types.StoreKey)
	s.ctx = testutil.NewContext(s.T(), key)
	s.keeper = keeper.NewKeeper(runtime.NewKVStoreService(key), testutil.AddressCodec(), testutil.AccAddress("owner"), s.mockBank)

	owner := testutil.Addr("owner")
	s.admin = testutil.Addr("admin")
	s.Require().NoError(s.keeper.SetAdmin(s.ctx, owner, s.admin))
	s.Require().NoError(s.keeper.SetToken(s.ctx, owner, testDenom))
	s.Require().NoError(s.keeper.SetPaymentManager(s.ctx, owner, testutil.Addr("payment")))

	g, err := s.keeper.CreateNewGame(s.ctx, s.admin, "arena")
	s.Require().NoError(err)
	s.game = g

	s.players = nil
	for i, name := range []string{"a", "b", "c"} {
		addr := testutil.Addr(name)
		_, err := s.keeper.AddNewPlayer(s.ctx, g.ID, s.admin, types.PlayerStats{Address: addr, RankingScore: uint64(100 - i)})
		s.Require().NoError(err)
		s.players = append(s.players, addr)
	}
}

func (s *DistributeSuite) TestSendFailureAbortsDistribution() {
	amount := sdk.NewCoins(sdk.NewInt64Coin(testDenom, 100))
	s.mockBank.EXPECT().SpendableCoins(gomock.Any(), testutil.AccAddress("admin")).Return(amount)
	s.mockBank.EXPECT().
		SendCoins(gomock.Any(), testutil.AccAddress("admin"), gomock.Any(), amount).
		Return(errors.New("ledger unavailable"))

	_, err := s.keeper.DistributeRewards(s.ctx, s.game.ID, s.admin, math.NewInt(100), 3)
	s.Require().ErrorContains(err, "ledger unavailable")

	for _, p := range s.players {
		stats, err := s.keeper.GetPlayerStats(s.ctx, s.game.ID, p)
		s.Require().NoError(err)
		s.Require().True(stats.Claimable.IsZero())
		s.Require().True(stats.Won.IsZero())
	}
}

func (s *DistributeSuite) TestFundsMoveIntoReserve() {
	amount := sdk.NewCoins(sdk.NewInt64Coin(testDenom, 100))
	reserve, err := testutil.AddressCodec().StringToBytes(s.game.Address)
	s.Require().NoError(err)

	s.mockBank.EXPECT().SpendableCoins(gomock.Any(), testutil.AccAddress("admin")).Return(amount)
	s.mockBank.EXPECT().
		SendCoins(gomock.Any(), testutil.AccAddress("admin"), sdk.AccAddress(reserve), amount).
		Return(nil)

	dist, err := s.keeper.DistributeRewards(s.ctx, s.game.ID, s.admin, math.NewInt(100), 3)
	s.Require().NoError(err)
	s.Require().Equal(s.players[0], dist.Payouts[0].Player)
	s.Require().Equal(int64(50), dist.Payouts[0].Amount.Int64())
}

func (s *DistributeSuite) TestUnsupportedTierNeverTouchesBank() {
	// no bank expectations: any call fails the test
	_, err := s.keeper.DistributeRewards(s.ctx, s.game.ID, s.admin, math.NewInt(100), 2)
	s.Require().ErrorIs(err, types.ErrInvalidTierSize)
}
