package types

const (
	EventGameCreated          = "gamefactory.game_created"
	EventPlayerAdded          = "gamefactory.player_added"
	EventStatsUpdated         = "gamefactory.stats_updated"
	EventRewardCredited       = "gamefactory.reward_credited"
	EventRewardsDistributed   = "gamefactory.rewards_distributed"
	EventRankingScoresReset   = "gamefactory.ranking_scores_reset"
	EventLoginsUpdated        = "gamefactory.logins_updated"
	EventClaimableDrawn       = "gamefactory.claimable_drawn"
	EventAdminSet             = "gamefactory.admin_set"
	EventTokenSet             = "gamefactory.token_set"
	EventPaymentManagerSet    = "gamefactory.payment_manager_set"
	EventOwnershipTransferred = "gamefactory.ownership_transferred"
)

const (
	AttrCreator        = "creator"
	AttrGameAddress    = "game_address"
	AttrGameID         = "game_id"
	AttrName           = "name"
	AttrPlayer         = "player"
	AttrPlayers        = "players"
	AttrIndex          = "index"
	AttrRank           = "rank"
	AttrAmount         = "amount"
	AttrTotalAmount    = "total_amount"
	AttrCredited       = "credited"
	AttrRemainder      = "remainder"
	AttrTierSize       = "tier_size"
	AttrAdmin          = "admin"
	AttrDenom          = "denom"
	AttrPaymentManager = "payment_manager"
	AttrPreviousOwner  = "previous_owner"
	AttrNewOwner       = "new_owner"
	AttrCount          = "count"
)
