package types

const (
	EventPaymentAddressSet    = "payment.payment_address_set"
	EventWithdrawnBatch       = "payment.withdrawn_batch"
	EventMinimumAmountSet     = "payment.minimum_amount_set"
	EventMinimumLevelSet      = "payment.minimum_level_set"
	EventOwnershipTransferred = "payment.ownership_transferred"
	EventAllowanceSet         = "payment.allowance_set"
)

const (
	AttrPaymentAddress = "payment_address"
	AttrPlayers        = "players"
	AttrAmounts        = "amounts"
	AttrTotal          = "total"
	AttrDenom          = "denom"
	AttrMinimumAmount  = "minimum_amount"
	AttrMinimumLevel   = "minimum_level"
	AttrPreviousOwner  = "previous_owner"
	AttrNewOwner       = "new_owner"
	AttrGranter        = "granter"
	AttrAllowance      = "allowance"
)
