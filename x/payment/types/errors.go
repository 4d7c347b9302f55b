package types

import (
	errorsmod "cosmossdk.io/errors"
)

// DONTCOVER

var (
	ErrInvalidRequest        = errorsmod.Register(ModuleName, 1100, "invalid request")
	ErrAccessDenied          = errorsmod.Register(ModuleName, 1101, "access denied")
	ErrZeroAddress           = errorsmod.Register(ModuleName, 1102, "zero address")
	ErrArityMismatch         = errorsmod.Register(ModuleName, 1103, "argument lengths do not match")
	ErrInvalidAmount         = errorsmod.Register(ModuleName, 1104, "invalid amount")
	ErrInsufficientBalance   = errorsmod.Register(ModuleName, 1105, "insufficient balance")
	ErrInsufficientLevel     = errorsmod.Register(ModuleName, 1106, "insufficient level")
	ErrPreconditionNotMet    = errorsmod.Register(ModuleName, 1107, "required configuration missing")
	ErrInsufficientAllowance = errorsmod.Register(ModuleName, 1108, "insufficient allowance")
)
