package types

import (
	errorsmod "cosmossdk.io/errors"
)

// DONTCOVER

var (
	ErrInvalidRequest      = errorsmod.Register(ModuleName, 1100, "invalid request")
	ErrAccessDenied        = errorsmod.Register(ModuleName, 1101, "access denied")
	ErrZeroAddress         = errorsmod.Register(ModuleName, 1102, "zero address")
	ErrDuplicateEntity     = errorsmod.Register(ModuleName, 1103, "entity already exists")
	ErrArityMismatch       = errorsmod.Register(ModuleName, 1104, "argument lengths do not match")
	ErrInvalidAmount       = errorsmod.Register(ModuleName, 1105, "invalid amount")
	ErrInsufficientBalance = errorsmod.Register(ModuleName, 1106, "insufficient balance")
	ErrInvalidTierSize     = errorsmod.Register(ModuleName, 1107, "invalid tier size")
	ErrOutOfBounds         = errorsmod.Register(ModuleName, 1108, "index out of bounds")
	ErrPreconditionNotMet  = errorsmod.Register(ModuleName, 1109, "required configuration missing")
	ErrNotFound            = errorsmod.Register(ModuleName, 1110, "not found")
)
