package types

import "errors"

var (
	ErrBetTooSmall          = errors.New("the bet amount is less than the configured minimum")
	ErrBetTooLarge          = errors.New("the bet amount is more than the configured maximum")
	ErrEscrowFailed         = errors.New("the ledger rejected the escrow transfer, no bet was created")
	ErrAlreadySettled       = errors.New("can't settle the bet again, the bet has finished")
	ErrCategoryMismatch     = errors.New("the declared category does not match the category the bet was placed with")
	ErrCommitmentMismatch   = errors.New("the revealed secret does not hash to the stored commitment")
	ErrPayoutTransferFailed = errors.New("the vault could not release the payout, the bet stays open")
	ErrBetNotFound          = errors.New("the bet record does not exist")

	ErrNoBalance      = errors.New("the balance is not enough")
	ErrAmount         = errors.New("the amount is invalid")
	ErrSendSameToRecv = errors.New("can't send to the same address")
	ErrInvalidParam   = errors.New("invalid parameter")
	ErrVaultAuthority = errors.New("the authority is not scoped to this vault")
)
