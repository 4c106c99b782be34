package database

import "errors"

// Set of errors for wallet management.
var (
	ErrEmptyAddress        = errors.New("address is empty")
	ErrMiningAddress       = errors.New("address cannot be " + MiningAddress)
	ErrNegativeBalance     = errors.New("balance is less than 0")
	ErrEmptyPassword       = errors.New("password is empty")
	ErrWalletAlreadyExists = errors.New("a wallet with this address already exists")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrNegativeAmount      = errors.New("amount is less than 0")
	ErrBalanceOverflow     = errors.New("balance would exceed the maximum")
)

// Set of errors for transfer validation.
var (
	ErrEmptyFromAddress   = errors.New("'from' address is empty")
	ErrEmptyToAddress     = errors.New("'to' address is empty")
	ErrInvalidAmount      = errors.New("amount can't be 0 or less")
	ErrInvalidFromAddress = errors.New("'from' address doesn't exist")
	ErrInvalidToAddress   = errors.New("'to' address doesn't exist")
	ErrNotEnoughCoins     = errors.New("not enough coins")
)
