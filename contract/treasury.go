package contract

import (
	"fmt"

	"vote_dao/sdk"
)

// InitializeTreasury creates the singleton pricing config, provisions the
// governance token mint under the program's mint authority and reserves the
// native vault address. The sender becomes the sole treasury authority.
func InitializeTreasury(payload *string) *string {
	var args InitializeTreasuryArgs
	unmarshalArgs(payload, &args, "initializeTreasury")

	if loadTreasuryConfig() != nil {
		fail(ErrAlreadyInitialized, "treasury config already exists")
	}

	sender := getSenderAddress()

	sdk.CreateMint(XMintAddress(), MintAuthorityAddress(), XMintDecimals)

	cfg := &TreasuryConfig{
		Authority:         sender,
		XMint:             XMintAddress(),
		SolPrice:          args.SolPrice,
		TokensPerPurchase: args.TokensPerPurchase,
	}
	saveTreasuryConfig(cfg)

	emitTreasuryInitialized(sender.String(), args.SolPrice, args.TokensPerPurchase)
	return strptr("treasury initialized")
}

// ConfigureTreasuryTokenAccount binds the external token account that receives
// all proposal and vote stakes. Authority only; the account must belong to the
// authority and sit on the governance mint.
func ConfigureTreasuryTokenAccount(payload *string) *string {
	var args ConfigureTreasuryTokenAccountArgs
	unmarshalArgs(payload, &args, "configureTreasuryTokenAccount")

	cfg := mustTreasuryConfig()
	sender := getSenderAddress()
	if sender != cfg.Authority {
		fail(ErrUnauthorizedAccess, "only the treasury authority can configure the token account")
	}

	acctAddr := sdk.Address(args.TreasuryTokenAccount)
	acct := sdk.GetTokenAccount(acctAddr)
	if acct == nil {
		fail(ErrInvalidTokenAccountOwner, "treasury token account does not exist")
	}
	if acct.Mint != cfg.XMint {
		fail(ErrInvalidMint, "treasury token account is not on the governance mint")
	}
	if acct.Owner != cfg.Authority {
		fail(ErrInvalidTokenAccountOwner, "treasury token account is not owned by the authority")
	}

	cfg.TreasuryTokenAccount = acctAddr
	saveTreasuryConfig(cfg)

	emitTreasuryTokenAccountConfigured(acctAddr.String())
	return strptr("treasury token account configured")
}

// BuyTokens is the only issuance path: the sender pays the configured native
// price into the vault and receives exactly tokensPerPurchase freshly minted
// base units into their own token account.
func BuyTokens(payload *string) *string {
	var args BuyTokensArgs
	unmarshalArgs(payload, &args, "buyTokens")

	cfg := mustTreasuryConfig()
	buyer := getSenderAddress()

	acctAddr := sdk.Address(args.BuyerTokenAccount)
	acct := sdk.GetTokenAccount(acctAddr)
	if acct == nil {
		fail(ErrInvalidTokenAccountOwner, "buyer token account does not exist")
	}
	if acct.Mint != cfg.XMint {
		fail(ErrInvalidMint, "buyer token account is not on the governance mint")
	}
	if acct.Owner != buyer {
		fail(ErrInvalidTokenAccountOwner, "buyer token account is not owned by the sender")
	}

	sdk.Draw(SolVaultAddress(), cfg.SolPrice)
	sdk.MintTo(cfg.XMint, acctAddr, cfg.TokensPerPurchase)

	emitTokensPurchased(buyer.String(), cfg.SolPrice, cfg.TokensPerPurchase)
	return strptr(fmt.Sprintf("bought %d tokens", cfg.TokensPerPurchase))
}

// WithdrawSol moves native currency out of the vault to the authority. The
// balance check runs before any transfer so an overdraw has zero effect.
func WithdrawSol(payload *string) *string {
	var args WithdrawSolArgs
	unmarshalArgs(payload, &args, "withdrawSol")

	cfg := mustTreasuryConfig()
	sender := getSenderAddress()
	if sender != cfg.Authority {
		fail(ErrUnauthorizedAccess, "only the treasury authority can withdraw")
	}

	vault := SolVaultAddress()
	if sdk.Balance(vault) < args.Amount {
		fail(ErrInsufficientVaultBalance, "withdraw amount exceeds vault balance")
	}

	sdk.Transfer(vault, sender, args.Amount)

	emitSolWithdrawn(sender.String(), args.Amount)
	return strptr(fmt.Sprintf("withdrew %d", args.Amount))
}
