package contract

import "vote_dao/sdk"

// loadTreasuryConfig returns the singleton config, or nil before initialization.
func loadTreasuryConfig() *TreasuryConfig {
	ptr := sdk.StateGet(TreasuryConfigAddress().String())
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg, err := DecodeTreasuryConfig([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode treasury config")
	}
	return cfg
}

// mustTreasuryConfig loads the config or reverts when the treasury was never
// initialized, since every token movement depends on it.
func mustTreasuryConfig() *TreasuryConfig {
	cfg := loadTreasuryConfig()
	if cfg == nil {
		fail(ErrNotInitialized, "treasury config does not exist")
	}
	return cfg
}

func saveTreasuryConfig(cfg *TreasuryConfig) {
	sdk.StateSet(TreasuryConfigAddress().String(), string(EncodeTreasuryConfig(cfg)))
}
