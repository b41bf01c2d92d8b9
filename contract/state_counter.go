package contract

import "vote_dao/sdk"

// loadProposalCounter returns the singleton counter, or nil before initialization.
func loadProposalCounter() *ProposalCounter {
	ptr := sdk.StateGet(ProposalCounterAddress().String())
	if ptr == nil || *ptr == "" {
		return nil
	}
	c, err := DecodeProposalCounter([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode proposal counter")
	}
	return c
}

func mustProposalCounter() *ProposalCounter {
	c := loadProposalCounter()
	if c == nil {
		fail(ErrNotInitialized, "proposal counter does not exist")
	}
	return c
}

func saveProposalCounter(c *ProposalCounter) {
	sdk.StateSet(ProposalCounterAddress().String(), string(EncodeProposalCounter(c)))
}
