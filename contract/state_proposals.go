package contract

import "vote_dao/sdk"

// loadProposal decodes a proposal record, reverting when the id was never
// registered or the record has been closed (closed proposals are permanently
// unaddressable).
func loadProposal(id uint8) *Proposal {
	ptr := sdk.StateGet(ProposalAddress(id).String())
	if ptr == nil || *ptr == "" {
		fail(ErrProposalNotFound, "no proposal record at the derived address")
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode proposal")
	}
	return p
}

func saveProposal(p *Proposal) {
	sdk.StateSet(ProposalAddress(p.ProposalID).String(), string(EncodeProposal(p)))
}

func deleteProposal(id uint8) {
	sdk.StateDelete(ProposalAddress(id).String())
}
