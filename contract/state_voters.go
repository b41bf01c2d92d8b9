package contract

import "vote_dao/sdk"

// loadVoter returns the wallet's voter record, or nil when unregistered.
func loadVoter(owner sdk.Address) *Voter {
	ptr := sdk.StateGet(VoterAddress(owner).String())
	if ptr == nil || *ptr == "" {
		return nil
	}
	v, err := DecodeVoter([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode voter")
	}
	return v
}

func saveVoter(v *Voter) {
	sdk.StateSet(VoterAddress(v.VoterID).String(), string(EncodeVoter(v)))
}

func deleteVoter(owner sdk.Address) {
	sdk.StateDelete(VoterAddress(owner).String())
}
