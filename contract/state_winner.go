package contract

import "vote_dao/sdk"

// loadWinner returns the current winner record, or nil when none was declared yet.
func loadWinner() *Winner {
	ptr := sdk.StateGet(WinnerAddress().String())
	if ptr == nil || *ptr == "" {
		return nil
	}
	w, err := DecodeWinner([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode winner")
	}
	return w
}

func saveWinner(w *Winner) {
	sdk.StateSet(WinnerAddress().String(), string(EncodeWinner(w)))
}
