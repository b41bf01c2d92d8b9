package contract

import (
	"strings"

	tinyjson "github.com/CosmWasm/tinyjson"

	"vote_dao/sdk"
)

// unmarshalArgs parses a JSON payload into the given args struct, aborting on
// garbage input before any validation runs.
func unmarshalArgs(payload *string, v tinyjson.Unmarshaler, what string) {
	if payload == nil {
		sdk.Abort(what + " payload missing")
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(what + " payload missing")
	}
	if err := tinyjson.Unmarshal([]byte(raw), v); err != nil {
		sdk.Abort("invalid " + what + " payload: " + err.Error())
	}
}
