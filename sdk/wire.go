package sdk

import "encoding/json"

// Host payloads arrive as JSON blobs; these helpers keep the parsing in one
// place so the wasm bindings stay a thin shim over the imports.

func parseEnvJSON(raw string) Env {
	env := Env{}
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(raw), &env)
	json.Unmarshal([]byte(raw), &envMap)

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	if senderVal, ok := envMap["msg.sender"].(string); ok {
		env.Sender = Sender{
			Address:       Address(senderVal),
			RequiredAuths: requiredAuths,
		}
	}
	return env
}

func parseMintJSON(raw string) *Mint {
	var wire struct {
		Authority string `json:"authority"`
		Decimals  uint8  `json:"decimals"`
		Supply    uint64 `json:"supply"`
	}
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil
	}
	return &Mint{
		Authority: Address(wire.Authority),
		Decimals:  wire.Decimals,
		Supply:    wire.Supply,
	}
}

func parseTokenAccountJSON(raw string) *TokenAccount {
	var wire struct {
		Owner   string `json:"owner"`
		Mint    string `json:"mint"`
		Balance uint64 `json:"balance"`
	}
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil
	}
	return &TokenAccount{
		Owner:   Address(wire.Owner),
		Mint:    Address(wire.Mint),
		Balance: wire.Balance,
	}
}
