package sdk

// Sender identifies who signed the current transaction.
type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

// Env is the per-transaction execution environment snapshot handed over by the
// host. Timestamp stays a string because the host flips between unix seconds
// and iso formats depending on the block producer.
type Env struct {
	ContractId  string `json:"contract_id"`
	TxId        string `json:"tx_id"`
	BlockId     string `json:"block_id"`
	BlockHeight uint64 `json:"block_height"`
	Timestamp   string `json:"timestamp"`
	Sender      Sender `json:"sender"`
}
