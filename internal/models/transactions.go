package models

// GasCostSummary holds the gas fields of a transaction effect. All values are
// smallest-unit integers encoded as strings.
type GasCostSummary struct {
	ComputationCost         string `json:"computationCost"`
	StorageCost             string `json:"storageCost"`
	StorageRebate           string `json:"storageRebate"`
	NonRefundableStorageFee string `json:"nonRefundableStorageFee"`
}

// ExecutionStatus reports the outcome of a transaction effect
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	ExecutionSuccess = "success"
	ExecutionFailure = "failure"
)

// DryRunResult is the subset of sui_dryRunTransactionBlock used by the app
type DryRunResult struct {
	Status  ExecutionStatus
	GasUsed GasCostSummary
}

// TransactionBytes is the response of the unsafe_* transaction builders
type TransactionBytes struct {
	TxBytes string `json:"txBytes"`
}

// TransactionEffects is the subset of effects returned on execution
type TransactionEffects struct {
	Status ExecutionStatus `json:"status"`
}

// ExecuteResult is the response of sui_executeTransactionBlock
type ExecuteResult struct {
	Digest  string              `json:"digest"`
	Effects *TransactionEffects `json:"effects,omitempty"`
}

// TransactionBlock is the subset of sui_getTransactionBlock used for confirmation
type TransactionBlock struct {
	Digest     string `json:"digest"`
	Checkpoint string `json:"checkpoint,omitempty"`
}
