package assembler

import (
	"github.com/arkadda/seri/gjson"
)

// AssetSpec is one requested (token, amount) slot of an output box.
// Amounts may carry the -1 sentinel, telling the funding layer to
// supply the actual quantity; token ids may reference funding inputs
// through the service's substitution markers.
type AssetSpec struct {
	TokenID string `json:"tokenId"`
	Amount  int64  `json:"amount"`
}

// RegisterSpec carries the serialized register payloads of a requested
// box. The service takes them base64-encoded.
type RegisterSpec struct {
	R4 gjson.Base64String `json:"R4,omitempty"`
	R5 gjson.Base64String `json:"R5,omitempty"`
	R6 gjson.Base64String `json:"R6,omitempty"`
	R7 gjson.Base64String `json:"R7,omitempty"`
	R8 gjson.Base64String `json:"R8,omitempty"`
	R9 gjson.Base64String `json:"R9,omitempty"`
}

// BoxSpec requests the creation of one output box. A Value of -1 lets
// the funding layer determine the minimal required amount.
type BoxSpec struct {
	Address   string        `json:"address"`
	Value     int64         `json:"value"`
	Assets    []*AssetSpec  `json:"assets,omitempty"`
	Registers *RegisterSpec `json:"registers,omitempty"`
}

type TxSpec struct {
	Requests   []*BoxSpec `json:"requests"`
	Fee        int64      `json:"fee"`
	Inputs     []string   `json:"inputs"`
	DataInputs []string   `json:"dataInputs"`
}

// FundRequest asks the service to watch Address for incoming funds
// matching StartWhen, then assemble and submit the transaction TxSpec
// describes, returning leftovers to ReturnTo.
type FundRequest struct {
	Address   string           `json:"address"`
	ReturnTo  string           `json:"returnTo"`
	StartWhen map[string]int64 `json:"startWhen"`
	TxSpec    *TxSpec          `json:"txSpec"`
}

type FollowResult struct {
	ID string `json:"id"`
}

type compileRes struct {
	Address string `json:"address"`
}

// UserInput is the marker the service replaces with the funder's own
// input boxes; UserInputToken references the token those inputs mint.
const (
	UserInput      = "$userIns"
	UserInputToken = "$userIns.token"
)
