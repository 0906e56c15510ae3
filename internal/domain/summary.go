package domain

// ContractSummary is the natural-language synopsis aggregated from the
// outputs of the other analyzers. It is derived after all of them complete.
type ContractSummary struct {
	Purpose           string   `json:"purpose"`
	KeyParties        []string `json:"key_parties"`
	ContractLength    string   `json:"contract_length"`
	PaymentHighlights []string `json:"payment_highlights"`
	TopRisks          []string `json:"top_risks"`
	KeyPoints         []string `json:"key_points"`
}
