package dto

type RecordTicketInput struct {
	EventID      string `json:"event_id" validate:"required,uuid4"`
	BuyerAddress string `json:"buyer_address" validate:"required,max=64"`
	Amount       string `json:"amount" validate:"required,max=32"`
	TxHash       string `json:"tx_hash" validate:"required,max=64"`
}

type RecordTicketOutput struct {
	Queued bool   `json:"queued"`
	TxHash string `json:"tx_hash"`
}
