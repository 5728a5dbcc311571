package model

type Position struct {
	Instrument   string       `json:"instrument"`
	PL           string       `json:"pl"`
	UnrealizedPL string       `json:"unrealizedPL"`
	Long         PositionSide `json:"long"`
	Short        PositionSide `json:"short"`
}

type PositionSide struct {
	Units        string `json:"units"`
	AveragePrice string `json:"averagePrice,omitempty"`
	PL           string `json:"pl"`
	UnrealizedPL string `json:"unrealizedPL"`
}

type PositionsResponse struct {
	Positions         []Position `json:"positions"`
	LastTransactionID string     `json:"lastTransactionID"`
}

type Trade struct {
	ID           string `json:"id"`
	Instrument   string `json:"instrument"`
	Price        string `json:"price"`
	OpenTime     string `json:"openTime"`
	State        string `json:"state"`
	InitialUnits string `json:"initialUnits"`
	CurrentUnits string `json:"currentUnits"`
	UnrealizedPL string `json:"unrealizedPL"`
}

type TradesResponse struct {
	Trades            []Trade `json:"trades"`
	LastTransactionID string  `json:"lastTransactionID"`
}

type CloseTradeRequest struct {
	Units string `json:"units"`
}

type CloseTradeResponse struct {
	OrderCreateTransaction Transaction  `json:"orderCreateTransaction"`
	OrderFillTransaction   *Transaction `json:"orderFillTransaction,omitempty"`
	OrderCancelTransaction *Transaction `json:"orderCancelTransaction,omitempty"`
	LastTransactionID      string       `json:"lastTransactionID"`
}
