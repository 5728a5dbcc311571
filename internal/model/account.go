package model

type AccountSummaryResponse struct {
	Account           AccountSummary `json:"account"`
	LastTransactionID string         `json:"lastTransactionID"`
}

type AccountSummary struct {
	ID                          string `json:"id"`
	Currency                    string `json:"currency"`
	Balance                     string `json:"balance"`
	NAV                         string `json:"NAV"`
	UnrealizedPL                string `json:"unrealizedPL"`
	PL                          string `json:"pl"`
	OpenTradeCount              int    `json:"openTradeCount"`
	OpenPositionCount           int    `json:"openPositionCount"`
	PendingOrderCount           int    `json:"pendingOrderCount"`
	MarginAvailable             string `json:"marginAvailable"`
	MarginUsed                  string `json:"marginUsed"`
	MarginCloseoutNAV           string `json:"marginCloseoutNAV"`
	MarginCloseoutPercent       string `json:"marginCloseoutPercent"`
	MarginCloseoutPositionValue string `json:"marginCloseoutPositionValue"`
}

type PricingResponse struct {
	Prices []Price `json:"prices"`
	Time   string  `json:"time"`
}

type Price struct {
	Instrument string        `json:"instrument"`
	Time       string        `json:"time"`
	Tradeable  bool          `json:"tradeable"`
	Bids       []PriceBucket `json:"bids"`
	Asks       []PriceBucket `json:"asks"`
}

type PriceBucket struct {
	Price     string `json:"price"`
	Liquidity int64  `json:"liquidity"`
}
