package model

type OrderType string

const (
	OrderTypeLimit OrderType = "LIMIT"
)

type TimeInForce string

const (
	GoodTillCancelled TimeInForce = "GTC"
)

type Order struct {
	ID          string `json:"id"`
	Instrument  string `json:"instrument"`
	Units       string `json:"units"`
	Price       string `json:"price"`
	State       string `json:"state"`
	Type        string `json:"type"`
	CreateTime  string `json:"createTime"`
	TimeInForce string `json:"timeInForce"`
}

type OrdersResponse struct {
	Orders            []Order `json:"orders"`
	LastTransactionID string  `json:"lastTransactionID"`
}

type ClientExtensions struct {
	ID      string `json:"id,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type LimitOrder struct {
	Type             OrderType         `json:"type"`
	Instrument       string            `json:"instrument"`
	Units            string            `json:"units"`
	Price            string            `json:"price"`
	TimeInForce      TimeInForce       `json:"timeInForce"`
	PositionFill     string            `json:"positionFill"`
	ClientExtensions *ClientExtensions `json:"clientExtensions,omitempty"`
}

type CreateOrderRequest struct {
	Order LimitOrder `json:"order"`
}

type Transaction struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Time       string `json:"time"`
	Instrument string `json:"instrument,omitempty"`
	Units      string `json:"units,omitempty"`
	Price      string `json:"price,omitempty"`
	Reason     string `json:"reason,omitempty"`
	OrderID    string `json:"orderID,omitempty"`
	PL         string `json:"pl,omitempty"`
}

type CreateOrderResponse struct {
	OrderCreateTransaction Transaction  `json:"orderCreateTransaction"`
	OrderFillTransaction   *Transaction `json:"orderFillTransaction,omitempty"`
	OrderCancelTransaction *Transaction `json:"orderCancelTransaction,omitempty"`
	LastTransactionID      string       `json:"lastTransactionID"`
}

type CancelOrderResponse struct {
	OrderCancelTransaction Transaction `json:"orderCancelTransaction"`
	LastTransactionID      string      `json:"lastTransactionID"`
}
