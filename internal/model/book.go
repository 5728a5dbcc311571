package model

// Book is either an order book or a position book. Both share the bucket shape.
type Book struct {
	Instrument  string       `json:"instrument"`
	Time        string       `json:"time"`
	Price       string       `json:"price"`
	BucketWidth string       `json:"bucketWidth"`
	Buckets     []BookBucket `json:"buckets"`
}

type BookBucket struct {
	Price             string `json:"price"`
	LongCountPercent  string `json:"longCountPercent"`
	ShortCountPercent string `json:"shortCountPercent"`
}

type OrderBookResponse struct {
	OrderBook Book `json:"orderBook"`
}

type PositionBookResponse struct {
	PositionBook Book `json:"positionBook"`
}
