package models

// Product is a relationally-stored offering. Once a solution entry links a
// product by id, the product's price and name are the source of truth and
// override any literal price embedded in the content record.
type Product struct {
	ID           string  `json:"id" bson:"_id"`
	Name         string  `json:"name" bson:"name"`
	DefaultPrice float64 `json:"defaultPrice" bson:"defaultPrice"`
}
