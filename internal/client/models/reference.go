package models

// Supplier is a carrier that can be assigned to a flete.
type Supplier struct {
	ID   int    `json:"id"`
	Name string `json:"supplierName"`
}

// Destination is a route with its base cost.
type Destination struct {
	ID   int     `json:"id"`
	Name string  `json:"destinationName"`
	Cost float64 `json:"cost"`
}
