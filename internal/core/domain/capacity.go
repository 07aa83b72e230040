package domain

// CapacityItem is one row of the production-capacity report: how many units
// of a product current stock allows and what they would be worth.
type CapacityItem struct {
	ProductID          int64   `json:"productId"`
	ProductCode        string  `json:"productCode"`
	ProductName        string  `json:"productName"`
	UnitPrice          float64 `json:"unitPrice"`
	ProducibleQuantity float64 `json:"producibleQuantity"`
	TotalValue         float64 `json:"totalValue"`
}

// CapacityReport is the full report as computed by the inventory API. The
// client only derives presentation values from Items; GrandTotalValue is
// server-authoritative.
type CapacityReport struct {
	Items           []CapacityItem `json:"items"`
	GrandTotalValue float64        `json:"grandTotalValue"`
}
