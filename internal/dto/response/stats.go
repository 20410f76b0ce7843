package response

type StatsResponse struct {
	TotalOrders   int64   `json:"totalOrders"`
	TotalProducts int64   `json:"totalProducts"`
	PendingOrders int64   `json:"pendingOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
