package admin

type StatsResponse struct {
	TotalRevenue   int64 `json:"total_revenue"`
	OrderRevenue   int64 `json:"order_revenue"`
	BookingRevenue int64 `json:"booking_revenue"`
	OrderCount     int64 `json:"order_count"`
	BookingCount   int64 `json:"booking_count"`
	ClientCount    int64 `json:"client_count"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}
