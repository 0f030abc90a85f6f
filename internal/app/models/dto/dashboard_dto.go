package dto

// DashboardStats carries the aggregate totals shown on the dashboard.
// TotalDueAmount is deliberately unclamped: an overpaid student reduces it and
// it can legitimately go negative.
type DashboardStats struct {
	TotalStudents     int     `json:"totalStudents" example:"42"`
	TotalFeeCollected float64 `json:"totalFeeCollected" example:"84000"`
	TotalDueAmount    float64 `json:"totalDueAmount" example:"21000"`
	TotalPotentialFee float64 `json:"totalPotentialFee" example:"105000"`
	// CollectionRate is round(collected/potential*100); 0 when potential is 0,
	// above 100 when the collection exceeds the potential.
	CollectionRate int `json:"collectionRate" example:"80"`
}

// ClassCount is one bar of the students-per-class chart
type ClassCount struct {
	Standard string `json:"standard" example:"7"`
	Count    int    `json:"count" example:"12"`
}

// ClassDue is one entry of the pending-dues-by-class chart
type ClassDue struct {
	Standard string  `json:"standard" example:"7"`
	Amount   float64 `json:"amount" example:"15000"`
}

// DashboardResponse bundles everything the dashboard view renders
type DashboardResponse struct {
	Stats       DashboardStats `json:"stats"`
	ClassCounts []ClassCount   `json:"classCounts"`
	TopDues     []ClassDue     `json:"topDues"`
}
