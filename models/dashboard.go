package models

// AdminStats is the administrator dashboard view, fully recomputed from the
// current store snapshot on every call.
type AdminStats struct {
	TotalUsers          int     `json:"totalUsers"`
	TotalCars           int     `json:"totalCars"`
	TotalBookings       int     `json:"totalBookings"`
	Revenue             float64 `json:"revenue"`
	PendingApprovals    int     `json:"pendingApprovals"`
	PendingPayments     int     `json:"pendingPayments"`
	UnreadNotifications int     `json:"unreadNotifications"`
}

// UserStats is the per-user dashboard view.
type UserStats struct {
	Bookings         []Booking `json:"bookings"`
	TotalBookings    int       `json:"totalBookings"`
	UpcomingBookings int       `json:"upcomingBookings"`
	CancelledCount   int       `json:"cancelledBookings"`
	TotalSpent       float64   `json:"totalSpent"`
}

// AgencyStats is the agency/company dashboard view.
type AgencyStats struct {
	TotalCars       int     `json:"totalCars"`
	ApprovedCars    int     `json:"approvedCars"`
	PendingApproval int     `json:"pendingApproval"`
	BookedCars      int     `json:"bookedCars"`
	Earnings        float64 `json:"earnings"`
}
