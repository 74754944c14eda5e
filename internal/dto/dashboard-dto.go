package dto

type ChartPoint struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

type DashboardStatsDTO struct {
	EquipmentByStatus    []ChartPoint `json:"equipmentByStatus"`
	TicketsByDay         []ChartPoint `json:"ticketsByDay"`
	OpenTickets          int64        `json:"openTickets"`
	NewAlerts            int64        `json:"newAlerts"`
	ExpiringLicenses     int64        `json:"expiringLicenses"`
	UpcomingMaintenances int64        `json:"upcomingMaintenances"`
	TotalEquipment       int64        `json:"totalEquipment"`
	TotalEmployees       int64        `json:"totalEmployees"`
}
