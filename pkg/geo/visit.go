package geo

import "time"

// Visit is an immutable snapshot of a detected place visit.
// ArrivalTime is the zero time when the arrival predates monitoring;
// DepartureTime is the zero time while the visit is still in progress.
type Visit struct {
	ArrivalTime        time.Time  `json:"arrival_time"`
	DepartureTime      time.Time  `json:"departure_time"`
	Coordinate         Coordinate `json:"coordinate"`
	HorizontalAccuracy float64    `json:"horizontal_accuracy_m"`
}
