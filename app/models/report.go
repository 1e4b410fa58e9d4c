package models

// TimeBucket is a derived per-period aggregate of attendance statuses.
// Buckets are computed on demand and never persisted.
type TimeBucket struct {
	PeriodKey string  `json:"period_key"`
	Present   int     `json:"present"`
	Absent    int     `json:"absent"`
	Late      int     `json:"late"`
	Excused   int     `json:"excused"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"` // (present + late) / total as a percentage
}

// YearToDateSummary aggregates instructional-day records from January 1 of
// the target year through the reference date.
type YearToDateSummary struct {
	Year    int `json:"year"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
}
