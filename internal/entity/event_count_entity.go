package entity

// EventCount is an aggregation row: how often one event name occurred.
type EventCount struct {
	EventName string
	Count     int64
}
