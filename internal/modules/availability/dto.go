package availability

import "time"

type DateOption struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

type SlotOption struct {
	Time    string    `json:"time"`
	Label   string    `json:"label"`
	StartAt time.Time `json:"start_at"`
}
