package messaging

import "time"

// CitiesChangedEvent is published after every persisted change to the city list.
type CitiesChangedEvent struct {
	ID     string    `json:"id"`
	Action string    `json:"action"`
	City   string    `json:"city"`
	Cities []string  `json:"cities"`
	At     time.Time `json:"at"`
}
