package model

// Item is the domain model for a todo entry.
// The json tags are the wire format; do not rename them.
type Item struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}
