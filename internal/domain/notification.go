package domain

// Notification accumulates human-readable failure messages for one unit
// of work. A fresh collector must be created per operation; it is
// append-only and not safe for concurrent writers.
type Notification struct {
	messages []string
}

func NewNotification() *Notification {
	return &Notification{}
}

// Handle appends a message to the collection.
func (n *Notification) Handle(message string) {
	n.messages = append(n.messages, message)
}

// IsNotification reports whether any message has been collected.
func (n *Notification) IsNotification() bool {
	return len(n.messages) > 0
}

// GetNotification returns all collected messages in insertion order.
func (n *Notification) GetNotification() []string {
	return n.messages
}
