package models

// PushNotification is the payload handed to the external best-effort push
// collaborator when no live realtime connection exists
type PushNotification struct {
	UserID string            `json:"user_id"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}
