package constants

// NSQ topics
const (
	// TopicPushNotification carries best-effort push payloads for users
	// without a live realtime connection
	TopicPushNotification = "notification.push"
)
