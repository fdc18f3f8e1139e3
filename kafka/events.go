package kafka

import "time"

// BlogCreatedEvent is emitted after a blog is persisted
type BlogCreatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	BlogID    uint      `json:"blog_id"`
	AuthorID  uint      `json:"author_id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}

// BlogDeletedEvent is emitted after a blog is removed
type BlogDeletedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	BlogID    uint      `json:"blog_id"`
	AuthorID  uint      `json:"author_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeBlogCreated = "blog.created"
	EventTypeBlogDeleted = "blog.deleted"
)

// Kafka topics
const (
	TopicBlogLifecycle = "blog-lifecycle"
)
