package fiber

// CreateEventRequest represents one listener event
// @Description Event ingestion DTO; which fields matter depends on type
type CreateEventRequest struct {
	Type           string `json:"type"`
	ChannelID      string `json:"channel_id"`
	UserID         string `json:"user_id"`
	Emoji          string `json:"emoji,omitempty"`
	ItemUserID     string `json:"item_user_id,omitempty"`
	ThreadID       string `json:"thread_id,omitempty"`
	ThreadAuthorID string `json:"thread_author_id,omitempty"`
	DisplayName    string `json:"display_name,omitempty"`
	Remove         bool   `json:"remove,omitempty"`
	Timestamp      int64  `json:"timestamp"`
}

type CreateEventResponse struct {
	Status string `json:"status"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Accepted int `json:"accepted"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
