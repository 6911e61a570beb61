package model

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	ID        string `json:"_id"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"user,omitempty"`
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ChatSessionSummary describes a stored conversation.
type ChatSessionSummary struct {
	SessionID          string `json:"sessionId"`
	Title              string `json:"title"`
	LastMessagePreview string `json:"lastMessagePreview"`
	UpdatedAt          string `json:"updatedAt"`
	MessageCount       int    `json:"messageCount,omitempty"`
}

// AskRequest forwards a question to the assistant, optionally continuing
// an existing session.
type AskRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// AskResponse carries the assistant's answer and the session it belongs to.
type AskResponse struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}

// DeleteChatSessionResponse reports how many messages were removed.
type DeleteChatSessionResponse struct {
	SessionID string `json:"sessionId"`
	Deleted   int    `json:"deleted"`
}
