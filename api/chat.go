package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lexlink/lexlink-cli/model"
)

// AskQuestion forwards a question to the legal assistant. An empty
// sessionID starts a new conversation; the returned sessionID continues it.
func (c *Client) AskQuestion(ctx context.Context, message, sessionID string) (*model.AskResponse, error) {
	var out model.AskResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/chat/ask",
		body:   model.AskRequest{Message: message, SessionID: sessionID},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetChatSessions lists the caller's stored conversations.
func (c *Client) GetChatSessions(ctx context.Context) ([]model.ChatSessionSummary, error) {
	var out []model.ChatSessionSummary
	if err := c.do(ctx, call{method: http.MethodGet, path: "/chat/sessions"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetChatHistory fetches the full message history of one conversation.
func (c *Client) GetChatHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	if err := c.do(ctx, call{method: http.MethodGet, path: "/chat/sessions/" + url.PathEscape(sessionID)}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteChatSession removes a conversation and its messages.
func (c *Client) DeleteChatSession(ctx context.Context, sessionID string) (*model.DeleteChatSessionResponse, error) {
	var out model.DeleteChatSessionResponse
	err := c.do(ctx, call{
		method: http.MethodDelete,
		path:   "/chat/sessions/" + url.PathEscape(sessionID),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
