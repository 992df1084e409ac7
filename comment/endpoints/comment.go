package endpoints

import (
	"context"

	"github.com/Dev-MihirParmar/Enlighten/comment/services"
)

type CommentEndpoint struct {
	service *services.CommentService
}

func NewCommentEndpoint(s *services.CommentService) CommentEndpoint {
	return CommentEndpoint{
		service: s,
	}
}

type AddRequest struct {
	ContentID int    `json:"contentID"`
	Text      string `json:"text"`
}

func (ep CommentEndpoint) Add(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(AddRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.Add(callerID, req.ContentID, req.Text)
}

func (ep CommentEndpoint) List(_ context.Context, r interface{}) (interface{}, error) {
	contentID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.ListByContent(contentID)
}
