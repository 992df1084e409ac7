package endpoints

import (
	"context"

	"github.com/Dev-MihirParmar/Enlighten/content"
	"github.com/Dev-MihirParmar/Enlighten/content/services"
)

type ContentEndpoint struct {
	service *services.ContentService
}

func NewContentEndpoint(s *services.ContentService) ContentEndpoint {
	return ContentEndpoint{
		service: s,
	}
}

type UpdateRequest struct {
	ID      int
	Content content.Content
}

func (ep ContentEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	c, ok := r.(content.Content)
	if !ok {
		return nil, errInvalidRequest
	}

	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.Create(callerID, c)
}

func (ep ContentEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	// Anonymous readers see published content only.
	callerID := extractOptionalUserID(ctx)

	return ep.service.Get(callerID, id)
}

func (ep ContentEndpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(UpdateRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.Update(callerID, req.ID, req.Content)
}

func (ep ContentEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := ep.service.Delete(callerID, id); err != nil {
		return nil, err
	}

	return map[string]interface{}{"id": id}, nil
}

func (ep ContentEndpoint) Like(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.Like(callerID, id)
}

func (ep ContentEndpoint) Unlike(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.Unlike(callerID, id)
}

func (ep ContentEndpoint) Search(_ context.Context, r interface{}) (interface{}, error) {
	search, ok := r.(content.Search)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Search(search)
}
