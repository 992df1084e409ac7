package endpoints

import (
	"context"

	"github.com/Dev-MihirParmar/Enlighten/auth/services"
)

type UserEndpoint struct {
	service *services.UserService
}

func NewUserEndpoint(s *services.UserService) UserEndpoint {
	return UserEndpoint{
		service: s,
	}
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ep UserEndpoint) SignUp(_ context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(SignUpRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	token, err := ep.service.SignUp(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return map[string]string{"token": token}, nil
}

func (ep UserEndpoint) Login(_ context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(LoginRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	token, err := ep.service.Login(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return map[string]string{"token": token}, nil
}

func (ep UserEndpoint) Me(ctx context.Context, _ interface{}) (interface{}, error) {
	callerID, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.Get(callerID)
}
