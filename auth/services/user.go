package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dev-MihirParmar/Enlighten/auth"
	"github.com/Dev-MihirParmar/Enlighten/errors"
)

type Encoder interface {
	Encode(int) (string, error)
}

type UserService struct {
	repository auth.UserRepository

	encoder Encoder
}

func NewUserService(repo auth.UserRepository, encoder Encoder) *UserService {
	return &UserService{
		repository: repo,
		encoder:    encoder,
	}
}

// SignUp creates a user from local credentials and returns a bearer token.
func (s *UserService) SignUp(name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", errors.New("name, email and password are required", errors.BadRequest())
	}

	// Generate the hash to store from the user password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := auth.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	// The repository rejects duplicate emails atomically, the service does
	// not pre-check.
	if err := s.repository.Insert(&user); err != nil {
		return "", err
	}

	return s.encoder.Encode(user.ID)
}

// Login verifies local credentials and returns a bearer token. Unknown email
// and wrong password are indistinguishable from the outside.
func (s *UserService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password are required", errors.BadRequest())
	}

	user, err := s.repository.GetByEmail(email)
	if err != nil {
		return "", err
	}

	if user.ID == 0 || user.PasswordHash == "" {
		return "", errInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errInvalidCredentials()
	}

	return s.encoder.Encode(user.ID)
}

// ResolveExternal maps an OAuth profile to a local user, creating one on the
// first login. Lookup is by provider id first, then by email so that
// providers sharing an email end up linked to the same user.
func (s *UserService) ResolveExternal(profile auth.ExternalProfile) (auth.User, error) {
	if profile.Email == "" {
		return auth.User{}, errors.New("no email in "+profile.Provider+" profile", errors.BadRequest())
	}

	user, err := s.repository.GetByProviderID(profile.Provider, profile.ID)
	if err != nil {
		return auth.User{}, err
	}

	if user.ID == 0 {
		user, err = s.repository.GetByEmail(profile.Email)
		if err != nil {
			return auth.User{}, err
		}
	}

	if user.ID == 0 {
		user = auth.User{
			Name:      profile.Name,
			Email:     profile.Email,
			CreatedAt: time.Now(),
		}
		if err := setProviderID(&user, profile); err != nil {
			return auth.User{}, err
		}

		if err := s.repository.Insert(&user); err != nil {
			return auth.User{}, err
		}
		return user, nil
	}

	if user.ProviderID(profile.Provider) == profile.ID {
		return user, nil
	}

	// Known user, new provider: link the external id.
	if err := setProviderID(&user, profile); err != nil {
		return auth.User{}, err
	}
	if user.Name == "" {
		user.Name = profile.Name
	}

	if err := s.repository.Update(&user); err != nil {
		return auth.User{}, err
	}

	return user, nil
}

func (s *UserService) Get(id int) (auth.User, error) {
	user, err := s.repository.Get(id)
	if err != nil {
		return auth.User{}, err
	}

	if user.ID == 0 {
		return auth.User{}, errUserNotFound(id)
	}
	return user, nil
}

func (s *UserService) Token(userID int) (string, error) {
	return s.encoder.Encode(userID)
}

func (s *UserService) All() ([]auth.User, error) {
	return s.repository.List()
}

func setProviderID(user *auth.User, profile auth.ExternalProfile) error {
	switch profile.Provider {
	case auth.ProviderGoogle:
		user.GoogleID = profile.ID
	case auth.ProviderGithub:
		user.GithubID = profile.ID
	default:
		return errors.New("unknown provider "+profile.Provider, errors.NotFound())
	}
	return nil
}
