package services

import (
	"fmt"

	"github.com/Dev-MihirParmar/Enlighten/errors"
)

// errUserNotFound returns a 404 for when a user could not be found.
func errUserNotFound(id int) error {
	return errors.New(fmt.Sprintf("No user for id %d", id), errors.NotFound())
}

// errInvalidCredentials returns the uniform 401 used for both an unknown
// email and a wrong password, so that a caller cannot tell which one failed.
func errInvalidCredentials() error {
	return errors.New("invalid credentials", errors.Unauthorized())
}
