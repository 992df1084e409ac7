package services

import (
	"fmt"

	"github.com/Dev-MihirParmar/Enlighten/content"
	"github.com/Dev-MihirParmar/Enlighten/errors"
)

func errContentNotFound(id int) error {
	return errors.New(fmt.Sprintf("no content for id %d", id), errors.NotFound())
}

func errNotAuthor() error {
	return errors.New("only the author can do that", errors.Forbidden())
}

func checkStatus(status string) error {
	switch status {
	case content.StatusDraft, content.StatusPublished:
		return nil
	}
	return errors.New("invalid status "+status, errors.BadRequest())
}
