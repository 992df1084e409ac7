package services

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/Dev-MihirParmar/Enlighten/errors"
)

func randToken(size int) string {
	b := make([]byte, size)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

func errUnknownProvider(provider string) error {
	return errors.New("unknown provider "+provider, errors.NotFound())
}
