package upload

import (
	"github.com/Dev-MihirParmar/Enlighten/log"
	"github.com/Dev-MihirParmar/Enlighten/upload"
	"github.com/Dev-MihirParmar/Enlighten/upload/http"
)

type Configuration struct {
	Dir     string `toml:"dir"`
	BaseURL string `toml:"base_url"`
}

// Start wires the disk store and registers the upload routes.
func Start(srv http.Server, conf Configuration, logger log.Logger, jwtKey []byte) {
	store, err := upload.NewDiskStore(conf.Dir, conf.BaseURL)
	if err != nil {
		logger.Fatal("could not create upload store:", err)
	}

	http.RegisterUploadEndpoints(srv, store, jwtKey)
}
