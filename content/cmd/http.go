package content

import (
	"github.com/Dev-MihirParmar/Enlighten/content/bleve"
	"github.com/Dev-MihirParmar/Enlighten/content/bolt"
	"github.com/Dev-MihirParmar/Enlighten/content/http"
	"github.com/Dev-MihirParmar/Enlighten/content/services"
	"github.com/Dev-MihirParmar/Enlighten/log"
)

type Configuration struct {
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Bleve struct {
		Index string `toml:"index"`
	} `toml:"bleve"`
}

// Start wires the content repository, the search index and the service, and
// registers the content routes. It returns the service so the other concerns
// can check content existence.
func Start(srv http.Server, conf Configuration, logger log.Logger, jwtKey []byte) (*services.ContentService, func()) {
	boltDriver := &bolt.Driver{}
	if err := boltDriver.Open(conf.Bolt.Store); err != nil {
		logger.Fatal("could not open content store:", err)
	}
	repository := bolt.NewContentRepository(boltDriver)

	index := &bleve.ContentIndex{}
	if err := index.Open(conf.Bleve.Index); err != nil {
		logger.Fatal("could not open content index:", err)
	}

	contentService := services.NewContentService(repository, index)
	http.RegisterContentEndpoints(srv, contentService, jwtKey)

	return contentService, func() {
		index.Close()
		boltDriver.Close()
	}
}
