package comment

import (
	"github.com/Dev-MihirParmar/Enlighten/comment/bolt"
	"github.com/Dev-MihirParmar/Enlighten/comment/http"
	"github.com/Dev-MihirParmar/Enlighten/comment/services"
	"github.com/Dev-MihirParmar/Enlighten/log"
)

type Configuration struct {
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
}

// Start wires the comment repository and service and registers the comment
// routes.
func Start(srv http.Server, conf Configuration, logger log.Logger, jwtKey []byte, contents services.ContentChecker) func() {
	boltDriver := &bolt.Driver{}
	if err := boltDriver.Open(conf.Bolt.Store); err != nil {
		logger.Fatal("could not open comment store:", err)
	}
	repository := bolt.NewCommentRepository(boltDriver)

	commentService := services.NewCommentService(repository, contents)
	http.RegisterCommentEndpoints(srv, commentService, jwtKey)

	return func() { boltDriver.Close() }
}
