package auth

import (
	"encoding/json"
	"os"

	enlighten "github.com/Dev-MihirParmar/Enlighten"
	"github.com/Dev-MihirParmar/Enlighten/auth/bolt"
	"github.com/Dev-MihirParmar/Enlighten/auth/http"
	"github.com/Dev-MihirParmar/Enlighten/auth/services"
	"github.com/Dev-MihirParmar/Enlighten/jwt"
	"github.com/Dev-MihirParmar/Enlighten/log"
)

type Configuration struct {
	KeyPath string `toml:"key"`
	Bolt    struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
}

// Start wires the user repository and service and registers the local
// authentication routes. It returns the service so the other concerns can
// resolve and authenticate users.
func Start(srv http.Server, conf Configuration, logger log.Logger) (*services.UserService, func()) {
	// Load key from file
	keyData, err := os.ReadFile(conf.KeyPath)
	if err != nil {
		logger.Fatal("could not open key file:", err)
	}

	var key enlighten.SigningKey
	err = json.Unmarshal(keyData, &key)
	if err != nil {
		logger.Fatal("could not read key file:", err)
	}
	tokenEncoder := jwt.NewEncodeDecoder([]byte(key.Key))

	// Create repository
	boltDriver := &bolt.Driver{}
	if err := boltDriver.Open(conf.Bolt.Store); err != nil {
		logger.Fatal("could not open auth store:", err)
	}
	userRepository := bolt.NewUserRepository(boltDriver)

	// Start user endpoints
	userService := services.NewUserService(userRepository, tokenEncoder)
	http.RegisterUserEndpoints(srv, userService, []byte(key.Key))

	return userService, func() { boltDriver.Close() }
}
