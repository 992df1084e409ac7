package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Dev-MihirParmar/Enlighten/auth"
	"github.com/Dev-MihirParmar/Enlighten/auth/bolt"
	"github.com/Dev-MihirParmar/Enlighten/auth/services"
	"github.com/Dev-MihirParmar/Enlighten/jwt"
)

func init() {
	UserCommand.AddCommand(&UserAllCommand)
	UserCommand.AddCommand(&TokenCommand)
	RootCmd.AddCommand(&UserCommand)
}

func createUserService() (*services.UserService, func()) {
	driver := &bolt.Driver{}
	if err := driver.Open(cfg.Auth.Bolt.Store); err != nil {
		logger.Fatal("could not open auth store:", err)
	}

	encoder := jwt.NewEncodeDecoder(loadKey())
	return services.NewUserService(bolt.NewUserRepository(driver), encoder), func() { driver.Close() }
}

var UserCommand = cobra.Command{
	Use:   "user",
	Short: "Print a user",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("user wants 1 argument: the id of the user")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting user id: ", err)
		}

		service, f := createUserService()
		defer f()

		user, err := service.Get(id)
		if err != nil {
			logger.Fatal("error retrieving user:", err)
		}

		data, err := formatUser(user)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Print(data)
	},
}

var UserAllCommand = cobra.Command{
	Use:   "all",
	Short: "Print all the users",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		service, f := createUserService()
		defer f()

		users, err := service.All()
		if err != nil {
			logger.Fatal("error listing users:", err)
		}

		for _, user := range users {
			data, err := formatUser(user)
			if err != nil {
				logger.Fatal(err)
			}
			logger.Print(data)
		}
	},
}

var TokenCommand = cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for a user",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("user token wants 1 argument: the id of the user")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting user id: ", err)
		}

		service, f := createUserService()
		defer f()

		token, err := service.Token(id)
		if err != nil {
			logger.Fatal(err)
		}

		logger.Print(token)
	},
}

func formatUser(user auth.User) (string, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
