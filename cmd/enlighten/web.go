package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	enlighten "github.com/Dev-MihirParmar/Enlighten"
	authcmd "github.com/Dev-MihirParmar/Enlighten/auth/cmd"
	commentcmd "github.com/Dev-MihirParmar/Enlighten/comment/cmd"
	contentcmd "github.com/Dev-MihirParmar/Enlighten/content/cmd"
	oauthcmd "github.com/Dev-MihirParmar/Enlighten/oauth/cmd"
	uploadcmd "github.com/Dev-MihirParmar/Enlighten/upload/cmd"
	"github.com/Dev-MihirParmar/Enlighten/web"
)

func init() {
	RootCmd.AddCommand(&WebCommand)
}

var WebCommand = cobra.Command{
	Use:   "web",
	Short: "Start the web server",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		srv := web.NewServer(env, logger)

		jwtKey := loadKey()

		userService, closeAuth := authcmd.Start(srv, cfg.Auth, logger)
		defer closeAuth()

		oauthcmd.Start(srv, cfg.OAuth, logger, userService)

		contentService, closeContent := contentcmd.Start(srv, cfg.Content, logger, jwtKey)
		defer closeContent()

		closeComment := commentcmd.Start(srv, cfg.Comment, logger, jwtKey, contentService)
		defer closeComment()

		uploadcmd.Start(srv, cfg.Upload, logger, jwtKey)

		logger.Fatal(srv.ListenAndServe(cfg.Web.Addr))
	},
}

func loadKey() []byte {
	keyData, err := os.ReadFile(cfg.Auth.KeyPath)
	if err != nil {
		logger.Fatal("could not open key file:", err)
	}

	var key enlighten.SigningKey
	if err := json.Unmarshal(keyData, &key); err != nil {
		logger.Fatal("could not read key file:", err)
	}

	return []byte(key.Key)
}
