package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	authcmd "github.com/Dev-MihirParmar/Enlighten/auth/cmd"
	commentcmd "github.com/Dev-MihirParmar/Enlighten/comment/cmd"
	contentcmd "github.com/Dev-MihirParmar/Enlighten/content/cmd"
	"github.com/Dev-MihirParmar/Enlighten/log"
	oauthcmd "github.com/Dev-MihirParmar/Enlighten/oauth/cmd"
	uploadcmd "github.com/Dev-MihirParmar/Enlighten/upload/cmd"
)

var (
	// flags
	env string

	// logger
	logger log.Logger

	// configuration
	cfg Configuration
)

type Configuration struct {
	Web struct {
		Addr string `toml:"addr"`
	} `toml:"web"`
	Auth    authcmd.Configuration    `toml:"auth"`
	OAuth   oauthcmd.Configuration   `toml:"oauth"`
	Content contentcmd.Configuration `toml:"content"`
	Comment commentcmd.Configuration `toml:"comment"`
	Upload  uploadcmd.Configuration  `toml:"upload"`
}

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "")
}

var RootCmd = cobra.Command{
	Use:   "enlighten",
	Short: "",
	Long:  "",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := os.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			os.Exit(1)
		}

		err = toml.Unmarshal(cfgData, &cfg)
		if err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			os.Exit(1)
		}

		// Create logger
		logger = log.New(env)
	},
}
