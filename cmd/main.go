package main

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "api-homepage",
		Short: "Content API for the multilingual homepage",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the api-homepage service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE:  migrate,
	}

	userCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Create an active user with the given permissions",
		RunE:  createUser,
	}

	cfgFile string
	version string

	username    string
	password    string
	permissions []string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")

	userCmd.Flags().StringVarP(&username, "username", "u", "", "login name")
	userCmd.Flags().StringVarP(&password, "password", "p", "", "password")
	userCmd.Flags().StringSliceVar(&permissions, "permission", nil, "permission id, repeatable")
	userCmd.MarkFlagRequired("username")
	userCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(versionCmd, migrateCmd, userCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't start the service",
			slog.String("err", err.Error()),
		)
		os.Exit(-1)
	}
}
