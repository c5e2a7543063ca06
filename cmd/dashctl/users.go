package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/francescofano/langgraph-telegram-bot/internal/client"
)

func init() {
	usersCmd := &cobra.Command{Use: "users", Short: "User operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users present in the memory store",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(apiFlag)
			users, err := c.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(users)
		},
	}
	usersCmd.AddCommand(listCmd)

	rootCmd.AddCommand(usersCmd)
}
