package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/francescofano/langgraph-telegram-bot/internal/client"
)

func init() {
	memoriesCmd := &cobra.Command{Use: "memories", Short: "Memory record operations"}

	var userFlag string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's memories, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			c := client.New(apiFlag)
			views, err := c.ListMemories(cmd.Context(), userFlag)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		},
	}
	listCmd.Flags().StringVarP(&userFlag, "user", "u", "", "User ID (required)")
	_ = listCmd.MarkFlagRequired("user")
	memoriesCmd.AddCommand(listCmd)

	rootCmd.AddCommand(memoriesCmd)
}
