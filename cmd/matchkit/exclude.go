package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var excludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Manage exclusion lists kept in the cache store",
}

var excludeAddCmd = &cobra.Command{
	Use:   "add ID...",
	Short: "Exclude IDs from recommendations for an anchor (e.g. jobs a seeker already applied to)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		if a.kv == nil {
			return errors.New("exclude lists need a cache store (cache.type memory or redis)")
		}
		key, err := excludeKey(cmd)
		if err != nil {
			return err
		}
		return a.kv.SAdd(cmd.Context(), key, args...)
	},
}

var excludeListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the exclusion list for an anchor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		if a.kv == nil {
			return errors.New("exclude lists need a cache store (cache.type memory or redis)")
		}
		key, err := excludeKey(cmd)
		if err != nil {
			return err
		}
		ids, err := a.kv.SMembers(cmd.Context(), key)
		if err != nil {
			return err
		}
		return writeJSON(ids)
	},
}

func init() {
	rootCmd.AddCommand(excludeCmd)
	excludeCmd.AddCommand(excludeAddCmd, excludeListCmd)

	excludeCmd.PersistentFlags().StringP("anchor", "a", "", "seeker or job ID the list belongs to")
	excludeCmd.PersistentFlags().StringP("key-prefix", "p", "exclude", "key prefix, must match the exclude filter's key_prefix")
	_ = excludeCmd.MarkPersistentFlagRequired("anchor")
}

func excludeKey(cmd *cobra.Command) (string, error) {
	anchor, _ := cmd.Flags().GetString("anchor")
	prefix, _ := cmd.Flags().GetString("key-prefix")
	if anchor == "" || prefix == "" {
		return "", errors.New("anchor and key-prefix must not be empty")
	}
	return fmt.Sprintf("%s:%s", prefix, anchor), nil
}
