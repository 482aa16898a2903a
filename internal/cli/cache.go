package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/necklace/internal/config"
	"github.com/matzehuels/necklace/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached counts and drawings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newCache(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			clearer, ok := store.(cache.Clearer)
			if _, null := store.(*cache.NullCache); null || !ok {
				printInfo(c.out, "Cache is disabled")
				return nil
			}
			count, err := clearer.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess(c.out, "Cleared %d cached entries", count)
			switch s := store.(type) {
			case *cache.FileCache:
				printDetail(c.out, "Directory: %s", s.Dir())
			case *cache.RedisCache:
				printDetail(c.out, "Redis: %s", c.Config.Redis.Addr)
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.noCache || c.Config.Cache.Backend == config.BackendNone {
				printWarning(cmd.ErrOrStderr(), "Cache is disabled")
			}
			if c.Config.Cache.Backend == config.BackendRedis {
				fmt.Fprintln(c.out, "redis://"+c.Config.Redis.Addr)
				return nil
			}
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(c.out, dir)
			return nil
		},
	}
}
