package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/elchem/pourbaix/pkg/adapters/fsstore"
	"github.com/elchem/pourbaix/pkg/adapters/mp"
	"github.com/elchem/pourbaix/pkg/adapters/redis"
	"github.com/elchem/pourbaix/pkg/domain"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch [elements...]",
	Short: "Download entry sets from the Materials Project",
	Long: `Fetches the Pourbaix entry set of each element from the Materials
Project API and stores it as a JSON file in the entries directory.
Elements that already have a stored entry set are skipped unless
--force is given.

Requires an API key, from the configuration file or MP_API_KEY.
When a Redis address is configured, fetched sets are cached there.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		elements := pickElements(args, cfg)
		if len(elements) == 0 {
			fmt.Println("Error: no elements requested: pass symbols as arguments or list them in the configuration file")
			os.Exit(1)
		}
		if cfg.MP.APIKey == "" {
			fmt.Println("Error: no Materials Project API key: set mp.api_key in the configuration file or the MP_API_KEY environment variable")
			os.Exit(1)
		}

		clientOpts := []mp.Option{mp.WithLogger(logger)}
		if cfg.MP.BaseURL != "" {
			clientOpts = append(clientOpts, mp.WithBaseURL(cfg.MP.BaseURL))
		}
		client := mp.New(cfg.MP.APIKey, clientOpts...)
		store := fsstore.New(cfg.EntriesDir, fsstore.WithLogger(logger))

		ctx := cmd.Context()
		var cache *redis.Cache
		if cfg.Redis.Addr != "" {
			cache = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err := cache.Ping(ctx); err != nil {
				logger.Warn("redis unavailable, fetching without cache", "addr", cfg.Redis.Addr, "error", err)
				cache = nil
			}
		}

		force, _ := cmd.Flags().GetBool("force")
		var failed int
		for _, symbol := range elements {
			if store.Has(symbol) && !force {
				logger.Info("entry set already stored, skipping", "element", symbol)
				continue
			}

			entries, err := fetchEntries(ctx, client, cache, symbol, logger)
			if err != nil {
				logger.Error("fetch failed", "element", symbol, "error", err)
				failed++
				continue
			}
			if err := store.SaveEntries(ctx, symbol, entries); err != nil {
				logger.Error("save failed", "element", symbol, "error", err)
				failed++
				continue
			}
			fmt.Printf("Fetched %d entries for %s\n", len(entries), symbol)
		}

		if failed > 0 {
			fmt.Printf("Error: %d of %d elements failed\n", failed, len(elements))
			os.Exit(1)
		}
	},
}

// fetchEntries consults the cache before hitting the API and fills it
// on a miss. Cache failures degrade to a direct fetch.
func fetchEntries(ctx context.Context, client *mp.Client, cache *redis.Cache, symbol string, logger *slog.Logger) ([]domain.Entry, error) {
	if cache != nil {
		if entries, ok, err := cache.Get(ctx, symbol); err == nil && ok {
			logger.Info("cache hit", "element", symbol, "entries", len(entries))
			return entries, nil
		}
	}

	entries, err := client.FetchEntries(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.Put(ctx, symbol, entries); err != nil {
			logger.Warn("cache write failed", "element", symbol, "error", err)
		}
	}
	return entries, nil
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolP("force", "f", false, "Refetch even if an entry set is already stored")
}
