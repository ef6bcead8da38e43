package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/fixgen/internal/catalog"
	"github.com/bft-labs/fixgen/internal/cliconfig"
	"github.com/bft-labs/fixgen/internal/gen"
)

const helpDescription = `
Generate static HTTP/1.1 fixture files for parser test suites.

Two fixed catalogs are written as raw bytes, one file per fixture:
  - 32 requests into sample_requests/ (methods, header and body
    variety, odd-but-legal framing, raw binary payloads)
  - 16 responses into sample_responses/ (status codes across
    2xx-5xx, redirects, caching and security headers)

Files are overwritten on every run. The generator never parses or
validates what it writes; the catalogs ARE the contract.
`

var exampleUsage = strings.TrimSpace(`
  fixgen
  fixgen requests
  fixgen responses --responses-dir testdata/responses
  fixgen watch --manifest
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := gen.Logger()

	// Load config file first (default $HOME/.fixgen/config.toml), then
	// env, then flag overrides. The changed map protects flags the user
	// set explicitly.
	resolve := func(cmd *cobra.Command) error {
		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}

		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}

		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}

		return cfg.Validate()
	}

	newGenerator := func(cat catalog.Catalog, dir string) (*gen.Generator, error) {
		g, err := gen.New(cat, dir)
		if err != nil {
			return nil, err
		}
		g.Manifest = cfg.Manifest
		g.Quiet = cfg.Quiet
		return g, nil
	}

	runCatalog := func(cat catalog.Catalog, dir string) error {
		g, err := newGenerator(cat, dir)
		if err != nil {
			return err
		}
		return g.Run()
	}

	runAll := func() error {
		if err := runCatalog(catalog.Requests(), cfg.RequestsDir); err != nil {
			return err
		}
		return runCatalog(catalog.Responses(), cfg.ResponsesDir)
	}

	root := &cobra.Command{
		Use:     "fixgen",
		Short:   "Generate static HTTP/1.1 request and response fixture files",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolve(cmd); err != nil {
				return err
			}
			return runAll()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "requests",
		Short: "Write the 32 request fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolve(cmd); err != nil {
				return err
			}
			return runCatalog(catalog.Requests(), cfg.RequestsDir)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "responses",
		Short: "Write the 16 response fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolve(cmd); err != nil {
				return err
			}
			return runCatalog(catalog.Responses(), cfg.ResponsesDir)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Write both catalogs, then rewrite any fixture that drifts on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolve(cmd); err != nil {
				return err
			}
			if err := runAll(); err != nil {
				return err
			}

			reqGen, err := newGenerator(catalog.Requests(), cfg.RequestsDir)
			if err != nil {
				return err
			}
			respGen, err := newGenerator(catalog.Responses(), cfg.ResponsesDir)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			watchers := []*gen.Watcher{
				gen.NewWatcher(reqGen, cfg.WatchDebounce),
				gen.NewWatcher(respGen, cfg.WatchDebounce),
			}
			errCh := make(chan error, len(watchers))
			for _, w := range watchers {
				w := w
				go func() { errCh <- w.Run(ctx) }()
			}

			var firstErr error
			for range watchers {
				if err := <-errCh; err != nil && firstErr == nil {
					firstErr = err
					cancel()
				}
			}
			return firstErr
		},
	})

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.fixgen/config.toml)")
	pf.StringVar(&cfg.RequestsDir, "requests-dir", cfg.RequestsDir, "output directory for request fixtures")
	pf.StringVar(&cfg.ResponsesDir, "responses-dir", cfg.ResponsesDir, "output directory for response fixtures")
	pf.BoolVar(&cfg.Manifest, "manifest", cfg.Manifest, "write a manifest.json (name, size, crc32) per output directory")
	pf.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress per-file progress output")
	pf.DurationVar(&cfg.WatchDebounce, "watch-debounce", cfg.WatchDebounce, "delay before rewriting a drifted fixture in watch mode")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("fixgen")
		os.Exit(1)
	}
}
