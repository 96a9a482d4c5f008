package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wise-migrator/internal/assets"
	"wise-migrator/internal/config"
	"wise-migrator/internal/diagnostic"
	"wise-migrator/internal/project"
)

type convertOptions struct {
	configPath string
	outputDir  string
	noFetch    bool
	quiet      bool
}

func newConvertCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <archive>...",
		Short: "Convert one or more wiseProject-*.zip archives",
		Long: `Convert WISE 2 project archives.

Each archive is converted into a folder named after its project id, created
next to the archive unless --out or output_dir says otherwise. The folder
receives the WISE 4 manifest, one content file per step, the archive's
uploads under assets/ and a convert_log.txt describing the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&opts.outputDir, "out", "o", "", "folder to create project folders in")
	f.BoolVar(&opts.noFetch, "no-fetch", false, "do not download or measure remote images")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "do not echo the conversion log")

	return cmd
}

func loadConfig(opts convertOptions) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}

	return cfg, nil
}

func runConvert(cmd *cobra.Command, opts convertOptions, archives []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var echo io.Writer
	if !opts.quiet {
		echo = out
	}

	migratorOpts := project.Options{
		Config: cfg,
		Logger: logger,
		Echo:   echo,
	}

	if cfg.Fetch.IsEnabled() && !opts.noFetch {
		fetcher := assets.NewHTTPFetcher(cfg.Fetch.Timeout)
		defer fetcher.CloseIdleConnections()

		migratorOpts.Fetcher = fetcher
	}

	m := project.New(migratorOpts)

	var (
		failed    int
		converted int
		total     diagnostic.Diagnostics
	)

	for _, archive := range archives {
		res, err := m.Run(cmd.Context(), archive)
		if err != nil {
			failed++

			logger.Error("conversion failed", zap.String("archive", archive), zap.Error(err))
			fmt.Fprintln(out, errorMsg("%s: %v", archive, err))

			continue
		}

		converted++
		total.Merge(res.Diagnostics)
		renderSummary(out, res)
	}

	if len(archives) > 1 {
		renderTotals(out, converted, &total)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d archives could not be converted", failed, len(archives))
	}

	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [path]",
		Short: "Print the default configuration, or write it to path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()

			if len(args) == 1 {
				if err := config.WriteFile(cfg, args[0]); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), successMsg("wrote %s", args[0]))

				return nil
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
