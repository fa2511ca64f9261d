package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/amikos-tech/pure-clang/clang"
	"github.com/amikos-tech/pure-clang/support"
)

var version = "dev" // set at build time

// options holds the global settings shared by every command.
type options struct {
	libclangDir string
	hintDir     string
	llvmConfig  string
	apiLevel    string
	configFile  string
	debug       bool
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	opts := &options{}

	c := cli.NewApp()
	c.Name = "clang-probe"
	c.Usage = "inspect which libclang this machine loads and what it exports"
	c.Version = version
	c.Before = func(ctx *cli.Context) error {
		return setup(ctx, opts)
	}
	c.Action = func(ctx *cli.Context) error {
		return runVersion(ctx, opts)
	}

	c.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "libclang-dir",
			Usage:       "directory (or exact file) to load libclang from, bypassing the search",
			Destination: &opts.libclangDir,
			EnvVars:     []string{clang.EnvLibraryPath},
		},
		&cli.StringFlag{
			Name:        "hint-dir",
			Usage:       "directory searched before llvm-config and the platform directories",
			Destination: &opts.hintDir,
			EnvVars:     []string{"LIBCLANG_HINT_DIR"},
		},
		&cli.StringFlag{
			Name:        "llvm-config",
			Usage:       "llvm-config executable asked for the LLVM installation prefix",
			Destination: &opts.llvmConfig,
			EnvVars:     []string{clang.EnvLLVMConfigPath},
		},
		&cli.StringFlag{
			Name:        "api-level",
			Usage:       "clang API level to bind the symbol registry at (for example \"3.8\" or \"17\")",
			Destination: &opts.apiLevel,
			EnvVars:     []string{"LIBCLANG_API_LEVEL"},
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "YAML file supplying defaults for the global flags",
			Destination: &opts.configFile,
			EnvVars:     []string{"CLANG_PROBE_CONFIG"},
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "log the search and bind progress to stderr",
			Destination: &opts.debug,
			EnvVars:     []string{"CLANG_PROBE_DEBUG"},
		},
	}

	c.Commands = []*cli.Command{
		{
			Name:  "version",
			Usage: "load libclang and print its version banner",
			Action: func(ctx *cli.Context) error {
				return runVersion(ctx, opts)
			},
		},
		{
			Name:  "locate",
			Usage: "run the library search and print what would be loaded",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "log every searched directory, candidate and rejection to stderr",
				},
			},
			Action: func(ctx *cli.Context) error {
				return runLocate(ctx, opts)
			},
		},
		{
			Name:  "symbols",
			Usage: "load libclang and report the bind status of every known entry point",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "status",
					Usage: "only print entries with this status: available, missing or gated",
				},
			},
			Action: func(ctx *cli.Context) error {
				return runSymbols(ctx, opts)
			},
		},
		{
			Name:  "driver",
			Usage: "locate the clang driver executable and print what it reports",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "search-paths",
					Usage: "also run the driver and print its C header search directories",
				},
			},
			Action: func(ctx *cli.Context) error {
				return runDriver(ctx, opts)
			},
		},
	}

	return c
}

// setup merges config file defaults into flags the command line and
// environment left unset, then applies the logging level.
func setup(ctx *cli.Context, opts *options) error {
	if opts.configFile != "" {
		fc, err := loadFileConfig(opts.configFile)
		if err != nil {
			return err
		}
		if !ctx.IsSet("libclang-dir") && fc.LibclangDir != "" {
			opts.libclangDir = fc.LibclangDir
		}
		if !ctx.IsSet("hint-dir") && fc.HintDir != "" {
			opts.hintDir = fc.HintDir
		}
		if !ctx.IsSet("llvm-config") && fc.LLVMConfig != "" {
			opts.llvmConfig = fc.LLVMConfig
		}
		if !ctx.IsSet("api-level") && fc.APILevel != "" {
			opts.apiLevel = fc.APILevel
		}
		if !ctx.IsSet("debug") && fc.Debug {
			opts.debug = true
		}
	}

	if opts.debug {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

// loadOptions translates the global settings into load options.
func (o *options) loadOptions() ([]clang.LoadOption, error) {
	var lopts []clang.LoadOption
	if o.libclangDir != "" {
		lopts = append(lopts, clang.WithLibraryDir(o.libclangDir))
	}
	if o.hintDir != "" {
		lopts = append(lopts, clang.WithHintDir(o.hintDir))
	}
	if o.llvmConfig != "" {
		lopts = append(lopts, clang.WithLLVMConfig(o.llvmConfig))
	}
	if o.apiLevel != "" {
		level, err := clang.ParseAPILevel(o.apiLevel)
		if err != nil {
			return nil, err
		}
		lopts = append(lopts, clang.WithAPILevel(level))
	}
	if o.debug {
		lopts = append(lopts, clang.WithLogger(log.StandardLogger()))
	}
	return lopts, nil
}

func runVersion(ctx *cli.Context, opts *options) error {
	lopts, err := opts.loadOptions()
	if err != nil {
		return err
	}

	lib, err := clang.LoadLibrary(lopts...)
	if err != nil {
		return err
	}
	defer lib.Release()

	fmt.Fprintln(ctx.App.Writer, lib.ClangVersion())
	return nil
}

func runLocate(ctx *cli.Context, opts *options) error {
	lopts, err := opts.loadOptions()
	if err != nil {
		return err
	}
	if ctx.Bool("verbose") && !opts.debug {
		verbose := log.New()
		verbose.SetLevel(log.DebugLevel)
		lopts = append(lopts, clang.WithLogger(verbose))
	}

	path, fileVersion, err := clang.Locate(lopts...)
	if err != nil {
		return err
	}

	if v := fileVersion.String(); v != "" {
		fmt.Fprintf(ctx.App.Writer, "%s (file version %s)\n", path, v)
	} else {
		fmt.Fprintln(ctx.App.Writer, path)
	}
	return nil
}

func runSymbols(ctx *cli.Context, opts *options) error {
	filter := ctx.String("status")
	switch filter {
	case "", "available", "missing", "gated":
	default:
		return fmt.Errorf("unknown status %q: want available, missing or gated", filter)
	}

	lopts, err := opts.loadOptions()
	if err != nil {
		return err
	}

	lib, err := clang.LoadLibrary(lopts...)
	if err != nil {
		return err
	}
	defer lib.Release()

	for _, e := range lib.Entries() {
		if filter != "" && e.Status.String() != filter {
			continue
		}
		fmt.Fprintf(ctx.App.Writer, "%-9s %s\n", e.Status, e.Name)
	}
	return nil
}

func runDriver(ctx *cli.Context, opts *options) error {
	c, err := support.Find(opts.hintDir)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "path:    %s\n", c.Path)
	if c.Version != nil {
		fmt.Fprintf(w, "version: %s\n", c.Version)
	}
	if c.Target != "" {
		fmt.Fprintf(w, "target:  %s\n", c.Target)
	}

	if ctx.Bool("search-paths") {
		paths, err := c.SearchPaths("c")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "search paths:")
		for _, p := range paths {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	return nil
}
