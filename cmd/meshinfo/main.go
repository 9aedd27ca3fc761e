// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshinfo builds meshes from TOML and YAML mesh descriptions
// and reports their attributes, bounds, triangles and draw calls.
//
//	meshinfo [flags] file...
//	meshinfo watch file
//	meshinfo convert in.toml out.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/logx"
	"cogentcore.org/meshbuf/meshfile"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// flags are the global command line flags.
type flags struct {
	config      string
	veryVerbose bool
	verbose     bool
	quiet       bool
}

func newRootCmd(w io.Writer) *cobra.Command {
	fl := &flags{}
	var cfg *Config
	root := &cobra.Command{
		Use:          "meshinfo [file...]",
		Short:        "Report on meshes built from mesh description files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(fl.veryVerbose, fl.verbose, fl.quiet)
			logx.SetDefaultLogger()
			var err error
			cfg, err = openConfig(fl.config)
			return err
		},
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, fn := range args {
				errs = append(errs, reportFile(w, fn, cfg))
			}
			return errors.Join(errs...)
		},
	}
	root.SetOut(w)
	pf := root.PersistentFlags()
	pf.StringVarP(&fl.config, "config", "c", "", "config file (default "+defaultConfigFile+")")
	pf.BoolVar(&fl.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&fl.quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(&cobra.Command{
		Use:   "watch file",
		Short: "Report on a mesh each time its description file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, w, args[0], cfg)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "convert in out",
		Short: "Convert a mesh description between TOML and YAML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(args[0], args[1])
		},
	})
	return root
}

// reportFile reports on the mesh described by the given file.
func reportFile(w io.Writer, filename string, cfg *Config) error {
	d, err := meshfile.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	return errors.Log(report(w, d, cfg))
}

// watch reports on the given file and again each time it changes.
func watch(ctx context.Context, w io.Writer, filename string, cfg *Config) error {
	reportFile(w, filename, cfg)
	return meshfile.Watch(ctx, filename, func(d *meshfile.Description, err error) {
		if errors.Log(err) != nil {
			return
		}
		fmt.Fprintln(w)
		errors.Log(report(w, d, cfg))
	})
}

// convert writes the description in the given file to another file,
// in the format given by its extension.
func convert(in, out string) error {
	d, err := meshfile.Open(in)
	if err != nil {
		return err
	}
	format := meshfile.FormatFromFilename(out)
	if format == meshfile.UnknownFormat {
		return fmt.Errorf("convert %s: %w", out, meshfile.ErrUnknownFormat)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := d.Write(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
