// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suzumenobu/xcactivitylog"
	"github.com/suzumenobu/xcactivitylog/config"
	"github.com/suzumenobu/xcactivitylog/export"
	"github.com/suzumenobu/xcactivitylog/log"
	"github.com/suzumenobu/xcactivitylog/tui"
)

const version = "0.1.0"

var (
	inputPath  string
	outputPath string
	configPath string
	verbose    bool
)

func loadOptions() *xcactivitylog.Options {
	opts := &xcactivitylog.Options{}

	level := log.LevelWarn
	if verbose {
		level = log.LevelDebug
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "xcactivitylog: reading config %s: %v\n", configPath, err)
			os.Exit(1)
		}
		opts.MaxRecursionDepth = cfg.Decode.MaxRecursionDepth
		opts.RelaxedUTF8 = cfg.Decode.RelaxedUTF8
		opts.RejectUnknownTrailingFields = cfg.Decode.RejectUnknownTrailingFields
		if !verbose {
			level = cfg.LogLevel()
		}
	}

	opts.Logger = log.NewFilter(log.NewStdLogger(os.Stderr), log.FilterLevel(level))
	return opts
}

func runDecode(cmd *cobra.Command, args []string) error {
	ext := strings.ToLower(filepath.Ext(outputPath))
	if ext != ".json" && ext != ".csv" {
		return fmt.Errorf("xcactivitylog: unsupported output suffix %q, want .json or .csv", ext)
	}

	src, err := xcactivitylog.Open(inputPath)
	if err != nil {
		return fmt.Errorf("xcactivitylog: opening %s: %w", inputPath, err)
	}
	defer src.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("xcactivitylog: creating %s: %w", outputPath, err)
	}
	defer out.Close()

	opts := loadOptions()

	if ext == ".csv" {
		tz, err := xcactivitylog.NewTokenizer(src, opts)
		if err != nil {
			return err
		}
		return export.WriteCSV(out, tz)
	}

	dec, err := xcactivitylog.NewDecoder(src, opts)
	if err != nil {
		return err
	}
	return export.WriteJSON(out, dec)
}

func runWatch(cmd *cobra.Command, args []string) error {
	src, err := xcactivitylog.Open(inputPath)
	if err != nil {
		return fmt.Errorf("xcactivitylog: opening %s: %w", inputPath, err)
	}
	defer src.Close()

	dec, err := xcactivitylog.NewDecoder(src, loadOptions())
	if err != nil {
		return err
	}

	var objs []xcactivitylog.Object
	for {
		obj, err := dec.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("xcactivitylog: decoding %s: %w", inputPath, err)
		}
		objs = append(objs, obj)
	}
	return tui.Run(objs)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "xcactivitylog",
		Short: "Decode Xcode .xcactivitylog SLF0 build/test logs",
		Long:  "xcactivitylog decodes Apple's SLF0 serialized log format and exports it as JSON or CSV.",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode an .xcactivitylog payload and export it",
		RunE:  runDecode,
	}
	decodeCmd.Flags().StringVar(&inputPath, "input", "", "path to the gzip-compressed SLF0 payload (required)")
	decodeCmd.Flags().StringVar(&outputPath, "output", "", "output path; suffix .json or .csv selects the exporter (required)")
	decodeCmd.MarkFlagRequired("input")
	decodeCmd.MarkFlagRequired("output")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a dashboard of section durations",
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&inputPath, "input", "", "path to the gzip-compressed SLF0 payload (required)")
	watchCmd.MarkFlagRequired("input")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("xcactivitylog %s\n", version)
		},
	}

	rootCmd.AddCommand(decodeCmd, watchCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
