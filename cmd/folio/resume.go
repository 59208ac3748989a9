// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/resume"
)

const defaultResumeData = "./data/resume.yaml"

type resumeOptions struct {
	template  string
	dataPath  string
	outDir    string
	photoURL  string
	withStore bool
}

func newResumeCmd() *cobra.Command {
	var opts resumeOptions

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Render résumé PDFs from the data file",
		Long: `Render résumé PDFs from the YAML data file.

--template accepts quick, modern, executive or all. With --with-store the
projects, experience, skills and profile photo saved on the site replace the
file's own entries, exactly as the download endpoint does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResume(cmd.Context(), cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.template, "template", constants.DefaultResumeTemplate, "template to render, or all")
	flags.StringVar(&opts.dataPath, "data", "", "résumé YAML file (default RESUME_DATA_PATH or "+defaultResumeData+")")
	flags.StringVar(&opts.outDir, "out", ".", "directory the PDFs are written to")
	flags.StringVar(&opts.photoURL, "photo", "", "profile photo URL, overriding the data file")
	flags.BoolVar(&opts.withStore, "with-store", false, "merge content from the configured document store")
	return cmd
}

func runResume(ctx context.Context, cmd *cobra.Command, opts resumeOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	kinds := resume.Kinds
	if opts.template != "all" {
		kind, err := resume.ParseKind(opts.template)
		if err != nil {
			return err
		}
		kinds = []resume.Kind{kind}
	}

	// Plain renders do not need a reachable store, so a config error only
	// matters with --with-store.
	cfg, log, cfgErr := loadConfig()
	if cfgErr != nil && opts.withStore {
		return cfgErr
	}

	dataPath := opts.dataPath
	if dataPath == "" {
		dataPath = defaultResumeData
		if cfg != nil && cfg.ResumeDataPath != "" {
			dataPath = cfg.ResumeDataPath
		}
	}
	photoURL := opts.photoURL
	if photoURL == "" && cfg != nil {
		photoURL = cfg.ResumePhotoURL
	}

	data, err := resume.LoadFile(dataPath)
	if err != nil {
		return err
	}

	assemblerConfig := resume.AssemblerConfig{DataPath: dataPath, PhotoURL: photoURL}
	if opts.withStore {
		store, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer store.Close()

		svc := newServices(store, nil, log)
		assemblerConfig.Projects = svc.projects
		assemblerConfig.Experience = svc.experience
		assemblerConfig.Skills = svc.skills
		assemblerConfig.Profile = svc.site
	}

	data, err = resume.NewAssembler(assemblerConfig, log).Assemble(ctx, data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	renderer := resume.NewRenderer(nil, log)
	for _, kind := range kinds {
		var buffer bytes.Buffer
		if err := renderer.Render(ctx, data, kind, &buffer); err != nil {
			return err
		}

		path := filepath.Join(opts.outDir, resume.FileName(data.Personal.FullName, kind))
		if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		log.Info("resume_written", slog.String("template", string(kind)), slog.String("path", path))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
