package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/elmi/cine/internal/formatter"
	"github.com/elmi/cine/internal/shared"
	"github.com/urfave/cli/v3"
)

// ExportFilms fetches the catalogue and writes it to a local file.
func (r *Runner) ExportFilms(ctx context.Context, cmd *cli.Command) error {
	ville := cmd.String("ville")
	format := strings.ToLower(cmd.String("format"))
	output := cmd.String("output")

	films, err := r.gateway.ListFilms(ctx, ville)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	var data []byte
	switch format {
	case "csv":
		if data, err = formatter.FilmsToCSV(films); err != nil {
			return fmt.Errorf("failed to build CSV: %w", err)
		}
	case "md":
		var b strings.Builder
		for i := range films {
			b.Write(formatter.FilmToMarkdown(&films[i]))
			b.WriteString("\n")
		}
		data = []byte(b.String())
	case "txt":
		data = formatter.FilmsToText(films)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	if err := formatter.WriteExport(output, data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	r.logger.Infof("exported %d films to %v", len(films), output)
	return r.writePlain("✓ %d film(s) exporté(s) vers %s\n", len(films), output)
}

// ExportCinemas fetches the cinema list and writes it to a local file.
func (r *Runner) ExportCinemas(ctx context.Context, cmd *cli.Command) error {
	format := strings.ToLower(cmd.String("format"))
	output := cmd.String("output")

	cinemas, err := r.gateway.ListCinemas(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	var data []byte
	switch format {
	case "csv":
		if data, err = formatter.CinemasToCSV(cinemas); err != nil {
			return fmt.Errorf("failed to build CSV: %w", err)
		}
	case "txt":
		data = formatter.CinemasToText(cinemas)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	if err := formatter.WriteExport(output, data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	r.logger.Infof("exported %d cinemas to %v", len(cinemas), output)
	return r.writePlain("✓ %d cinéma(s) exporté(s) vers %s\n", len(cinemas), output)
}
