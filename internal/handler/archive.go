package handler

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// handleExport handles "export [--db path]"
func (h *Handler) handleExport(c *cli.Context) error {
	path := c.String("db")

	archive, err := h.openArchive(path)
	if err != nil {
		h.logger.Error("Failed to open archive", zap.String("path", path), zap.Error(err))
		return err
	}
	defer archive.Close()

	count, err := h.archive.Export(archive)
	if err != nil {
		return fmt.Errorf("failed to export to %s: %w", path, err)
	}

	fmt.Fprintf(c.App.Writer, "Exported %d entries to %s\n", count, path)
	return nil
}

// handleImport handles "import [--db path]"
func (h *Handler) handleImport(c *cli.Context) error {
	path := c.String("db")

	archive, err := h.openArchive(path)
	if err != nil {
		h.logger.Error("Failed to open archive", zap.String("path", path), zap.Error(err))
		return err
	}
	defer archive.Close()

	added, skipped, err := h.archive.Import(archive)
	if err != nil {
		return fmt.Errorf("failed to import from %s: %w", path, err)
	}

	fmt.Fprintf(c.App.Writer, "Imported %d entries from %s (%d already known)\n", added, path, skipped)
	return nil
}
