package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"keyforest/internal/models"
	"keyforest/internal/utils"
)

var jsonFilter = []runtime.FileFilter{{DisplayName: "JSON Files (*.json)", Pattern: "*.json"}}

// TransferService moves shortcut sets in and out of export files.
type TransferService interface {
	// Export asks the user for a destination and writes doc there.
	Export(ctx context.Context, doc *models.ExportDocument) (string, error)
	// Import asks the user for a file and returns its validated content.
	Import(ctx context.Context) (*models.ExportDocument, error)
	WriteDocument(path string, doc *models.ExportDocument) error
	ReadDocument(path string) (*models.ExportDocument, error)
}

type transferService struct {
	dialogs Dialogs
	log     *zap.Logger
	now     func() time.Time
}

// NewTransferService builds the export/import service. dialogs may be nil for
// headless use, in which case only the path based methods work.
func NewTransferService(dialogs Dialogs, log *zap.Logger) TransferService {
	if log == nil {
		log = zap.NewNop()
	}
	return &transferService{dialogs: dialogs, log: log, now: time.Now}
}

func (s *transferService) Export(ctx context.Context, doc *models.ExportDocument) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidExport, err)
	}
	if s.dialogs == nil {
		return "", ErrNoDialogs
	}

	path, err := s.dialogs.SaveFile(runtime.SaveDialogOptions{
		Title:                "Export Shortcuts",
		DefaultDirectory:     downloadsDir(),
		DefaultFilename:      doc.FileName(),
		Filters:              jsonFilter,
		CanCreateDirectories: true,
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrExportCanceled
	}

	if err := s.WriteDocument(path, doc); err != nil {
		return "", err
	}
	s.log.Info("shortcuts exported", zap.String("profile", doc.AppID), zap.String("path", path))
	return path, nil
}

func (s *transferService) Import(ctx context.Context) (*models.ExportDocument, error) {
	if s.dialogs == nil {
		return nil, ErrNoDialogs
	}

	path, err := s.dialogs.OpenFile(runtime.OpenDialogOptions{
		Title:   "Import Shortcuts",
		Filters: jsonFilter,
	})
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrImportCanceled
	}

	doc, err := s.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	s.log.Info("shortcuts imported", zap.String("profile", doc.AppID), zap.String("path", path))
	return doc, nil
}

func (s *transferService) WriteDocument(path string, doc *models.ExportDocument) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExport, err)
	}
	out := *doc
	out.Shortcuts = doc.Shortcuts.Clone()
	out.Shortcuts.Normalize()
	if out.ExportDate == "" {
		out.ExportDate = s.now().UTC().Format(time.RFC3339)
	}
	if err := utils.WriteJSON(path, &out); err != nil {
		return fmt.Errorf("writing export %s: %w", path, err)
	}
	return nil
}

func (s *transferService) ReadDocument(path string) (*models.ExportDocument, error) {
	var doc models.ExportDocument
	found, err := utils.ReadJSON(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if !found {
		return nil, fmt.Errorf("reading %s: %w", path, os.ErrNotExist)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	doc.Shortcuts.Normalize()
	return &doc, nil
}

func downloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, "Downloads")
	if !utils.DirectoryExists(dir) {
		return home
	}
	return dir
}
