package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrDefaultProfile   = errors.New("the default profile cannot be deleted")
	ErrNoProfilesFile   = errors.New("no profiles file found")
	ErrInvalidShortcuts = errors.New("invalid shortcut data")
	ErrInvalidExport    = errors.New("invalid export data")
	ErrInvalidImport    = errors.New("invalid import file format")
	ErrCanceled         = errors.New("canceled")
	ErrNoDialogs        = errors.New("native dialogs are not available")

	ErrExportCanceled = fmt.Errorf("export %w", ErrCanceled)
	ErrImportCanceled = fmt.Errorf("import %w", ErrCanceled)
)
