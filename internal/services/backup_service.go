package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	filepathx "github.com/yargevad/filepathx"
	"go.uber.org/zap"

	"keyforest/internal/models"
	"keyforest/internal/utils"
)

const backupTimeLayout = "20060102T150405.000000000Z"

// Backup is a snapshot of a profile's shortcuts taken before an import.
type Backup struct {
	ProfileID string    `json:"profileId"`
	Path      string    `json:"path"`
	TakenAt   time.Time `json:"takenAt"`
}

type BackupService interface {
	Snapshot(ctx context.Context, p models.Profile, set models.ShortcutSet) (Backup, error)
	List(ctx context.Context, profileID string) ([]Backup, error)
}

type backupService struct {
	dir       string
	transfers TransferService
	log       *zap.Logger
	now       func() time.Time
}

func NewBackupService(dir string, transfers TransferService, log *zap.Logger) BackupService {
	if log == nil {
		log = zap.NewNop()
	}
	return &backupService{dir: dir, transfers: transfers, log: log, now: time.Now}
}

// Snapshot writes set as an export document under backups/<profile>/.
func (s *backupService) Snapshot(ctx context.Context, p models.Profile, set models.ShortcutSet) (Backup, error) {
	if set == nil {
		set = models.NewShortcutSet()
	}
	taken := s.now().UTC()
	path := filepath.Join(s.dir, safeSegment(p.ID), taken.Format(backupTimeLayout)+".json")

	doc := models.NewExportDocument(p, set, taken)
	if err := s.transfers.WriteDocument(path, doc); err != nil {
		return Backup{}, fmt.Errorf("writing backup for %q: %w", p.ID, err)
	}
	s.log.Debug("backup written", zap.String("profile", p.ID), zap.String("path", path))
	return Backup{ProfileID: p.ID, Path: path, TakenAt: taken}, nil
}

// List returns the profile's backups, newest first.
func (s *backupService) List(ctx context.Context, profileID string) ([]Backup, error) {
	root := filepath.Join(s.dir, safeSegment(profileID))
	if !utils.DirectoryExists(root) {
		return []Backup{}, nil
	}

	matches, err := filepathx.Glob(filepath.Join(root, "**", "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing backups: %w", err)
	}

	backups := make([]Backup, 0, len(matches))
	for _, match := range matches {
		stamp := strings.TrimSuffix(filepath.Base(match), ".json")
		taken, err := time.Parse(backupTimeLayout, stamp)
		if err != nil {
			info, statErr := os.Stat(match)
			if statErr != nil {
				continue
			}
			taken = info.ModTime().UTC()
		}
		backups = append(backups, Backup{ProfileID: profileID, Path: match, TakenAt: taken})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].TakenAt.After(backups[j].TakenAt)
	})
	return backups, nil
}

func safeSegment(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || id == "." || id == ".." {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, id)
}
