package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freshkeep/backend/internal/model"
)

// StorageService is the storage-duration registry: an exact-name lookup
// table of expected shelf lives, seeded with common ingredients and grown
// on demand through the AI gateway. AI answers are persisted so each
// unknown ingredient costs at most one model call.
type StorageService struct {
	db *gorm.DB
	ai AIGateway
}

// NewStorageService creates a registry backed by the given database. The
// gateway may be nil, in which case unknown ingredients stay unknown.
func NewStorageService(db *gorm.DB, ai AIGateway) *StorageService {
	return &StorageService{db: db, ai: ai}
}

// Lookup finds the registry entry with exactly the given name. No fuzzy
// matching. Returns (nil, nil) on a clean miss.
func (s *StorageService) Lookup(name string) (*model.StorageInfo, error) {
	var info model.StorageInfo
	err := s.db.Where("name = ?", name).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// ResolveOrCreate returns the storage id and expected shelf life for a
// name, synthesizing and persisting a new entry through the AI gateway on
// a miss. On AI failure or an incomplete answer nothing is persisted and
// both results are nil; callers must tolerate items with unknown storage
// duration.
func (s *StorageService) ResolveOrCreate(ctx context.Context, name string) (*uuid.UUID, *int) {
	existing, err := s.Lookup(name)
	if err != nil {
		log.Printf("[StorageService] Lookup failed for %q: %v", name, err)
		return nil, nil
	}
	if existing != nil {
		return &existing.ID, &existing.StorageDays
	}

	if s.ai == nil {
		return nil, nil
	}

	info, err := s.ai.SynthesizeStorageInfo(ctx, name)
	if err != nil {
		log.Printf("[StorageService] Failed to synthesize storage info for %q: %v", name, err)
		return nil, nil
	}

	// Keep the lookup key authoritative even if the model echoed a
	// variant of the name.
	info.Name = name
	if err := s.db.Create(info).Error; err != nil {
		log.Printf("[StorageService] Failed to persist storage info for %q: %v", name, err)
		return nil, nil
	}

	return &info.ID, &info.StorageDays
}

// Seed bulk-inserts the curated ingredient table. Safe to run on every
// startup: rows whose name already exists are left untouched.
func (s *StorageService) Seed() error {
	entries := DefaultStorageSeed()
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&entries).Error; err != nil {
		return err
	}
	log.Printf("[StorageService] Seeded storage registry (%d curated entries)", len(entries))
	return nil
}
