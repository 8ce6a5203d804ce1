package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemStore reads and writes JSON deck files under a base directory
type FilesystemStore struct {
	baseDir string
}

// NewFilesystemStore creates a new filesystem deck store
func NewFilesystemStore(baseDir string) (*FilesystemStore, error) {
	// Ensure base directory exists
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &FilesystemStore{
		baseDir: baseDir,
	}, nil
}

// deckPath resolves a deck ID to a file path, rejecting traversal
func (fs *FilesystemStore) deckPath(deckID string) (string, error) {
	path := filepath.Join(fs.baseDir, deckID+".json")

	// Security: prevent directory traversal
	if !filepath.HasPrefix(filepath.Clean(path), filepath.Clean(fs.baseDir)) {
		return "", fmt.Errorf("invalid deck ID: path traversal detected")
	}

	return path, nil
}

// Load reads the deck file for the given deck ID into an in-memory document
func (fs *FilesystemStore) Load(ctx context.Context, deckID string) (*MemoryDocument, error) {
	path, err := fs.deckPath(deckID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("deck not found: %s", deckID)
		}
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	var file DeckFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse deck file %s: %w", deckID, err)
	}
	if file.DeckID == "" {
		file.DeckID = deckID
	}

	return NewMemoryDocument(&file), nil
}

// Save writes the deck file back to disk
func (fs *FilesystemStore) Save(ctx context.Context, doc *MemoryDocument) error {
	file := doc.File()
	path, err := fs.deckPath(file.DeckID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deck file: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write deck file: %w", err)
	}

	return nil
}

// Exists checks if a deck file exists for the given deck ID
func (fs *FilesystemStore) Exists(ctx context.Context, deckID string) (bool, error) {
	path, err := fs.deckPath(deckID)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat deck file: %w", err)
	}

	return true, nil
}
