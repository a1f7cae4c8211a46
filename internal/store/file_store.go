package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/palemoky/mimica-master/internal/game/deck"
)

// FileStore keeps categories in a single YAML file. A missing file is
// seeded with the default categories on first load.
type FileStore struct {
	path string

	mu sync.Mutex
}

type fileDoc struct {
	Categories []deck.Category `yaml:"categories"`
}

// NewFileStore opens (and if needed seeds) the store at path. An empty
// path places the file under ~/.mimica-master/.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir := filepath.Join(homeDir, ".mimica-master")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		path = filepath.Join(dir, "categories.yaml")
	}

	fs := &FileStore{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := fs.save(fileDoc{Categories: DefaultCategories()}); err != nil {
			return nil, err
		}
	}

	return fs, nil
}

func (fs *FileStore) load() (fileDoc, error) {
	var doc fileDoc
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return doc, fmt.Errorf("read categories: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse categories: %w", err)
	}
	return doc, nil
}

func (fs *FileStore) save(doc fileDoc) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	if err := os.WriteFile(fs.path, data, 0o644); err != nil {
		return fmt.Errorf("write categories: %w", err)
	}
	return nil
}

// ListCategories returns all stored categories.
func (fs *FileStore) ListCategories(_ context.Context) ([]deck.Category, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	doc, err := fs.load()
	if err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

// CreateCategory appends an empty category.
func (fs *FileStore) CreateCategory(_ context.Context, name string) (deck.Category, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	doc, err := fs.load()
	if err != nil {
		return deck.Category{}, err
	}

	cat := deck.Category{ID: uuid.NewString(), Name: name}
	doc.Categories = append(doc.Categories, cat)

	if err := fs.save(doc); err != nil {
		return deck.Category{}, err
	}
	return cat, nil
}

// DeleteCategory removes a category by id. Unknown ids are a no-op.
func (fs *FileStore) DeleteCategory(_ context.Context, id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	doc, err := fs.load()
	if err != nil {
		return err
	}

	kept := doc.Categories[:0]
	for _, c := range doc.Categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	doc.Categories = kept

	return fs.save(doc)
}

// AddCard appends a card to the given category.
func (fs *FileStore) AddCard(_ context.Context, categoryID, text string) (deck.CardItem, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	doc, err := fs.load()
	if err != nil {
		return deck.CardItem{}, err
	}

	card := deck.CardItem{ID: uuid.NewString(), Text: text}
	for i := range doc.Categories {
		if doc.Categories[i].ID == categoryID {
			doc.Categories[i].Cards = append(doc.Categories[i].Cards, card)
			if err := fs.save(doc); err != nil {
				return deck.CardItem{}, err
			}
			return card, nil
		}
	}

	return deck.CardItem{}, fmt.Errorf("category %s not found", categoryID)
}

// DeleteCard removes a card from the given category.
func (fs *FileStore) DeleteCard(_ context.Context, categoryID, cardID string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	doc, err := fs.load()
	if err != nil {
		return err
	}

	for i := range doc.Categories {
		if doc.Categories[i].ID != categoryID {
			continue
		}
		kept := doc.Categories[i].Cards[:0]
		for _, c := range doc.Categories[i].Cards {
			if c.ID != cardID {
				kept = append(kept, c)
			}
		}
		doc.Categories[i].Cards = kept
		return fs.save(doc)
	}

	return fmt.Errorf("category %s not found", categoryID)
}
