// Package inquiry records consultation requests submitted from the contact section.
package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/landing/internal/storage"
)

// Request is the form payload for a consultation.
type Request struct {
	Name    string `form:"name" json:"name" validate:"required,max=100"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Message string `form:"message" json:"message" validate:"max=2000"`
}

// Normalize trims surrounding whitespace from every field.
func (r *Request) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
}

// Record is a stored consultation request.
type Record struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Request
}

const dir = "inquiries"

// timestampLayout sorts lexically in time order.
const timestampLayout = "20060102T150405.000000000Z"

// Store persists consultation requests as one JSON file each.
type Store struct {
	files storage.Store
	now   func() time.Time
}

// NewStore creates a Store backed by files.
func NewStore(files storage.Store) *Store {
	return &Store{files: files, now: time.Now}
}

// Save writes req and returns the stored record.
func (s *Store) Save(ctx context.Context, req Request) (*Record, error) {
	rec := &Record{
		ID:         uuid.NewString(),
		ReceivedAt: s.now().UTC(),
		Request:    req,
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode inquiry: %w", err)
	}
	name := fmt.Sprintf("%s-%s.json", rec.ReceivedAt.Format(timestampLayout), rec.ID)
	if _, err := s.files.Save(ctx, path.Join(dir, name), bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("save inquiry: %w", err)
	}
	return rec, nil
}

// List returns every stored request, oldest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	names, err := s.files.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(names))
	for _, name := range names {
		if path.Ext(name) != ".json" {
			continue
		}
		rec, err := s.read(ctx, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (s *Store) read(ctx context.Context, p string) (*Record, error) {
	f, err := s.files.Open(ctx, p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	return &rec, nil
}
