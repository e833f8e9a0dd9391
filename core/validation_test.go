package core

import (
	"errors"
	"testing"
	"time"
)

func validDocument() *Document {
	return &Document{
		Id:          1,
		Title:       "Connection Pool Pattern",
		Content:     "# Connection Pool Pattern\n\nReuse connections instead of dialing.",
		Category:    "go",
		Keywords:    []string{"pool", "connections"},
		LastUpdated: time.Now(),
		File:        FileRef{Type: DocTypePattern, Path: "patterns/001-connection-pool-pattern.md"},
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Document)
		wantErr error
	}{
		{
			name:    "valid document",
			mutate:  func(*Document) {},
			wantErr: nil,
		},
		{
			name:    "unnumbered legacy file",
			mutate:  func(d *Document) { d.Id = 0 },
			wantErr: nil,
		},
		{
			name:    "no category or keywords",
			mutate:  func(d *Document) { d.Category = ""; d.Keywords = nil },
			wantErr: nil,
		},
		{
			name:    "empty title",
			mutate:  func(d *Document) { d.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "negative id",
			mutate:  func(d *Document) { d.Id = -3 },
			wantErr: ErrNegativeID,
		},
		{
			name:    "invalid doc type",
			mutate:  func(d *Document) { d.File.Type = DocType(42) },
			wantErr: ErrInvalidDocType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)

			err := ValidateDocument(doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() returned error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("ValidateDocument() error = %v, want wrapped ErrInvalidDocument", err)
			}
		})
	}
}

func TestValidateDocument_Nil(t *testing.T) {
	err := ValidateDocument(nil)
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("ValidateDocument(nil) error = %v, want ErrInvalidDocument", err)
	}
}

func TestValidateDocType(t *testing.T) {
	for _, dt := range DocTypes() {
		if err := ValidateDocType(dt); err != nil {
			t.Errorf("ValidateDocType(%v) returned error: %v", dt, err)
		}
	}

	for _, dt := range []DocType{0, -1, 6, 99} {
		if err := ValidateDocType(dt); !errors.Is(err, ErrInvalidDocType) {
			t.Errorf("ValidateDocType(%v) error = %v, want ErrInvalidDocType", dt, err)
		}
	}
}
