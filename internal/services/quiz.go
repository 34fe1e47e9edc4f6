package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"quiz-ingest-backend/internal/models"
	"quiz-ingest-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidFormat = errors.New("invalid data format: expected an array")

type QuizService struct {
	writer *storage.CSVWriter
	db     *gorm.DB
}

// NewQuizService returns a service appending to writer. db may be nil, in
// which case saved items are not archived.
func NewQuizService(writer *storage.CSVWriter, db *gorm.DB) *QuizService {
	return &QuizService{writer: writer, db: db}
}

type SaveResult struct {
	BatchID string
	File    string
	Rows    int
}

// DecodeBatch accepts only a JSON array and returns its raw elements.
func DecodeBatch(body []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, ErrInvalidFormat
	}
	// "null" decodes into a nil slice without error.
	if items == nil {
		return nil, ErrInvalidFormat
	}
	return items, nil
}

func (s *QuizService) FileName() string {
	return s.writer.Name()
}

func (s *QuizService) Save(ctx context.Context, raw []json.RawMessage) (*SaveResult, error) {
	batchID := uuid.NewString()

	items := make([]models.QuizItem, 0, len(raw))
	records := make([][]string, 0, len(raw))
	for _, r := range raw {
		item := RenderItem(r)
		item.BatchID = batchID
		items = append(items, item)
		records = append(records, item.Cells())
	}

	n, err := s.writer.Append(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("append quiz rows: %w", err)
	}

	if err := s.archive(ctx, items); err != nil {
		log.Printf("quiz: archive batch %s failed: %v", batchID, err)
	}

	return &SaveResult{
		BatchID: batchID,
		File:    s.writer.Name(),
		Rows:    n,
	}, nil
}

func (s *QuizService) archive(ctx context.Context, items []models.QuizItem) error {
	if s.db == nil || len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&items).Error
}
