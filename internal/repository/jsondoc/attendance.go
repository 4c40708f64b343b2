package jsondoc

import (
	"context"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/attendance"
)

// AttendanceStore persists the attendance document
// (workerId -> stored record) as attendance.json.
type AttendanceStore struct {
	doc *Document[attendance.Document]
}

func NewAttendanceStore(path string) (*AttendanceStore, error) {
	doc, err := NewDocument[attendance.Document](path)
	if err != nil {
		return nil, err
	}
	return &AttendanceStore{doc: doc}, nil
}

func (s *AttendanceStore) Load(ctx context.Context) (attendance.Document, error) {
	doc, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = attendance.Document{}
	}
	return doc, nil
}

func (s *AttendanceStore) Save(ctx context.Context, doc attendance.Document) error {
	return s.doc.Save(ctx, doc)
}
