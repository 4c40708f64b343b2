package jsondoc

import (
	"context"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/receipt"
)

// ReceiptStore persists the flat receipt list as receipts.json.
type ReceiptStore struct {
	doc *Document[[]receipt.Receipt]
}

func NewReceiptStore(path string) (*ReceiptStore, error) {
	doc, err := NewDocument[[]receipt.Receipt](path)
	if err != nil {
		return nil, err
	}
	return &ReceiptStore{doc: doc}, nil
}

func (s *ReceiptStore) Load(ctx context.Context) ([]receipt.Receipt, error) {
	return s.doc.Load(ctx)
}

func (s *ReceiptStore) Save(ctx context.Context, receipts []receipt.Receipt) error {
	return s.doc.Save(ctx, receipts)
}
