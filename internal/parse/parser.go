package parse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dirhamflow/dirhamflow/internal/common"
	"github.com/dirhamflow/dirhamflow/internal/model"
	"github.com/dirhamflow/dirhamflow/internal/service"
)

// Parser orchestrates extraction and validation for one session. It holds
// the session's seen-message set; create a new Parser to start a fresh
// session.
type Parser struct {
	extractor service.Extractor
	seenSet   map[string]struct{}
	seen      []string
	mu        sync.Mutex
}

// NewParser creates a session parser using the given extraction strategy.
func NewParser(extractor service.Extractor) *Parser {
	return &Parser{
		extractor: extractor,
		seenSet:   make(map[string]struct{}),
	}
}

// ParseMessage converts one raw SMS into a validated transaction record.
//
// It fails with common.ErrEmptyInput when the trimmed input is empty, with
// common.ErrDuplicateMessage when the exact trimmed text was already
// parsed in this session, and with common.ErrIncompleteExtraction when any
// of date, amount, currency or type could not be extracted. The message is
// recorded as seen only on success.
func (p *Parser) ParseMessage(ctx context.Context, raw string) (model.TransactionRecord, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.TransactionRecord{}, common.ErrEmptyInput
	}

	// The duplicate check and the append must be one critical section so
	// concurrent callers cannot both slip past the check.
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.seenSet[trimmed]; ok {
		return model.TransactionRecord{}, common.ErrDuplicateMessage
	}

	record, err := p.extractor.Extract(ctx, trimmed)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("extraction failed: %w", err)
	}

	if record.Category == "" {
		record.Category = model.CategoryOther
	}

	if !record.Complete() {
		slog.Debug("extraction incomplete",
			"strategy", p.extractor.Name(),
			"date", record.Date,
			"amount", record.Amount,
			"type", record.Type)
		return model.TransactionRecord{}, common.ErrIncompleteExtraction
	}

	p.seenSet[trimmed] = struct{}{}
	p.seen = append(p.seen, trimmed)

	return record, nil
}

// SeenCount reports how many distinct messages this session has parsed.
func (p *Parser) SeenCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}
