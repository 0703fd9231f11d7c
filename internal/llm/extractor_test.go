package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/dirhamflow/dirhamflow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns queued responses and errors in order.
type stubClient struct {
	responses []string
	errs      []error
	calls     int
}

func (s *stubClient) ExtractTransaction(_ context.Context, _ string) (string, error) {
	i := s.calls
	s.calls++

	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var resp string
	if i < len(s.responses) {
		resp = s.responses[i]
	}
	return resp, err
}

func TestExtractor_Extract(t *testing.T) {
	client := &stubClient{responses: []string{validResponse}}
	extractor := NewExtractor(client, 0)

	record, err := extractor.Extract(context.Background(), "raw sms")
	require.NoError(t, err)

	assert.Equal(t, model.TypeDebit, record.Type)
	assert.Equal(t, "raw sms", record.Raw)
	assert.Equal(t, 1, client.calls)
}

func TestExtractor_RetriesTransientFailures(t *testing.T) {
	client := &stubClient{
		errs:      []error{errors.New("temporarily unavailable"), nil},
		responses: []string{"", validResponse},
	}
	extractor := NewExtractor(client, 0)
	extractor.retry.InitialDelay = 1 // keep the test fast

	record, err := extractor.Extract(context.Background(), "raw sms")
	require.NoError(t, err)

	assert.InDelta(t, 15.75, record.Amount, 0.001)
	assert.Equal(t, 2, client.calls)
}

func TestExtractor_InvalidResponseIsNotRetried(t *testing.T) {
	client := &stubClient{responses: []string{"not json at all"}}
	extractor := NewExtractor(client, 0)

	_, err := extractor.Extract(context.Background(), "raw sms")
	assert.Error(t, err)
	// Response validation happens after the retry loop; a well-formed
	// transport reply with bad content is a single call.
	assert.Equal(t, 1, client.calls)
}
