package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"CardCheckout/internal/diagnostics"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"
)

var _ diagnostics.Sink = (*DiagnosticSink)(nil)

const writeTimeout = 3 * time.Second

// DiagnosticSink indexes diagnostic entries so gateway traffic can be searched.
type DiagnosticSink struct {
	client  *opensearch.Client
	index   string
	timeout time.Duration
}

func NewDiagnosticSink(ctx context.Context, urls []string, index string) (*DiagnosticSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &DiagnosticSink{client: client, index: index, timeout: writeTimeout}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *DiagnosticSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"event":          map[string]any{"type": "keyword"},
				"correlation_id": map[string]any{"type": "keyword"},
				"time":           map[string]any{"type": "date"},
				"data":           map[string]any{"type": "object", "enabled": false},
			},
		},
	}
	buf, _ := json.Marshal(body)

	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

// Write is bounded by its own timeout and ignores cancellation of ctx.
func (s *DiagnosticSink) Write(ctx context.Context, e diagnostics.Entry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(uuid.NewString()),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}
