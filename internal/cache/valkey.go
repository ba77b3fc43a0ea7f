// Package cache marks reviews that have already been ingested into the
// embedding index, so replays and retries never index the same review
// twice. It is optional: a nil *IngestMarker disables deduplication.
package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

const (
	ingestedKey = "reviews:ingested"
	ingestedTTL = 7 * 24 * 60 * 60 // seconds
	retries     = 3
)

type Options struct {
	Address  string
	Password string
	UseTLS   bool
}

type IngestMarker struct {
	client valkey.Client
}

func NewIngestMarker(opts Options) (*IngestMarker, error) {
	clientOpts := valkey.ClientOption{
		InitAddress:      []string{opts.Address},
		Password:         opts.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if opts.UseTLS {
		clientOpts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping valkey: %w", err)
	}

	slog.Info("[IngestMarker] Connected to valkey", slog.String("address", opts.Address))
	return &IngestMarker{client: client}, nil
}

func (m *IngestMarker) Close() {
	if m != nil && m.client != nil {
		m.client.Close()
	}
}

// MarkIngested records a review id as indexed.
func (m *IngestMarker) MarkIngested(ctx context.Context, reviewID string) error {
	if m == nil {
		return nil
	}
	completed := []valkey.Completed{
		m.client.B().Sadd().Key(ingestedKey).Member(reviewID).Build(),
		m.client.B().Expire().Key(ingestedKey).Seconds(ingestedTTL).Build(),
	}

	for _, res := range m.doMultiWithRetry(ctx, completed) {
		if err := res.Error(); err != nil {
			return err
		}
	}
	return nil
}

// IsIngested reports whether a review id was already indexed. Cache
// failures read as "not ingested": a duplicate entry is preferable to a
// dropped one.
func (m *IngestMarker) IsIngested(ctx context.Context, reviewID string) bool {
	if m == nil {
		return false
	}
	res := m.doWithRetry(ctx, m.client.B().Sismember().Key(ingestedKey).Member(reviewID).Build())

	ok, err := res.AsBool()
	if err != nil {
		return false
	}
	return ok
}

func (m *IngestMarker) doWithRetry(ctx context.Context, completed valkey.Completed) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = m.client.Do(ctx, completed)
		if result.Error() == nil {
			break
		}
		slog.Warn("[IngestMarker] Command failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))
		time.Sleep(250 * time.Millisecond)
	}
	return result
}

func (m *IngestMarker) doMultiWithRetry(ctx context.Context, completed []valkey.Completed) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		results = m.client.DoMulti(ctx, completed...)
		hasErr := false
		for _, r := range results {
			if r.Error() != nil {
				hasErr = true
				slog.Warn("[IngestMarker] DoMulti failed",
					slog.Int("attempt", i+1),
					slog.String("error", r.Error().Error()))
				break
			}
		}
		if !hasErr {
			break
		}
		time.Sleep(250 * time.Millisecond)
	}
	return results
}
