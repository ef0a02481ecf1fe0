package clients

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/valkey-io/valkey-go"
)

const (
	VALKEY_POLARITY_PREFIX = "polarity:"
	VALKEY_RETRIES         = 3
	VALKEY_RETRY_DELAY     = 250 * time.Millisecond
)

type ValkeyOptions struct {
	Address  string
	Password string
	TLS      bool
	TTL      time.Duration
}

// ValkeyClient memoizes polarity scores keyed by a hash of the scored text.
type ValkeyClient struct {
	Client valkey.Client
	opts   ValkeyOptions
	mu     sync.Mutex
}

func NewValkeyClient(ctx context.Context, opts ValkeyOptions) (*ValkeyClient, error) {
	client, err := connectValkey(ctx, opts)
	if err != nil {
		return nil, err
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", opts.Address))
	return &ValkeyClient{Client: client, opts: opts}, nil
}

func connectValkey(ctx context.Context, opts ValkeyOptions) (valkey.Client, error) {
	clientOpts := valkey.ClientOption{
		InitAddress:      []string{opts.Address},
		Password:         opts.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if opts.TLS {
		clientOpts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}
	return client, nil
}

func (vc *ValkeyClient) recreateClient(ctx context.Context) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	client, err := connectValkey(ctx, vc.opts)
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed",
			slog.String("error", err.Error()))
		return
	}
	vc.Client.Close()
	vc.Client = client
	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
}

func (vc *ValkeyClient) client() valkey.Client {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.Client
}

func (vc *ValkeyClient) Close() {
	vc.client().Close()
}

// GetPolarities looks up every text with a single MGET and returns the hits.
// A failed lookup is logged and reported as all misses.
func (vc *ValkeyClient) GetPolarities(ctx context.Context, texts []string) map[string]float64 {
	if len(texts) == 0 {
		return nil
	}
	keys := make([]string, len(texts))
	for i, text := range texts {
		keys[i] = polarityKey(text)
	}

	res, err := vc.DoWithRetry(ctx, func(c valkey.Client) valkey.Completed {
		return c.B().Mget().Key(keys...).Build()
	}, VALKEY_RETRIES)
	if err != nil {
		slog.Warn("[ValkeyClient] Polarity lookup failed",
			slog.Int("keys", len(keys)),
			slog.String("error", err.Error()))
		return nil
	}

	values, err := res.ToArray()
	if err != nil {
		slog.Warn("[ValkeyClient] Unexpected MGET reply",
			slog.String("error", err.Error()))
		return nil
	}

	hits := make(map[string]float64, len(values))
	for i := range values {
		if i >= len(texts) || values[i].IsNil() {
			continue
		}
		score, err := values[i].AsFloat64()
		if err != nil {
			slog.Warn("[ValkeyClient] Ignoring malformed cached polarity",
				slog.String("key", keys[i]),
				slog.String("error", err.Error()))
			continue
		}
		hits[texts[i]] = score
	}
	return hits
}

// SetPolarities stores every score in one round trip, each SET carrying its
// own expiry when a TTL is configured.
func (vc *ValkeyClient) SetPolarities(ctx context.Context, polarities map[string]float64) error {
	if len(polarities) == 0 {
		return nil
	}
	ttl := int64(vc.opts.TTL / time.Second)

	build := func(c valkey.Client) []valkey.Completed {
		completed := make([]valkey.Completed, 0, len(polarities))
		for text, polarity := range polarities {
			key := polarityKey(text)
			value := strconv.FormatFloat(polarity, 'g', -1, 64)
			if ttl > 0 {
				completed = append(completed, c.B().Set().Key(key).Value(value).ExSeconds(ttl).Build())
			} else {
				completed = append(completed, c.B().Set().Key(key).Value(value).Build())
			}
		}
		return completed
	}

	_, err := vc.DoMultiWithRetry(ctx, build, VALKEY_RETRIES)
	return err
}

func polarityKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return VALKEY_POLARITY_PREFIX + hex.EncodeToString(sum[:])
}

// DoMultiWithRetry rebuilds the commands on each attempt since valkey-go
// recycles a command once it has been sent. The returned error is the first
// failed reply of the last attempt, or ctx's error if it ended the retries.
func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, build func(valkey.Client) []valkey.Completed, retries int) ([]valkey.ValkeyResult, error) {
	var results []valkey.ValkeyResult
	attempt := 0

	err := withRetry(ctx, retries, VALKEY_RETRY_DELAY, func(ctx context.Context) error {
		attempt++
		c := vc.client()
		results = c.DoMulti(ctx, build(c)...)
		for _, r := range results {
			if err := r.Error(); err != nil {
				slog.Warn("[ValkeyClient] Do Multi failed",
					slog.Int("attempt", attempt),
					slog.String("error", err.Error()))
				if isConnectionError(err) {
					vc.recreateClient(ctx)
				}
				return err
			}
		}
		return nil
	})
	return results, err
}

// DoWithRetry treats a nil reply as success.
func (vc *ValkeyClient) DoWithRetry(ctx context.Context, build func(valkey.Client) valkey.Completed, retries int) (valkey.ValkeyResult, error) {
	var result valkey.ValkeyResult
	attempt := 0

	err := withRetry(ctx, retries, VALKEY_RETRY_DELAY, func(ctx context.Context) error {
		attempt++
		c := vc.client()
		result = c.Do(ctx, build(c))
		err := result.Error()
		if err == nil || valkey.IsValkeyNil(err) {
			return nil
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		if isConnectionError(err) {
			vc.recreateClient(ctx)
		}
		return err
	})
	return result, err
}

// withRetry makes up to retries attempts, pausing delay between failures.
// The pause ends as soon as ctx is done.
func withRetry(ctx context.Context, retries int, delay time.Duration, attempt func(ctx context.Context) error) error {
	if retries < 1 {
		retries = 1
	}
	backoff := retry.WithMaxRetries(uint64(retries-1), retry.NewConstant(delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := attempt(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
