package trendstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/ai-stylist/internal/domain/trending"
)

// ValkeyStore keeps the trend tally in a Valkey sorted set.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "trends"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Increment(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.countsKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

func (s *ValkeyStore) Top(ctx context.Context, limit int) ([]trending.Item, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.countsKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	entries, err := resp.AsZScores()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return []trending.Item{}, nil
		}
		return nil, err
	}
	if len(entries) == 0 {
		return []trending.Item{}, nil
	}
	names := s.fetchDisplays(ctx, entries)
	out := make([]trending.Item, 0, len(entries))
	for i, entry := range entries {
		out = append(out, trending.Item{
			Name:  names[i],
			Count: int64(entry.Score),
		})
	}
	return out, nil
}

// fetchDisplays resolves display names with one MGET, falling back to the canonical member.
func (s *ValkeyStore) fetchDisplays(ctx context.Context, entries []valkey.ZScore) []string {
	names := make([]string, len(entries))
	keys := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Member
		keys[i] = s.displayKey(entry.Member)
	}
	values, err := s.client.Do(ctx, s.client.B().Mget().Key(keys...).Build()).ToArray()
	if err != nil {
		return names
	}
	for i, value := range values {
		if i >= len(names) {
			break
		}
		if display, err := value.ToString(); err == nil && display != "" {
			names[i] = display
		}
	}
	return names
}

func (s *ValkeyStore) countsKey() string {
	return fmt.Sprintf("%s:counts", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, canonical)
}

var _ trending.Store = (*ValkeyStore)(nil)
