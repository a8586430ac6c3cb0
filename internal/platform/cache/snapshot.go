package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotKey is bumped whenever the encoded layout changes so old entries are ignored.
const SnapshotKey = "bizhub:pricing:snapshot:v1"

// SnapshotGenerationKey counts invalidations. It never expires.
const SnapshotGenerationKey = "bizhub:pricing:snapshot:gen"

// setIfGeneration writes KEYS[1] only while KEYS[2] still holds ARGV[1].
// ARGV[2] is the encoded snapshot, ARGV[3] the ttl in milliseconds (0 for none).
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ttl)
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// RedisSnapshotCache keeps the pricing snapshot in Redis as msgpack.
type RedisSnapshotCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ portsrepo.SnapshotCache = (*RedisSnapshotCache)(nil)

// NewSnapshotCache returns a cache whose entries expire after ttl. A zero ttl keeps
// entries until they are invalidated.
func NewSnapshotCache(client redis.Cmdable, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, ttl: ttl}
}

type cachedCurrency struct {
	ID        string `msgpack:"id"`
	Code      string `msgpack:"code"`
	Symbol    string `msgpack:"sym"`
	Name      string `msgpack:"name"`
	Precision int    `msgpack:"prec"`
	IsDefault bool   `msgpack:"def"`
}

// Rates travel as strings so no precision is lost to a float.
type cachedRate struct {
	ID     string `msgpack:"id"`
	FromID string `msgpack:"from"`
	ToID   string `msgpack:"to"`
	Rate   string `msgpack:"rate"`
}

type cachedSnapshot struct {
	Currencies []cachedCurrency `msgpack:"currencies"`
	Rates      []cachedRate     `msgpack:"rates"`
	LoadedAt   time.Time        `msgpack:"loaded_at"`
}

func encodeSnapshot(s domain.PricingSnapshot) ([]byte, error) {
	c := cachedSnapshot{
		Currencies: make([]cachedCurrency, len(s.Currencies)),
		Rates:      make([]cachedRate, len(s.Rates)),
		LoadedAt:   s.LoadedAt,
	}
	for i, cur := range s.Currencies {
		c.Currencies[i] = cachedCurrency{
			ID:        cur.CurrencyID,
			Code:      cur.Code,
			Symbol:    cur.Symbol,
			Name:      cur.Name,
			Precision: cur.Precision,
			IsDefault: cur.IsDefault,
		}
	}
	for i, r := range s.Rates {
		c.Rates[i] = cachedRate{ID: r.ExchangeRateID, FromID: r.FromCurrencyID, ToID: r.ToCurrencyID, Rate: r.Rate.String()}
	}
	return msgpack.Marshal(&c)
}

func decodeSnapshot(data []byte) (*domain.PricingSnapshot, error) {
	var c cachedSnapshot
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	s := &domain.PricingSnapshot{
		Currencies: make([]domain.Currency, len(c.Currencies)),
		Rates:      make([]domain.ExchangeRate, len(c.Rates)),
		LoadedAt:   c.LoadedAt.UTC(),
	}
	for i, cur := range c.Currencies {
		s.Currencies[i] = domain.Currency{
			CurrencyID: cur.ID,
			Code:       cur.Code,
			Symbol:     cur.Symbol,
			Name:       cur.Name,
			Precision:  cur.Precision,
			IsDefault:  cur.IsDefault,
		}
	}
	for i, r := range c.Rates {
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return nil, fmt.Errorf("rate %s: %w", r.ID, err)
		}
		s.Rates[i] = domain.ExchangeRate{ExchangeRateID: r.ID, FromCurrencyID: r.FromID, ToCurrencyID: r.ToID, Rate: rate}
	}
	return s, nil
}

// Get returns the cached snapshot, or nil on a miss. An entry that no longer decodes is
// dropped and reported as a miss.
func (c *RedisSnapshotCache) Get(ctx context.Context) (*domain.PricingSnapshot, error) {
	data, err := c.client.Get(ctx, SnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("platform/cache: get snapshot: %w", err)
	}

	snapshot, err := decodeSnapshot(data)
	if err != nil {
		_ = c.client.Del(ctx, SnapshotKey).Err()
		return nil, nil
	}
	return snapshot, nil
}

// Generation returns the invalidation counter, 0 when it was never bumped.
func (c *RedisSnapshotCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, SnapshotGenerationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("platform/cache: get generation: %w", err)
	}
	return gen, nil
}

// Set stores snapshot when generation is still current. The compare and the write run
// as one script so an Invalidate cannot slip in between.
func (c *RedisSnapshotCache) Set(ctx context.Context, snapshot domain.PricingSnapshot, generation int64) (bool, error) {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return false, fmt.Errorf("platform/cache: encode snapshot: %w", err)
	}
	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{SnapshotKey, SnapshotGenerationKey},
		strconv.FormatInt(generation, 10), data, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("platform/cache: set snapshot: %w", err)
	}
	return stored == 1, nil
}

// Invalidate drops the cached snapshot and bumps the generation so loads already in
// flight cannot store what they read.
func (c *RedisSnapshotCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, SnapshotGenerationKey)
		pipe.Del(ctx, SnapshotKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("platform/cache: invalidate snapshot: %w", err)
	}
	return nil
}
