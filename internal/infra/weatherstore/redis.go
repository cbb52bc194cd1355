package weatherstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"meeting-rooms/internal/domain/weather"
	"meeting-rooms/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// record is the stored value layout, keyed by (location_id, date).
type record struct {
	LocationID  string    `json:"location_id"`
	Date        string    `json:"date"`
	DisplayName string    `json:"display_name"`
	Temperature int       `json:"temperature"`
	Condition   string    `json:"condition"`
	CreatedAt   time.Time `json:"created_at"`
}

type RedisStore struct {
	client  redis.Cmdable
	prefix  string
	timeout time.Duration
}

func NewRedisStore(client redis.Cmdable, prefix string, timeout time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "weather"
	}
	return &RedisStore{client: client, prefix: prefix, timeout: timeout}
}

func (s *RedisStore) Key(locationID, date string) string {
	return s.prefix + ":" + locationID + ":" + date
}

func (s *RedisStore) Get(ctx context.Context, locationID, date string) (*weather.Forecast, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.client.Get(ctx, s.Key(locationID, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read forecast")
	}

	f, err := decode(raw)
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}

// Put writes f without expiry; forecasts are never updated once stored.
func (s *RedisStore) Put(ctx context.Context, f weather.Forecast) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := encode(f)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.Key(f.LocationID, f.Date), raw, 0).Err(); err != nil {
		return errs.Wrap(err, "failed to write forecast")
	}
	return nil
}

func (s *RedisStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func encode(f weather.Forecast) ([]byte, error) {
	raw, err := json.Marshal(record{
		LocationID:  f.LocationID,
		Date:        f.Date,
		DisplayName: f.DisplayName,
		Temperature: f.Temperature,
		Condition:   f.Condition,
		CreatedAt:   f.CreatedAt,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode forecast")
	}
	return raw, nil
}

func decode(raw []byte) (*weather.Forecast, error) {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, errs.Wrap(err, "failed to decode forecast")
	}
	return &weather.Forecast{
		LocationID:  r.LocationID,
		DisplayName: r.DisplayName,
		Date:        r.Date,
		Temperature: r.Temperature,
		Condition:   r.Condition,
		Source:      weather.SourceStored,
		CreatedAt:   r.CreatedAt,
	}, nil
}
