package directory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

// StorageKey is the single key holding the serialized city list.
const StorageKey = "wm:cities"

var (
	// DefaultCities is used when nothing has been persisted yet.
	DefaultCities = []string{"London", "New York", "Mumbai"}
	// RecoveryCities replaces a persisted value that cannot be decoded.
	RecoveryCities = []string{"London"}
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Directory loads and persists State through a key-value store.
type Directory struct {
	store  kvStore
	key    string
	logger zerolog.Logger
}

func New(store kvStore, key string, logger zerolog.Logger) *Directory {
	if key == "" {
		key = StorageKey
	}
	logger = logger.With().Str("component", "Directory").Logger()
	return &Directory{store: store, key: key, logger: logger}
}

// Load rehydrates the persisted list. It never fails: a missing value yields DefaultCities,
// an undecodable one yields RecoveryCities, and store errors are logged and treated as missing.
func (d *Directory) Load(ctx context.Context) State {
	raw, found, err := d.store.Get(ctx, d.key)
	if err != nil {
		d.logger.Error().Ctx(ctx).Err(err).Str("key", d.key).
			Msg("failed to read persisted cities, using defaults")
		return NewState(DefaultCities)
	}
	if !found || raw == "" {
		d.logger.Info().Ctx(ctx).Str("key", d.key).Msg("no persisted cities, using defaults")
		return NewState(DefaultCities)
	}

	names, err := Decode(d.key, raw)
	if err != nil {
		d.logger.Warn().Ctx(ctx).Err(err).Msg("persisted cities are malformed, recovering")
		return NewState(RecoveryCities)
	}

	d.logger.Info().Ctx(ctx).Strs("cities", names).Msg("loaded persisted cities")
	return NewState(names)
}

// Persist rewrites the whole list under the directory key.
func (d *Directory) Persist(ctx context.Context, s State) error {
	data, err := json.Marshal(s.Names())
	if err != nil {
		return fmt.Errorf("encode cities: %w", err)
	}
	if err := d.store.Set(ctx, d.key, string(data)); err != nil {
		d.logger.Error().Ctx(ctx).Err(err).Str("key", d.key).Msg("failed to persist cities")
		return fmt.Errorf("persist cities: %w", err)
	}
	d.logger.Debug().Ctx(ctx).Str("key", d.key).RawJSON("cities", data).Msg("cities persisted")
	return nil
}

// Decode parses a persisted value. Anything other than a JSON array of strings is a ParseError.
func Decode(key, raw string) ([]string, error) {
	var names *[]string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, &models.ParseError{Key: key, Err: err}
	}
	if names == nil {
		return nil, &models.ParseError{Key: key, Err: fmt.Errorf("expected a list, got %s", raw)}
	}
	return *names, nil
}
