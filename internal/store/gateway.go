package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"netviz/internal/model"
)

// ObjectName is the fixed key of the single live configuration blob.
const ObjectName = "current_config.json"

// Gateway is the only path between handlers and the configuration blob.
// Reads never fail: any storage problem degrades to the built-in default.
// Writes surface their errors.
type Gateway struct {
	store ObjectStore
}

func NewGateway(store ObjectStore) *Gateway {
	return &Gateway{store: store}
}

// Load fetches the live configuration, falling back to model.Default when
// the blob is absent, unreadable, or storage is unreachable.
func (g *Gateway) Load(ctx context.Context) model.Configuration {
	data, err := g.store.Get(ctx, ObjectName)
	if errors.Is(err, ErrObjectNotFound) {
		log.Printf("No configuration found in storage, using default")
		return model.Default()
	}
	if err != nil {
		log.Printf("Error loading configuration: %v, using default", err)
		return model.Default()
	}
	var cfg model.Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Error decoding stored configuration: %v, using default", err)
		return model.Default()
	}
	cfg.ApplyDefaults()
	// A blob written out-of-band can decode fine yet break the business
	// rules; serve the default rather than an invalid configuration.
	if err := cfg.Validate(); err != nil {
		log.Printf("Stored configuration is invalid: %v, using default", err)
		return model.Default()
	}
	return cfg
}

// Save serializes cfg and overwrites the live blob.
func (g *Gateway) Save(ctx context.Context, cfg model.Configuration) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	if err := g.store.Put(ctx, ObjectName, data, "application/json"); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}
	return nil
}
