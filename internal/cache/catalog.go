package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/navalha-app/booking-api/internal/models"
)

const (
	keyServices = "catalog:services"
	keyBarbers  = "catalog:barbers"

	catalogTTL = 10 * time.Minute
)

// Catalog guarda o catálogo de referência (serviços e barbeiros) no
// Redis. É best-effort: qualquer erro vira cache miss e a leitura cai
// no Postgres. A checagem de disponibilidade nunca passa por aqui.
type Catalog struct {
	rdb *redis.Client
}

func NewCatalog(rdb *redis.Client) *Catalog {
	return &Catalog{rdb: rdb}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (c *Catalog) GetServices(ctx context.Context) ([]models.Service, bool) {
	var out []models.Service
	return out, c.get(ctx, keyServices, &out)
}

func (c *Catalog) SetServices(ctx context.Context, services []models.Service) {
	c.set(ctx, keyServices, services)
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (c *Catalog) GetBarbers(ctx context.Context) ([]models.Barber, bool) {
	var out []models.Barber
	return out, c.get(ctx, keyBarbers, &out)
}

func (c *Catalog) SetBarbers(ctx context.Context, barbers []models.Barber) {
	c.set(ctx, keyBarbers, barbers)
}

// Invalidate é chamado por toda escrita em barbeiros/serviços.
func (c *Catalog) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, keyServices, keyBarbers)
}

// --------------------------------------------------
// Internals
// --------------------------------------------------

func (c *Catalog) get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(data, dest) == nil
}

func (c *Catalog) set(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}

	if b, err := json.Marshal(value); err == nil {
		c.rdb.Set(ctx, key, b, catalogTTL)
	}
}
