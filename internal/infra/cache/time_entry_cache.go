package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
)

const keyPrefix = "lancamentoPorId"

// removed marca um id removido. Get o trata como ausente e Add não o sobrescreve.
const removed = "removido"

// TimeEntryCache guarda lançamentos serializados em JSON, um por chave, com TTL.
// Set grava sempre (escrita do serviço); Add só preenche chave vazia (leitura do banco),
// assim uma leitura antiga nunca passa por cima de uma gravação mais nova.
type TimeEntryCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewTimeEntryCache(client redis.Cmdable, ttl time.Duration) *TimeEntryCache {
	return &TimeEntryCache{client: client, ttl: ttl}
}

func Key(id uint) string {
	return fmt.Sprintf("%s:%d", keyPrefix, id)
}

// Get devolve nil, nil quando a chave não existe ou está marcada como removida.
func (c *TimeEntryCache) Get(ctx context.Context, id uint) (*models.TimeEntry, error) {
	raw, err := c.client.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", Key(id), err)
	}
	if string(raw) == removed {
		return nil, nil
	}

	var entry models.TimeEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("cache decode %s: %w", Key(id), err)
	}
	return &entry, nil
}

func (c *TimeEntryCache) Set(ctx context.Context, entry *models.TimeEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", Key(entry.ID), err)
	}
	if err := c.client.Set(ctx, Key(entry.ID), string(raw), c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", Key(entry.ID), err)
	}
	return nil
}

// Add grava o lançamento apenas se a chave não existir. Devolve false quando já havia valor.
func (c *TimeEntryCache) Add(ctx context.Context, entry *models.TimeEntry) (bool, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return false, fmt.Errorf("cache encode %s: %w", Key(entry.ID), err)
	}
	added, err := c.client.SetNX(ctx, Key(entry.ID), string(raw), c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache setnx %s: %w", Key(entry.ID), err)
	}
	return added, nil
}

// Evict troca o valor pelo marcador de removido, com o mesmo TTL.
func (c *TimeEntryCache) Evict(ctx context.Context, id uint) error {
	if err := c.client.Set(ctx, Key(id), removed, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache evict %s: %w", Key(id), err)
	}
	return nil
}
