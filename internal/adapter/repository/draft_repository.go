package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
)

const draftKeyPrefix = "candidate-form-progress:"

type draftRepository struct {
	client redis.Cmdable
}

// NewDraftRepository stores drafts as JSON strings in Redis
func NewDraftRepository(client redis.Cmdable) repositories.DraftRepository {
	return &draftRepository{client: client}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

func (r *draftRepository) Get(ctx context.Context, id string) (*entities.FormDraft, error) {
	raw, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var draft entities.FormDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft %s: %w", id, err)
	}
	return &draft, nil
}

func (r *draftRepository) Save(ctx context.Context, draft *entities.FormDraft, ttl time.Duration) error {
	if draft == nil || draft.ID == "" {
		return errors.New("draft must have an id")
	}
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, draftKey(draft.ID), raw, ttl).Err()
}

func (r *draftRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, draftKey(id)).Err()
}
