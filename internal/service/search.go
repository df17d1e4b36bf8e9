package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/internal/metrics"
	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

// SearchCache stores search results. A miss is reported with ok == false.
type SearchCache interface {
	Get(ctx context.Context, key string) (recipes []types.RecipeSuggestion, ok bool, err error)
	Set(ctx context.Context, key string, recipes []types.RecipeSuggestion, ttl time.Duration) error
}

// UserFinder loads a user by id.
type UserFinder interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// SearchService answers recipe searches from the cache or the generator,
// shaped by the caller's skill level and dietary restrictions.
type SearchService struct {
	generator RecipeGenerator
	users     UserFinder
	cache     SearchCache
	ttl       time.Duration
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewSearchService builds the service. cache may be nil.
func NewSearchService(generator RecipeGenerator, users UserFinder, cache SearchCache, ttl time.Duration, logger *zap.Logger, m *metrics.Metrics) *SearchService {
	return &SearchService{
		generator: generator,
		users:     users,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
		metrics:   m,
	}
}

func (s *SearchService) Search(ctx context.Context, userID uuid.UUID, query string) ([]types.RecipeSuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	prompt := SearchPrompt{
		Query:               query,
		SkillLevel:          user.SkillLevel,
		Conditions:          user.DietaryRestrictions.Conditions,
		ExcludedIngredients: user.DietaryRestrictions.ExcludedIngredients,
	}
	if prompt.SkillLevel == "" {
		prompt.SkillLevel = models.SkillBeginner
	}

	key := searchCacheKey(prompt)
	if s.cache != nil {
		recipes, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("search cache read failed", zap.Error(err))
		case ok:
			s.count("hit", "cached")
			return recipes, nil
		default:
			s.count("miss", "")
		}
	}

	recipes, err := s.generator.SuggestRecipes(ctx, prompt)
	if err != nil {
		s.count("", "error")
		s.logger.Error("recipe search failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	s.count("", "generated")

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, recipes, s.ttl); err != nil {
			s.logger.Warn("search cache write failed", zap.Error(err))
		}
	}
	return recipes, nil
}

func (s *SearchService) count(cacheResult, outcome string) {
	if s.metrics == nil {
		return
	}
	if cacheResult != "" {
		s.metrics.SearchCache.WithLabelValues(cacheResult).Inc()
	}
	if outcome != "" {
		s.metrics.RecipeSearches.WithLabelValues(outcome).Inc()
	}
}

// searchCacheKey is stable under case, spacing and restriction order.
func searchCacheKey(p SearchPrompt) string {
	norm := func(values []string) string {
		out := make([]string, 0, len(values))
		for _, v := range values {
			if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
				out = append(out, v)
			}
		}
		sort.Strings(out)
		return strings.Join(out, ",")
	}
	query := strings.Join(strings.Fields(strings.ToLower(p.Query)), " ")
	sum := sha256.Sum256([]byte(strings.Join([]string{
		p.SkillLevel, norm(p.Conditions), norm(p.ExcludedIngredients), query,
	}, "|")))
	return "recipe:search:" + hex.EncodeToString(sum[:])
}

// RedisSearchCache keeps search results in redis as JSON.
type RedisSearchCache struct {
	client *redis.Client
}

func NewRedisSearchCache(client *redis.Client) *RedisSearchCache {
	return &RedisSearchCache{client: client}
}

func (c *RedisSearchCache) Get(ctx context.Context, key string) ([]types.RecipeSuggestion, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get search results from Redis: %w", err)
	}
	var recipes []types.RecipeSuggestion
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal search results: %w", err)
	}
	return recipes, true, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, recipes []types.RecipeSuggestion, ttl time.Duration) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("failed to marshal search results: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save search results to Redis: %w", err)
	}
	return nil
}
