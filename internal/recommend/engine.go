// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/nutriprofile/internal/cache"
	"github.com/tomtom215/nutriprofile/internal/logging"
	"github.com/tomtom215/nutriprofile/internal/metrics"
	"github.com/tomtom215/nutriprofile/internal/models"
)

// Engine runs the recommendation pipeline. It is safe for concurrent use:
// everything except the result cache is read-only after NewEngine.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	version string

	pre    *Preprocessor
	model  *ClusterModel
	foods  *FoodTable
	filter FilterMode

	cache *cache.LRU[cachedResult]
}

type cachedResult struct {
	profile Profile
	result  *models.RecommendationResult
}

// NewEngine validates the artifacts against each other and the input schema.
// All failures are *ConfigError or configuration validation errors.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewEngine(cfg *Config, art *ModelArtifact, foods *FoodTable, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if art == nil {
		return nil, configErrorf("engine", "model artifact is nil")
	}
	if foods == nil {
		return nil, configErrorf("engine", "food table is nil")
	}

	pre, err := NewPreprocessor(art.NumericFeatures, art.CategoricalFeatures)
	if err != nil {
		return nil, err
	}
	model, err := NewClusterModel(art.Centroids, pre.Width())
	if err != nil {
		return nil, err
	}
	mode, err := ParseFilterMode(string(cfg.FilterMode))
	if err != nil {
		return nil, err
	}
	filter, err := mode.Resolve(foods)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		version: art.Version,
		pre:     pre,
		model:   model,
		foods:   foods,
		filter:  filter,
	}
	if cfg.CacheEnabled {
		e.cache = cache.NewLRU[cachedResult](cfg.CacheSize, cfg.CacheTTL)
	}

	metrics.RecordArtifacts(art.Version, pre.Width(), foods.Len())
	e.logger.Info().
		Str("model_version", art.Version).
		Int("features", pre.Width()).
		Int("foods", foods.Len()).
		Str("filter_mode", string(filter)).
		Bool("cache", cfg.CacheEnabled).
		Msg("Recommendation engine ready")
	for _, p := range e.uncoveredProfiles() {
		e.logger.Warn().
			Int("cluster", p.Cluster).
			Str("profile", p.Name).
			Str("filter_mode", string(filter)).
			Msg("No food matches this profile; its recommendations will be empty")
	}
	return e, nil
}

// uncoveredProfiles lists the profiles for which the resolved filter keeps
// no food at all.
func (e *Engine) uncoveredProfiles() []Profile {
	var out []Profile
	items := e.foods.Items()
	for _, p := range Profiles() {
		keep := matcher(e.filter, p)
		if keep == nil {
			continue
		}
		found := false
		for i := range items {
			if keep(&items[i]) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, p)
		}
	}
	return out
}

// FilterMode returns the resolved filter mode.
func (e *Engine) FilterMode() FilterMode {
	return e.filter
}

// ModelVersion returns the artifact version string.
func (e *Engine) ModelVersion() string {
	return e.version
}

// PruneCache drops expired cached results and returns how many were removed.
func (e *Engine) PruneCache() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

// Classify assigns rec to a cluster and returns its profile.
func (e *Engine) Classify(rec *models.HealthRecord) (Profile, error) {
	vec, err := e.pre.Transform(rec)
	if err != nil {
		metrics.RecommendationErrors.WithLabelValues("preprocess").Inc()
		return Profile{}, err
	}
	cluster, err := e.model.Assign(vec)
	if err != nil {
		metrics.RecommendationErrors.WithLabelValues("assign").Inc()
		return Profile{}, err
	}
	p, err := ProfileFor(cluster)
	if err != nil {
		metrics.RecommendationErrors.WithLabelValues("profile").Inc()
		return Profile{}, err
	}
	return p, nil
}

// Recommend runs the full pipeline for a validated record. The result is
// a pure function of rec and the loaded artifacts.
func (e *Engine) Recommend(ctx context.Context, rec *models.HealthRecord) (*models.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	log := e.requestLogger(ctx)

	key := cacheKey(rec)
	if e.cache != nil {
		if hit, ok := e.cache.Get(key); ok {
			metrics.RecordCacheLookup(true)
			e.observe(log, hit.profile, len(hit.result.RecommendedFoods), true, start)
			return cloneResult(hit.result), nil
		}
		metrics.RecordCacheLookup(false)
	}

	profile, err := e.Classify(rec)
	if err != nil {
		return nil, err
	}

	ranked := Rank(e.foods.Items(), matcher(e.filter, profile), DefaultTopK)
	views := make([]models.FoodView, len(ranked))
	for i := range ranked {
		views[i] = ranked[i].View()
	}
	result := &models.RecommendationResult{
		ProfileName:        profile.Name,
		RecommendationType: profile.Type.Label(),
		RecommendedFoods:   views,
	}

	if e.cache != nil {
		e.cache.Add(key, cachedResult{profile: profile, result: result})
	}
	e.observe(log, profile, len(views), false, start)
	return cloneResult(result), nil
}

//nolint:gocritic // zerolog.Logger is passed by value by convention
func (e *Engine) observe(log zerolog.Logger, p Profile, foods int, cached bool, start time.Time) {
	elapsed := time.Since(start)
	metrics.RecordRecommendation(p.Cluster, p.Type.Label(), elapsed)
	log.Info().
		Int("cluster", p.Cluster).
		Str("profile", p.Name).
		Int("foods", foods).
		Bool("cached", cached).
		Dur("duration", elapsed).
		Msgf("Predicted cluster: %d", p.Cluster)
}

func (e *Engine) requestLogger(ctx context.Context) zerolog.Logger {
	lc := e.logger.With()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		lc = lc.Str("correlation_id", id)
	}
	return lc.Logger()
}

func cacheKey(rec *models.HealthRecord) string {
	var b strings.Builder
	b.Grow(96)
	b.WriteString(strconv.Itoa(rec.Age))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(rec.BMI, 'g', -1, 64))
	for _, v := range []int{rec.SystolicBP, rec.BloodSugar, rec.DailySteps, rec.ExerciseFrequency} {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(v))
	}
	for _, s := range []string{rec.ChronicDisease, rec.AlcoholConsumption, rec.SmokingHabit, rec.DietaryHabits} {
		b.WriteByte('|')
		b.WriteString(s)
	}
	return b.String()
}

func cloneResult(r *models.RecommendationResult) *models.RecommendationResult {
	out := *r
	out.RecommendedFoods = append(make([]models.FoodView, 0, len(r.RecommendedFoods)), r.RecommendedFoods...)
	return &out
}
