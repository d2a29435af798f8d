package persist

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/awray/coasterlog/internal/model"
	"github.com/awray/coasterlog/internal/store"
)

// Fixed store keys for the two persisted maps.
const (
	KeyRidden  = "ridden-coasters"
	KeyRatings = "coaster-ratings"
)

// Service (de)serializes the ridden and rating maps to the store.
type Service struct {
	st  store.Store
	log *zap.Logger

	ridden  *writer
	ratings *writer
	g       *errgroup.Group
}

// New creates a Service and starts its background writers.
func New(st store.Store, logger *zap.Logger) *Service {
	s := &Service{
		st:      st,
		log:     logger,
		ridden:  newWriter(KeyRidden, st, logger),
		ratings: newWriter(KeyRatings, st, logger),
		g:       &errgroup.Group{},
	}
	s.g.Go(s.ridden.run)
	s.g.Go(s.ratings.run)
	return s
}

// Load reads both maps from the store. It never fails: a missing key, a
// store read error or a malformed value each degrade to an empty map with
// a logged warning, so the application always starts interactive.
func (s *Service) Load(ctx context.Context) (model.RiddenMap, model.RatingMap) {
	ridden := make(model.RiddenMap)
	s.loadKey(ctx, KeyRidden, &ridden)

	ratings := make(model.RatingMap)
	s.loadKey(ctx, KeyRatings, &ratings)

	return ridden, ratings
}

func (s *Service) loadKey(ctx context.Context, key string, into any) {
	value, ok, err := s.st.Get(ctx, key)
	if err != nil {
		s.log.Warn("failed to read persisted state, starting empty",
			zap.String("key", key), zap.Error(err))
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(value), into); err != nil {
		s.log.Warn("persisted state is malformed, starting empty",
			zap.String("key", key), zap.Error(err))
	}
}

// SaveRidden queues a snapshot of the ridden map for writing. The call
// returns immediately; the caller's map is cloned before serialization so
// later mutations never leak into an in-flight write.
func (s *Service) SaveRidden(m model.RiddenMap) {
	s.save(s.ridden, m.Clone())
}

// SaveRating queues a snapshot of the rating map for writing.
func (s *Service) SaveRating(m model.RatingMap) {
	s.save(s.ratings, m.Clone())
}

func (s *Service) save(w *writer, snapshot any) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		// Unreachable for maps of string to bool/int.
		s.log.Warn("failed to serialize snapshot", zap.String("key", w.key), zap.Error(err))
		return
	}
	w.submit(string(data))
}

// Flush blocks until every queued snapshot has been written (or failed and
// been logged). It exists so tests and shutdown can observe a quiescent
// store.
func (s *Service) Flush() {
	s.ridden.flush()
	s.ratings.flush()
}

// Close flushes both writers and stops them. The store itself is not
// closed; the caller owns it.
func (s *Service) Close() error {
	s.Flush()
	s.ridden.stop()
	s.ratings.stop()
	return s.g.Wait()
}
