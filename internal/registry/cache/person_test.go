package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"folkv3/internal/platform/metrics"
	"folkv3/internal/registry/models"
	"folkv3/internal/registry/ports/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jona() *models.PersonMedium {
	return &models.PersonMedium{
		PersonSmall: models.PersonSmall{
			PrivateID: 2,
			Name:      models.Name{FirstNames: "Jóna Maria", LastName: "Poulsen"},
			Alive:     true,
		},
		PublicID:     1157443,
		Ptal:         models.MustPtal("010190123"),
		DateOfBirth:  models.NewDate(1990, time.January, 1),
		SpecialMarks: []models.SpecialMark{models.SpecialMarkNoMarketing},
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("store unavailable")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store unavailable")
}

// =============================================================================
// Medium Person Cache Test Suite
// =============================================================================
// Justification: the cache sits between the sample and the registry, so each
// test asserts how many registry calls reach the mocked client.

type PersonCacheSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	upstream *mocks.MockPersonMediumClient
	store    *MemoryStore
	metrics  *metrics.Metrics
	cache    *MediumPersonCache
	now      time.Time
}

func TestPersonCacheSuite(t *testing.T) {
	suite.Run(t, new(PersonCacheSuite))
}

func (s *PersonCacheSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.upstream = mocks.NewMockPersonMediumClient(s.ctrl)
	s.now = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	s.store = NewMemoryStore(func() time.Time { return s.now })
	s.metrics = metrics.New(prometheus.NewRegistry())

	var err error
	s.cache, err = NewMediumPersonCache(s.upstream, s.store,
		WithTTL(time.Minute), WithLogger(discardLogger()), WithMetrics(s.metrics))
	s.Require().NoError(err)
}

func (s *PersonCacheSuite) lookups(result string) float64 {
	return testutil.ToFloat64(s.metrics.CacheLookups.WithLabelValues(result))
}

func (s *PersonCacheSuite) TestSecondLookupIsServedFromStore() {
	ctx := context.Background()
	id := models.ByPrivateID(2)
	s.upstream.EXPECT().GetPerson(gomock.Any(), id).Return(jona(), nil).Times(1)

	first, err := s.cache.GetPerson(ctx, id)
	s.Require().NoError(err)
	second, err := s.cache.GetPerson(ctx, id)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal("010190-123", second.Ptal.FormattedValue())
	s.Equal(models.NewDate(1990, time.January, 1), second.DateOfBirth)
	s.Equal(float64(1), s.lookups("miss"))
	s.Equal(float64(1), s.lookups("hit"))
}

func (s *PersonCacheSuite) TestEntriesExpire() {
	ctx := context.Background()
	id := models.ByPublicID(1157443)
	s.upstream.EXPECT().GetPerson(gomock.Any(), id).Return(jona(), nil).Times(2)

	_, err := s.cache.GetPerson(ctx, id)
	s.Require().NoError(err)
	s.now = s.now.Add(2 * time.Minute)
	_, err = s.cache.GetPerson(ctx, id)
	s.Require().NoError(err)
	s.Equal(1, s.store.Len())
}

func (s *PersonCacheSuite) TestNotFoundIsNeverCached() {
	ctx := context.Background()
	id := models.ByPtal(models.MustPtal("999999999"))
	s.upstream.EXPECT().GetPerson(gomock.Any(), id).Return(nil, nil).Times(2)

	for range 2 {
		p, err := s.cache.GetPerson(ctx, id)
		s.Require().NoError(err)
		s.Nil(p)
	}
	s.Equal(0, s.store.Len())
}

func (s *PersonCacheSuite) TestErrorsPassThroughUncached() {
	ctx := context.Background()
	id := models.ByPrivateID(2)
	boom := errors.New("registry down")
	s.upstream.EXPECT().GetPerson(gomock.Any(), id).Return(nil, boom)

	_, err := s.cache.GetPerson(ctx, id)
	s.ErrorIs(err, boom)
	s.Equal(0, s.store.Len())
}

func (s *PersonCacheSuite) TestKindsAreCachedSeparately() {
	ctx := context.Background()
	s.upstream.EXPECT().GetPerson(gomock.Any(), models.ByPrivateID(2)).Return(jona(), nil)
	s.upstream.EXPECT().GetPerson(gomock.Any(), models.ByPublicID(2)).Return(nil, nil)

	p, err := s.cache.GetPerson(ctx, models.ByPrivateID(2))
	s.Require().NoError(err)
	s.NotNil(p)
	p, err = s.cache.GetPerson(ctx, models.ByPublicID(2))
	s.Require().NoError(err)
	s.Nil(p)
}

func (s *PersonCacheSuite) TestNameLookupsPassThrough() {
	ctx := context.Background()
	name := models.NewNameParam("Jóna Maria", "Poulsen")
	address := models.NewAddressParam("Gríms Kambans gøta", models.NewHouseNumberWithLetter(5, "b"), "Tórshavn")
	dob := models.NewDate(1990, time.January, 1)

	s.upstream.EXPECT().GetPersonByNameAndAddress(gomock.Any(), name, address).Return(jona(), nil).Times(2)
	s.upstream.EXPECT().GetPersonByNameAndDateOfBirth(gomock.Any(), name, dob).Return(jona(), nil)
	s.upstream.EXPECT().GetMyPrivileges(gomock.Any()).Return([]models.Privilege{{Name: "GET_PERSON_MEDIUM"}}, nil)

	for range 2 {
		_, err := s.cache.GetPersonByNameAndAddress(ctx, name, address)
		s.Require().NoError(err)
	}
	_, err := s.cache.GetPersonByNameAndDateOfBirth(ctx, name, dob)
	s.Require().NoError(err)
	privileges, err := s.cache.GetMyPrivileges(ctx)
	s.Require().NoError(err)
	s.Len(privileges, 1)
	s.Equal(0, s.store.Len())
}

func (s *PersonCacheSuite) TestInvalidIdentityIsNotCached() {
	ctx := context.Background()
	s.upstream.EXPECT().GetPerson(gomock.Any(), models.Identity{}).Return(nil, models.ErrInvalidID)

	_, err := s.cache.GetPerson(ctx, models.Identity{})
	s.ErrorIs(err, models.ErrInvalidID)
	s.Equal(float64(0), s.lookups("miss"))
}

func (s *PersonCacheSuite) TestCallersGetIndependentCopies() {
	ctx := context.Background()
	id := models.ByPrivateID(2)
	s.upstream.EXPECT().GetPerson(gomock.Any(), id).Return(jona(), nil)

	first, err := s.cache.GetPerson(ctx, id)
	s.Require().NoError(err)
	first.Name.LastName = "Changed"

	second, err := s.cache.GetPerson(ctx, id)
	s.Require().NoError(err)
	s.Equal("Poulsen", second.Name.LastName)
}

func (s *PersonCacheSuite) TestConcurrentMissesShareOneCall() {
	ctx := context.Background()
	id := models.ByPrivateID(2)
	release := make(chan struct{})
	s.upstream.EXPECT().GetPerson(gomock.Any(), id).DoAndReturn(
		func(context.Context, models.Identity) (*models.PersonMedium, error) {
			<-release
			return jona(), nil
		}).Times(1)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*models.PersonMedium, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := s.cache.GetPerson(ctx, id)
			s.NoError(err)
			results[i] = p
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, p := range results {
		s.Require().NotNil(p)
		s.Equal(models.PrivateID(2), p.PrivateID)
	}
}

func (s *PersonCacheSuite) TestCancelledCallerDoesNotFailSharedLookup() {
	id := models.ByPrivateID(2)
	started := make(chan struct{})
	release := make(chan struct{})
	s.upstream.EXPECT().GetPerson(gomock.Any(), id).DoAndReturn(
		func(ctx context.Context, _ models.Identity) (*models.PersonMedium, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return jona(), nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := s.cache.GetPerson(ctx, id)
		first <- err
	}()
	<-started

	type result struct {
		p   *models.PersonMedium
		err error
	}
	waiter := make(chan result, 1)
	go func() {
		p, err := s.cache.GetPerson(context.Background(), id)
		waiter <- result{p, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	s.ErrorIs(<-first, context.Canceled)

	close(release)
	got := <-waiter
	s.Require().NoError(got.err)
	s.Require().NotNil(got.p)
	s.Equal(models.PrivateID(2), got.p.PrivateID)
	s.Equal(1, s.store.Len())
}

func (s *PersonCacheSuite) TestConcurrentCallersDoNotShareNestedData() {
	id := models.ByPrivateID(2)
	release := make(chan struct{})
	shared := jona()
	shared.CivilStatus = &models.CivilStatus{Type: "UNMARRIED"}
	s.upstream.EXPECT().GetPerson(gomock.Any(), id).DoAndReturn(
		func(context.Context, models.Identity) (*models.PersonMedium, error) {
			<-release
			return shared, nil
		}).Times(1)

	results := make([]*models.PersonMedium, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := s.cache.GetPerson(context.Background(), id)
			s.NoError(err)
			results[i] = p
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	s.Require().NotNil(results[0])
	s.Require().NotNil(results[1])
	results[0].SpecialMarks[0] = models.SpecialMarkNoResearch
	results[0].CivilStatus.Type = "MARRIED"

	s.Equal(models.SpecialMarkNoMarketing, results[1].SpecialMarks[0])
	s.Equal("UNMARRIED", results[1].CivilStatus.Type)
	s.Equal(models.SpecialMarkNoMarketing, shared.SpecialMarks[0])
}

// =============================================================================
// Store Failure Tests
// =============================================================================

func TestMediumPersonCache_StoreFailureFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockPersonMediumClient(ctrl)
	m := metrics.New(prometheus.NewRegistry())
	c, err := NewMediumPersonCache(upstream, failingStore{}, WithLogger(discardLogger()), WithMetrics(m))
	require.NoError(t, err)

	id := models.ByPrivateID(2)
	upstream.EXPECT().GetPerson(gomock.Any(), id).Return(jona(), nil).Times(2)

	for range 2 {
		p, err := c.GetPerson(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Poulsen", p.Name.LastName)
	}
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CacheLookups.WithLabelValues("error")))
}

func TestMediumPersonCache_CorruptEntryFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockPersonMediumClient(ctrl)
	store := NewMemoryStore(time.Now)
	c, err := NewMediumPersonCache(upstream, store, WithLogger(discardLogger()), WithKeyPrefix("member-a:"))
	require.NoError(t, err)

	id := models.ByPrivateID(2)
	require.NoError(t, store.Set(context.Background(), "member-a:"+id.String(), []byte("{not json"), time.Minute))
	upstream.EXPECT().GetPerson(gomock.Any(), id).Return(jona(), nil)

	p, err := c.GetPerson(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PublicID(1157443), p.PublicID)
}

func TestNewMediumPersonCache_RequiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := NewMediumPersonCache(nil, NewMemoryStore(time.Now))
	assert.Error(t, err)
	_, err = NewMediumPersonCache(mocks.NewMockPersonMediumClient(ctrl), nil)
	assert.Error(t, err)
}
