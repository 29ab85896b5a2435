package dataset_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vosul/internal/dataset"
	"vosul/internal/domain"
	"vosul/mocks"
)

func TestStore_CurrentIsNilBeforeLoad(t *testing.T) {
	store := dataset.NewStore(new(mocks.MockRecordSource), dataset.Options{}, zerolog.Nop())
	assert.Nil(t, store.Current())
}

func TestStore_LoadPublishes(t *testing.T) {
	src := new(mocks.MockRecordSource)
	src.On("Fetch", mock.Anything).Return([]domain.RawRecord{
		{Code: "60001", Amount: "100"},
		{Code: "50000", Amount: "900"},
	}, nil)

	store := dataset.NewStore(src, dataset.Options{Now: fixedNow}, zerolog.Nop())
	ds, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
	assert.Same(t, ds, store.Current())
	src.AssertExpectations(t)
}

func TestStore_LoadFailureKeepsSnapshot(t *testing.T) {
	src := new(mocks.MockRecordSource)
	src.On("Fetch", mock.Anything).Return([]domain.RawRecord{{Code: "60001"}}, nil).Once()
	src.On("Fetch", mock.Anything).Return(nil, errors.New("sheet unavailable")).Once()

	store := dataset.NewStore(src, dataset.Options{}, zerolog.Nop())
	first, err := store.Load(context.Background())
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sheet unavailable")
	assert.Same(t, first, store.Current())
}

func TestStore_Publish(t *testing.T) {
	store := dataset.NewStore(new(mocks.MockRecordSource), dataset.Options{}, zerolog.Nop())
	ds := &domain.Dataset{Records: []domain.Record{{Code: 60001}}}

	store.Publish(ds)
	assert.Same(t, ds, store.Current())
}

func TestReloader_InvalidSchedule(t *testing.T) {
	store := dataset.NewStore(new(mocks.MockRecordSource), dataset.Options{}, zerolog.Nop())
	_, err := dataset.NewReloader(store, "not a schedule", time.Minute, zerolog.Nop())
	assert.Error(t, err)
}

func TestReloader_RunOnce(t *testing.T) {
	src := new(mocks.MockRecordSource)
	src.On("Fetch", mock.Anything).Return([]domain.RawRecord{{Code: "60001"}, {Code: "60002"}}, nil)

	store := dataset.NewStore(src, dataset.Options{}, zerolog.Nop())
	r, err := dataset.NewReloader(store, "@every 1h", time.Minute, zerolog.Nop())
	require.NoError(t, err)

	r.RunOnce()

	require.NotNil(t, store.Current())
	assert.Equal(t, 2, store.Current().Len())
}

func TestReloader_RunOnceFailureKeepsSnapshot(t *testing.T) {
	src := new(mocks.MockRecordSource)
	src.On("Fetch", mock.Anything).Return(nil, errors.New("boom"))

	store := dataset.NewStore(src, dataset.Options{}, zerolog.Nop())
	prev := &domain.Dataset{}
	store.Publish(prev)

	r, err := dataset.NewReloader(store, "*/5 * * * *", 0, zerolog.Nop())
	require.NoError(t, err)
	r.RunOnce()

	assert.Same(t, prev, store.Current())
}

func TestReloader_StartStop(t *testing.T) {
	store := dataset.NewStore(new(mocks.MockRecordSource), dataset.Options{}, zerolog.Nop())
	r, err := dataset.NewReloader(store, "@every 24h", time.Minute, zerolog.Nop())
	require.NoError(t, err)

	r.Start()
	r.Stop()
}
