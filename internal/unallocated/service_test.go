package unallocated_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/unallocated"
)

var testKey = account.Key{Letter: "J", Code: "4821"}

func held(cad string) unallocated.Deposit {
	return unallocated.Deposit{
		ID:        uuid.New(),
		AmountCAD: decimal.RequireFromString(cad),
		Source:    "trader",
		PushedAt:  time.Now().UTC(),
	}
}

func TestService_Allocate(t *testing.T) {
	type testCase struct {
		name       string
		start      string
		amount     string
		wantGone   bool
		wantAmount string
	}

	tests := []testCase{
		{name: "PartialLeavesRemainder", start: "100", amount: "40", wantAmount: "60"},
		{name: "FullBalanceRemovesDeposit", start: "100", amount: "100", wantGone: true},
		{name: "ResidueBelowEpsilonRemoved", start: "100", amount: "99.995", wantGone: true},
		{name: "ExactlyEpsilonRemoved", start: "100", amount: "99.99", wantGone: true},
		{name: "JustAboveEpsilonKept", start: "100", amount: "99.98", wantAmount: "0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := held(tt.start)

			var saved []unallocated.Deposit

			repo := unallocated.NewMockRepository(ctrl)
			repo.EXPECT().Load(gomock.Any(), testKey).Return([]unallocated.Deposit{d}, nil)
			repo.EXPECT().Save(gomock.Any(), testKey, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ account.Key, ds []unallocated.Deposit) error {
					saved = ds
					return nil
				})

			svc := unallocated.NewService(repo)
			err := svc.Allocate(context.Background(), testKey, d.ID, decimal.RequireFromString(tt.amount))
			require.NoError(t, err)

			if tt.wantGone {
				assert.Empty(t, saved)
				return
			}

			require.Len(t, saved, 1)
			assert.True(t, saved[0].AmountCAD.Equal(decimal.RequireFromString(tt.wantAmount)),
				"got %s", saved[0].AmountCAD)
		})
	}

	t.Run("ZeroAllocationKeepsTotal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// the one-cent deposit sits exactly at the removal threshold; a zero
		// allocation must not sweep it away
		deposits := []unallocated.Deposit{held("80"), held("20"), held("0.01")}

		repo := unallocated.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), testKey).
			DoAndReturn(func(context.Context, account.Key) ([]unallocated.Deposit, error) {
				return deposits, nil
			}).AnyTimes()
		repo.EXPECT().Save(gomock.Any(), testKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ account.Key, ds []unallocated.Deposit) error {
				deposits = ds
				return nil
			}).AnyTimes()

		svc := unallocated.NewService(repo)

		before, err := svc.Total(context.Background(), testKey)
		require.NoError(t, err)

		for _, d := range deposits {
			for range 3 {
				require.NoError(t, svc.Allocate(context.Background(), testKey, d.ID, decimal.Zero))
			}
		}

		after, err := svc.Total(context.Background(), testKey)
		require.NoError(t, err)
		assert.True(t, before.Equal(after))
		assert.Len(t, deposits, 3)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := unallocated.NewService(unallocated.NewMockRepository(ctrl))
		err := svc.Allocate(context.Background(), testKey, uuid.New(), decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, unallocated.ErrInvalidInput)
	})

	t.Run("UnknownID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := unallocated.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), testKey).Return(nil, nil)

		svc := unallocated.NewService(repo)
		err := svc.Allocate(context.Background(), testKey, uuid.New(), decimal.NewFromInt(5))
		assert.ErrorIs(t, err, unallocated.ErrNotFound)
	})
}

func TestService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var saved []unallocated.Deposit

	repo := unallocated.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), testKey).Return(nil, nil)
	repo.EXPECT().Save(gomock.Any(), testKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ account.Key, ds []unallocated.Deposit) error {
			saved = ds
			return nil
		})

	svc := unallocated.NewService(repo)
	d, err := svc.Add(context.Background(), testKey, unallocated.AddParams{
		AmountCAD: decimal.RequireFromString("12.50"),
		AmountUSD: decimal.NewFromInt(-3), // clamped
		Note:      "weekly sweep",
		Source:    "trader",
		PushedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.Equal(t, d.ID, saved[0].ID)
	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.True(t, saved[0].AmountUSD.IsZero())
}

func TestService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deposits := []unallocated.Deposit{held("80"), held("20")}

	var saved []unallocated.Deposit

	repo := unallocated.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), testKey).Return(deposits, nil)
	repo.EXPECT().Save(gomock.Any(), testKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ account.Key, ds []unallocated.Deposit) error {
			saved = ds
			return nil
		})

	svc := unallocated.NewService(repo)
	require.NoError(t, svc.Remove(context.Background(), testKey, deposits[0].ID))

	require.Len(t, saved, 1)
	assert.Equal(t, deposits[1].ID, saved[0].ID)
}

// The service sits between the HTTP handlers and the sync engine, so its
// load-mutate-save cycles must not interleave. Without serialization the
// concurrent Adds below would overwrite each other's saves and lose deposits.
func TestService_ConcurrentAddsKeepEveryDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var deposits []unallocated.Deposit

	repo := unallocated.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), testKey).
		DoAndReturn(func(context.Context, account.Key) ([]unallocated.Deposit, error) {
			return deposits, nil
		}).AnyTimes()
	repo.EXPECT().Save(gomock.Any(), testKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ account.Key, ds []unallocated.Deposit) error {
			deposits = ds
			return nil
		}).AnyTimes()

	svc := unallocated.NewService(repo)

	const workers = 50

	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			_, err := svc.Add(context.Background(), testKey, unallocated.AddParams{
				AmountCAD: decimal.NewFromInt(1),
				Source:    "trader",
				PushedAt:  time.Now().UTC(),
			})
			assert.NoError(t, err)
		})
	}

	wg.Wait()

	total, err := svc.Total(context.Background(), testKey)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(workers)), "got %s", total)
	assert.Len(t, deposits, workers)
}
