package spending_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/spending"
)

var testKey = account.Key{Letter: "J", Code: "4821"}

func TestService_MergeRemote(t *testing.T) {
	existing := []spending.Entry{
		{ID: "app-123", Title: "Coffee", Amount: decimal.NewFromInt(4)},
		{ID: "0d1de2aa-0000-0000-0000-000000000000", Title: "Groceries", Amount: decimal.NewFromInt(62)},
	}

	type testCase struct {
		name      string
		incoming  []spending.Entry
		wantAdded int
		wantSave  bool
		wantLen   int
	}

	tests := []testCase{
		{
			name: "ExistingIDSkipped",
			incoming: []spending.Entry{
				{ID: "app-123", Title: "Coffee edited remotely", Amount: decimal.NewFromInt(5)},
			},
			wantAdded: 0,
		},
		{
			name: "NewIDAppended",
			incoming: []spending.Entry{
				{ID: "app-456", Title: "Lunch", Amount: decimal.NewFromInt(14)},
			},
			wantAdded: 1,
			wantSave:  true,
			wantLen:   3,
		},
		{
			name: "MixedBatch",
			incoming: []spending.Entry{
				{ID: "app-123", Title: "Coffee", Amount: decimal.NewFromInt(4)},
				{ID: "app-456", Title: "Lunch", Amount: decimal.NewFromInt(14)},
				{ID: "app-789", Title: "Gas", Amount: decimal.NewFromInt(40)},
			},
			wantAdded: 2,
			wantSave:  true,
			wantLen:   4,
		},
		{
			name:      "EmptyBatch",
			incoming:  nil,
			wantAdded: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := spending.NewMockRepository(ctrl)
			if len(tt.incoming) > 0 {
				snapshot := make([]spending.Entry, len(existing))
				copy(snapshot, existing)
				repo.EXPECT().Load(gomock.Any(), testKey).Return(snapshot, nil)
			}

			var saved []spending.Entry

			if tt.wantSave {
				repo.EXPECT().Save(gomock.Any(), testKey, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ account.Key, es []spending.Entry) error {
						saved = es
						return nil
					})
			}

			svc := spending.NewService(repo)
			added, err := svc.MergeRemote(context.Background(), testKey, tt.incoming)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)

			if tt.wantSave {
				assert.Len(t, saved, tt.wantLen)

				// no duplicate ids after the merge
				seen := make(map[string]struct{})
				for _, e := range saved {
					_, dup := seen[e.ID]
					assert.False(t, dup, "duplicate id %s", e.ID)
					seen[e.ID] = struct{}{}
				}
			}
		})
	}
}

func TestService_Add(t *testing.T) {
	t.Run("AssignsFreshID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var saved []spending.Entry

		repo := spending.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), testKey).Return(nil, nil)
		repo.EXPECT().Save(gomock.Any(), testKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ account.Key, es []spending.Entry) error {
				saved = es
				return nil
			})

		svc := spending.NewService(repo)
		e, err := svc.Add(context.Background(), testKey, spending.AddParams{
			Title:    "Groceries",
			Amount:   decimal.RequireFromString("61.20"),
			Date:     time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
			Category: "food",
		})
		require.NoError(t, err)

		require.Len(t, saved, 1)
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, e.ID, saved[0].ID)
	})

	t.Run("RejectsBlankTitle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := spending.NewService(spending.NewMockRepository(ctrl))
		_, err := svc.Add(context.Background(), testKey, spending.AddParams{Title: " ", Amount: decimal.NewFromInt(5)})
		assert.ErrorIs(t, err, spending.ErrInvalidInput)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := spending.NewService(spending.NewMockRepository(ctrl))
		_, err := svc.Add(context.Background(), testKey, spending.AddParams{Title: "x", Amount: decimal.Zero})
		assert.ErrorIs(t, err, spending.ErrInvalidInput)
	})
}
