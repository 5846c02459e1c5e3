package bill_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/bill"
)

var testKey = account.Key{Letter: "J", Code: "4821"}

// memRepo drives TogglePaid through multiple round trips without re-stubbing
// every load.
type memRepo struct {
	bills    []bill.Bill
	payments []bill.Payment
}

func bindMemRepo(ctrl *gomock.Controller, mem *memRepo) *bill.MockRepository {
	repo := bill.NewMockRepository(ctrl)
	repo.EXPECT().LoadBills(gomock.Any(), testKey).
		DoAndReturn(func(context.Context, account.Key) ([]bill.Bill, error) {
			return mem.bills, nil
		}).AnyTimes()
	repo.EXPECT().SaveBills(gomock.Any(), testKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ account.Key, bs []bill.Bill) error {
			mem.bills = bs
			return nil
		}).AnyTimes()
	repo.EXPECT().LoadPayments(gomock.Any(), testKey).
		DoAndReturn(func(context.Context, account.Key) ([]bill.Payment, error) {
			return mem.payments, nil
		}).AnyTimes()
	repo.EXPECT().SavePayments(gomock.Any(), testKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ account.Key, ps []bill.Payment) error {
			mem.payments = ps
			return nil
		}).AnyTimes()

	return repo
}

func TestService_TogglePaid(t *testing.T) {
	t.Run("PaidEdgeAppendsPayment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mem := &memRepo{bills: []bill.Bill{{
			ID:        "rent",
			Name:      "Rent",
			Amount:    decimal.NewFromInt(1800),
			DueDay:    1,
			Frequency: bill.FrequencyMonthly,
		}}}

		svc := bill.NewService(bindMemRepo(ctrl, mem))

		b, err := svc.TogglePaid(context.Background(), testKey, "rent")
		require.NoError(t, err)
		assert.True(t, b.IsPaid)
		require.NotNil(t, b.LastPaidDate)

		require.Len(t, mem.payments, 1)
		assert.Equal(t, "Rent", mem.payments[0].BillName)
		assert.True(t, mem.payments[0].Amount.Equal(decimal.NewFromInt(1800)))
	})

	t.Run("UnpaidEdgeRetractsNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mem := &memRepo{bills: []bill.Bill{{
			ID:        "rent",
			Name:      "Rent",
			Amount:    decimal.NewFromInt(1800),
			DueDay:    1,
			Frequency: bill.FrequencyMonthly,
		}}}

		svc := bill.NewService(bindMemRepo(ctrl, mem))

		// paid -> unpaid -> paid: two payment records, not one
		for _, wantPaid := range []bool{true, false, true} {
			b, err := svc.TogglePaid(context.Background(), testKey, "rent")
			require.NoError(t, err)
			assert.Equal(t, wantPaid, b.IsPaid)
		}

		assert.Len(t, mem.payments, 2)
		// LastPaidDate survives the unpaid interval
		require.NotNil(t, mem.bills[0].LastPaidDate)
	})

	t.Run("UnknownBill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := bill.NewService(bindMemRepo(ctrl, &memRepo{}))
		_, err := svc.TogglePaid(context.Background(), testKey, "nope")
		assert.ErrorIs(t, err, bill.ErrNotFound)
	})
}

func TestService_MergeRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paid := true

	mem := &memRepo{bills: []bill.Bill{{
		ID:        "app-77",
		Name:      "Hydro",
		Amount:    decimal.NewFromInt(90),
		DueDay:    15,
		Frequency: bill.FrequencyMonthly,
		IsPaid:    paid,
	}}}

	svc := bill.NewService(bindMemRepo(ctrl, mem))

	changed, err := svc.MergeRemote(context.Background(), testKey, []bill.Bill{
		{ID: "app-77", Name: "Hydro One", Amount: decimal.NewFromInt(95), IsPaid: false},
		{ID: "app-88", Name: "Internet", Amount: decimal.NewFromInt(70), DueDay: 20, Frequency: bill.FrequencyMonthly},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	require.Len(t, mem.bills, 2)

	// remote owns name/amount, local owns payment state
	assert.Equal(t, "Hydro One", mem.bills[0].Name)
	assert.True(t, mem.bills[0].Amount.Equal(decimal.NewFromInt(95)))
	assert.True(t, mem.bills[0].IsPaid)

	assert.Equal(t, "app-88", mem.bills[1].ID)

	// same values again: nothing to do
	changed, err = svc.MergeRemote(context.Background(), testKey, []bill.Bill{
		{ID: "app-77", Name: "Hydro One", Amount: decimal.NewFromInt(95)},
	})
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestService_Add(t *testing.T) {
	type testCase struct {
		name    string
		params  bill.AddParams
		wantErr bool
	}

	valid := bill.AddParams{
		Name:      "Rent",
		Amount:    decimal.NewFromInt(1800),
		DueDay:    1,
		Frequency: bill.FrequencyMonthly,
	}

	tests := []testCase{
		{name: "Valid", params: valid},
		{name: "BlankName", params: bill.AddParams{Name: " ", Amount: decimal.NewFromInt(1), DueDay: 1, Frequency: bill.FrequencyWeekly}, wantErr: true},
		{name: "ZeroAmount", params: bill.AddParams{Name: "X", Amount: decimal.Zero, DueDay: 1, Frequency: bill.FrequencyWeekly}, wantErr: true},
		{name: "DueDayZero", params: bill.AddParams{Name: "X", Amount: decimal.NewFromInt(1), DueDay: 0, Frequency: bill.FrequencyWeekly}, wantErr: true},
		{name: "DueDayOver31", params: bill.AddParams{Name: "X", Amount: decimal.NewFromInt(1), DueDay: 32, Frequency: bill.FrequencyWeekly}, wantErr: true},
		{name: "BadFrequency", params: bill.AddParams{Name: "X", Amount: decimal.NewFromInt(1), DueDay: 1, Frequency: "fortnightly"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mem := &memRepo{}
			svc := bill.NewService(bindMemRepo(ctrl, mem))

			b, err := svc.Add(context.Background(), testKey, tt.params)

			if tt.wantErr {
				assert.ErrorIs(t, err, bill.ErrInvalidInput)
				assert.Empty(t, mem.bills)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, b.ID)
			assert.False(t, b.IsPaid)
			assert.Len(t, mem.bills, 1)
		})
	}
}
