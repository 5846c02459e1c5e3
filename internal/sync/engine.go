// Package sync runs the tracker's side of the exchange with the hub: a
// periodic poll that drains the inbox into the unallocated queue, folds the
// counterpart's snapshot into the local ledgers, and republishes the
// website's own snapshot when it has changed.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/bill"
	"github.com/MrJamesThe3rd/stash/internal/goal"
	"github.com/MrJamesThe3rd/stash/internal/hub"
	"github.com/MrJamesThe3rd/stash/internal/spending"
	"github.com/MrJamesThe3rd/stash/internal/unallocated"
)

var ErrOffline = errors.New("hub unreachable")

//go:generate mockgen -source=engine.go -destination=client_mock.go -package=sync

// Client is what the engine needs from the hub.
type Client interface {
	Drain(ctx context.Context, key account.Key) (*hub.DrainResponse, error)
	PushSnapshot(ctx context.Context, key account.Key, snap hub.WebsiteSnapshot) error
}

// Goals is the slice of the goal service the engine consumes.
type Goals interface {
	Summaries(ctx context.Context, key account.Key) ([]goal.Summary, error)
}

// Schedule controls when the engine wakes up. Injected so tests (and the
// tracker's own config) own the cadence instead of the engine hardcoding it.
type Schedule struct {
	Warmup   time.Duration
	Interval time.Duration
}

type Engine struct {
	client   Client
	goals    Goals
	queue    *unallocated.Service
	spending *spending.Service
	bills    *bill.Service
	key      account.Key
	schedule Schedule

	mu          sync.Mutex
	lastPushed  uint64
	accountSync *hub.AccountSync
	notify      chan struct{}
}

func NewEngine(client Client, goals Goals, queue *unallocated.Service, spendingSvc *spending.Service, bills *bill.Service, key account.Key, schedule Schedule) *Engine {
	return &Engine{
		client:   client,
		goals:    goals,
		queue:    queue,
		spending: spendingSvc,
		bills:    bills,
		key:      key,
		schedule: schedule,
		notify:   make(chan struct{}, 1),
	}
}

// Run polls until the context is cancelled. A failed poll is logged and
// retried on the next tick; the hub being down never stops the tracker.
func (e *Engine) Run(ctx context.Context) {
	warmup := time.NewTimer(e.schedule.Warmup)
	defer warmup.Stop()

	select {
	case <-ctx.Done():
		return
	case <-warmup.C:
	}

	e.pollAndLog(ctx)

	ticker := time.NewTicker(e.schedule.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.pollAndLog(ctx)
		case <-e.notify:
			if err := e.PushChanged(ctx); err != nil {
				slog.Warn("snapshot push failed", "error", err)
			}
		}
	}
}

// NotifyChanged requests an out-of-band snapshot push, typically after a
// local write the counterpart should see before the next poll. Coalesces when
// one is already pending.
func (e *Engine) NotifyChanged() {
	select {
	case e.notify <- struct{}{}:
	default:
	}
}

// AccountBalances returns the counterpart's last reported trading-account
// balances, or nil before the first successful poll that carried them.
func (e *Engine) AccountBalances() *hub.AccountSync {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.accountSync
}

func (e *Engine) pollAndLog(ctx context.Context) {
	if err := e.Poll(ctx); err != nil {
		slog.Warn("sync poll failed", "error", err)
	}
}

// Poll runs one full exchange: drain the inbox, queue what arrived, merge the
// counterpart's snapshot, then republish ours. The push at the end is
// unconditional; a hub that lost its snapshot slot is re-seeded on the next
// cycle even when nothing changed locally. Each stage that fails aborts the
// cycle; a later tick picks it up.
func (e *Engine) Poll(ctx context.Context) error {
	drained, err := e.client.Drain(ctx, e.key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOffline, err)
	}

	for _, d := range drained.Deposits {
		_, err := e.queue.Add(ctx, e.key, unallocated.AddParams{
			AmountCAD: d.AmountCAD,
			AmountUSD: d.AmountUSD,
			Note:      d.Note,
			Date:      d.Date,
			Source:    d.Source,
			PushedAt:  d.PushedAt,
		})
		if err != nil {
			return fmt.Errorf("queueing drained deposit: %w", err)
		}
	}

	if drained.AccountSync != nil {
		e.mu.Lock()
		e.accountSync = drained.AccountSync
		e.mu.Unlock()
	}

	if drained.AppData != nil {
		if err := e.mergeApp(ctx, drained.AppData); err != nil {
			return err
		}
	}

	return e.push(ctx)
}

func (e *Engine) mergeApp(ctx context.Context, app *hub.AppSnapshot) error {
	entries := make([]spending.Entry, 0, len(app.Expenses))
	for _, x := range app.Expenses {
		entries = append(entries, spending.Entry{
			ID:       spending.RemoteIDPrefix + x.ID,
			Title:    x.Title,
			Amount:   x.Amount,
			Date:     x.Date,
			Category: x.Category,
		})
	}

	added, err := e.spending.MergeRemote(ctx, e.key, entries)
	if err != nil {
		return fmt.Errorf("merging remote expenses: %w", err)
	}

	if added > 0 {
		slog.Info("merged remote expenses", "added", added)
	}

	bills := make([]bill.Bill, 0, len(app.Bills))
	for _, b := range app.Bills {
		bills = append(bills, bill.Bill{
			ID:        spending.RemoteIDPrefix + b.ID,
			Name:      b.Name,
			Amount:    b.Amount,
			DueDay:    b.DueDay,
			Frequency: bill.Frequency(b.Frequency),
			Category:  b.Category,
		})
	}

	if _, err := e.bills.MergeRemote(ctx, e.key, bills); err != nil {
		return fmt.Errorf("merging remote bills: %w", err)
	}

	return nil
}

// PushChanged publishes the snapshot only when its content moved since the
// last push. This backs NotifyChanged: local writes between polls go out
// immediately, while untouched data waits for the next cycle's push.
func (e *Engine) PushChanged(ctx context.Context) error {
	snap, err := e.buildSnapshot(ctx)
	if err != nil {
		return err
	}

	sum, err := fingerprint(snap)
	if err != nil {
		return fmt.Errorf("fingerprinting snapshot: %w", err)
	}

	e.mu.Lock()
	unchanged := sum == e.lastPushed
	e.mu.Unlock()

	if unchanged {
		return nil
	}

	return e.publish(ctx, snap, sum)
}

func (e *Engine) push(ctx context.Context) error {
	snap, err := e.buildSnapshot(ctx)
	if err != nil {
		return err
	}

	sum, err := fingerprint(snap)
	if err != nil {
		return fmt.Errorf("fingerprinting snapshot: %w", err)
	}

	return e.publish(ctx, snap, sum)
}

func (e *Engine) publish(ctx context.Context, snap hub.WebsiteSnapshot, sum uint64) error {
	snap.UpdatedAt = time.Now().UTC()

	if err := e.client.PushSnapshot(ctx, e.key, snap); err != nil {
		return fmt.Errorf("pushing snapshot: %w", err)
	}

	e.mu.Lock()
	e.lastPushed = sum
	e.mu.Unlock()

	return nil
}

func (e *Engine) buildSnapshot(ctx context.Context) (hub.WebsiteSnapshot, error) {
	var snap hub.WebsiteSnapshot

	entries, err := e.spending.List(ctx, e.key)
	if err != nil {
		return snap, fmt.Errorf("listing spending: %w", err)
	}

	snap.Spending = make([]hub.WebsiteExpense, 0, len(entries))
	for _, x := range entries {
		snap.Spending = append(snap.Spending, hub.WebsiteExpense{
			ID:       x.ID,
			Title:    x.Title,
			Amount:   x.Amount,
			Date:     x.Date,
			Category: x.Category,
		})
	}

	bills, err := e.bills.List(ctx, e.key)
	if err != nil {
		return snap, fmt.Errorf("listing bills: %w", err)
	}

	snap.Bills = make([]hub.WebsiteBill, 0, len(bills))
	for _, b := range bills {
		snap.Bills = append(snap.Bills, hub.WebsiteBill{
			ID:        b.ID,
			Name:      b.Name,
			Amount:    b.Amount,
			DueDay:    b.DueDay,
			Frequency: string(b.Frequency),
			Category:  b.Category,
			IsPaid:    b.IsPaid,
		})
	}

	summaries, err := e.goals.Summaries(ctx, e.key)
	if err != nil {
		return snap, fmt.Errorf("summarizing goals: %w", err)
	}

	snap.Goals = make([]hub.WebsiteGoal, 0, len(summaries))
	for _, g := range summaries {
		snap.Goals = append(snap.Goals, hub.WebsiteGoal{
			Title:         g.Title,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
		})
	}

	return snap, nil
}

// fingerprint hashes the snapshot content. UpdatedAt stays zero here so a
// timestamp alone never counts as a change.
func fingerprint(snap hub.WebsiteSnapshot) (uint64, error) {
	snap.UpdatedAt = time.Time{}

	data, err := json.Marshal(snap)
	if err != nil {
		return 0, err
	}

	h := fnv.New64a()
	_, _ = h.Write(data)

	return h.Sum64(), nil
}
