package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"rewardbot/internal/config"
	"rewardbot/internal/domain"
	"rewardbot/internal/domain/entity"
	"rewardbot/pkg/errcodes"
)

const (
	testOwnerID = int64(1000)
	testUserID  = int64(42)
)

type fakeCodes struct {
	codes     map[string]bool
	insertErr error
	deleteErr error
}

func newFakeCodes(codes ...string) *fakeCodes {
	f := &fakeCodes{codes: make(map[string]bool)}
	for _, c := range codes {
		f.codes[c] = true
	}

	return f
}

func (f *fakeCodes) Insert(_ context.Context, code string) error {
	if f.insertErr != nil {
		return f.insertErr
	}

	if f.codes[code] {
		return domain.NewError(errcodes.CodeAlreadyExists, "code already exists")
	}

	f.codes[code] = true

	return nil
}

func (f *fakeCodes) Delete(_ context.Context, code string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}

	if !f.codes[code] {
		return false, nil
	}

	delete(f.codes, code)

	return true, nil
}

func (f *fakeCodes) List(_ context.Context) ([]string, error) {
	out := make([]string, 0, len(f.codes))
	for c := range f.codes {
		out = append(out, c)
	}

	sort.Strings(out)

	return out, nil
}

type fakeBalances struct {
	balances map[int64]int64
	addErr   error
}

func newFakeBalances() *fakeBalances {
	return &fakeBalances{balances: make(map[int64]int64)}
}

func (f *fakeBalances) Get(_ context.Context, userID int64) (int64, error) {
	return f.balances[userID], nil
}

func (f *fakeBalances) Add(_ context.Context, userID int64, delta int64) error {
	if f.addErr != nil {
		return f.addErr
	}

	f.balances[userID] += delta

	return nil
}

func (f *fakeBalances) Top(_ context.Context, limit int) ([]entity.Balance, error) {
	out := make([]entity.Balance, 0, len(f.balances))
	for id, amount := range f.balances {
		out = append(out, entity.Balance{UserID: id, Amount: amount})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

type fakeCooldowns struct {
	stamps map[int64]time.Time
}

func newFakeCooldowns() *fakeCooldowns {
	return &fakeCooldowns{stamps: make(map[int64]time.Time)}
}

func (f *fakeCooldowns) Get(_ context.Context, userID int64) (time.Time, error) {
	at, ok := f.stamps[userID]
	if !ok {
		return time.Time{}, domain.NewError(errcodes.NotFound, "cooldown not found")
	}

	return at, nil
}

func (f *fakeCooldowns) Set(_ context.Context, userID int64, at time.Time) error {
	f.stamps[userID] = at

	return nil
}

type fakeItems struct {
	rows   map[entity.ItemKind][]entity.Item
	nextID int64

	deleteErr error
}

func newFakeItems() *fakeItems {
	return &fakeItems{rows: make(map[entity.ItemKind][]entity.Item), nextID: 1}
}

func (f *fakeItems) Insert(_ context.Context, kind entity.ItemKind, payload string) (bool, error) {
	for _, row := range f.rows[kind] {
		if row.Payload == payload {
			return false, nil
		}
	}

	f.rows[kind] = append(f.rows[kind], entity.Item{ID: f.nextID, Kind: kind, Payload: payload})
	f.nextID++

	return true, nil
}

func (f *fakeItems) Random(_ context.Context, kind entity.ItemKind) (*entity.Item, error) {
	rows := f.rows[kind]
	if len(rows) == 0 {
		return nil, domain.NewError(errcodes.InventoryEmpty, "inventory is empty")
	}

	item := rows[0]

	return &item, nil
}

func (f *fakeItems) DeleteByID(_ context.Context, kind entity.ItemKind, id int64) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}

	for i, row := range f.rows[kind] {
		if row.ID == id {
			f.rows[kind] = append(f.rows[kind][:i], f.rows[kind][i+1:]...)

			return true, nil
		}
	}

	return false, nil
}

func (f *fakeItems) DeleteByPayload(_ context.Context, kind entity.ItemKind, payload string) (bool, error) {
	for i, row := range f.rows[kind] {
		if row.Payload == payload {
			f.rows[kind] = append(f.rows[kind][:i], f.rows[kind][i+1:]...)

			return true, nil
		}
	}

	return false, nil
}

func (f *fakeItems) List(_ context.Context, kind entity.ItemKind) ([]entity.Item, error) {
	return append([]entity.Item(nil), f.rows[kind]...), nil
}

func (f *fakeItems) Count(_ context.Context, kind entity.ItemKind) (int64, error) {
	return int64(len(f.rows[kind])), nil
}

func (f *fakeItems) Deduplicate(_ context.Context, kind entity.ItemKind) (before, after int64, err error) {
	before = int64(len(f.rows[kind]))

	seen := make(map[string]bool)
	kept := f.rows[kind][:0]

	for _, row := range f.rows[kind] {
		if seen[row.Payload] {
			continue
		}

		seen[row.Payload] = true
		kept = append(kept, row)
	}

	f.rows[kind] = kept

	return before, int64(len(kept)), nil
}

type fakeLinks struct {
	urls []string
}

func (f *fakeLinks) Insert(_ context.Context, url string) error {
	f.urls = append(f.urls, url)

	return nil
}

func (f *fakeLinks) List(_ context.Context) ([]string, error) {
	return f.urls, nil
}

type fakePaste struct {
	url string
	err error

	contents []string
}

func (f *fakePaste) Create(_ context.Context, _, content string) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	f.contents = append(f.contents, content)

	return f.url, nil
}

type fakeShortener struct {
	short string
	err   error

	longURLs []string
}

func (f *fakeShortener) Shorten(_ context.Context, longURL string) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	f.longURLs = append(f.longURLs, longURL)

	return f.short, nil
}

type fakeCourier struct {
	err error

	delivered []string
}

func (f *fakeCourier) DeliverPayload(_ context.Context, _ int64, payload string) error {
	if f.err != nil {
		return f.err
	}

	f.delivered = append(f.delivered, payload)

	return nil
}

type fakeResolver struct {
	names map[int64]string
}

func (f *fakeResolver) DisplayName(_ context.Context, userID int64) string {
	if name, ok := f.names[userID]; ok {
		return name
	}

	return strconv.FormatInt(userID, 10)
}

type testEnv struct {
	svc       *RewardService
	codes     *fakeCodes
	balances  *fakeBalances
	cooldowns *fakeCooldowns
	items     *fakeItems
	links     *fakeLinks
	paste     *fakePaste
	shortener *fakeShortener
	courier   *fakeCourier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		codes:     newFakeCodes(),
		balances:  newFakeBalances(),
		cooldowns: newFakeCooldowns(),
		items:     newFakeItems(),
		links:     &fakeLinks{},
		paste:     &fakePaste{url: "https://paste.example/abc"},
		shortener: &fakeShortener{short: "https://sh.example/x"},
		courier:   &fakeCourier{},
	}

	env.svc = NewRewardService(
		env.codes,
		env.balances,
		env.cooldowns,
		env.items,
		env.links,
		env.paste,
		env.shortener,
		env.courier,
		&fakeResolver{names: map[int64]string{testUserID: "Alice"}},
		config.Economy{
			IssueCooldown: 300 * time.Second,
			CodeReward:    150,
			DrawCost:      150,
			CodeLength:    20,
		},
		testOwnerID,
	)

	return env
}
