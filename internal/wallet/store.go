// Package wallet owns the set of wallet records, the active wallet and its
// last observed balance, and keeps them in durable storage.
package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/AlexZinkM/tsdc-wallet/internal/crypto"
	"github.com/AlexZinkM/tsdc-wallet/internal/model"
	"github.com/AlexZinkM/tsdc-wallet/internal/storage"
	"github.com/AlexZinkM/tsdc-wallet/solana"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultMinPasswordLen is the password policy used when Options leaves it unset
const DefaultMinPasswordLen = 6

// BalanceSource reports the current balance of an address.
type BalanceSource interface {
	Balance(ctx context.Context, address string) (decimal.Decimal, error)
}

// Sender submits a single transfer and returns its transaction id.
type Sender interface {
	Send(ctx context.Context, from, to string, amount decimal.Decimal) (string, error)
}

// Options configures a Store
type Options struct {
	Storage        storage.KV
	Balances       BalanceSource
	Sender         Sender
	Sealer         *crypto.Sealer
	MinPasswordLen int
	Logger         *zap.Logger
}

// Store is the wallet session: records, active pointer and last balance.
// It is safe for concurrent use. Sends are serialized, and balance results
// that were overtaken by a newer fetch, an activation or a send are dropped.
type Store struct {
	kv             storage.KV
	balances       BalanceSource
	sender         Sender
	sealer         *crypto.Sealer
	minPasswordLen int
	log            *zap.Logger

	mu       sync.Mutex
	records  []model.WalletRecord
	activeID string
	balance  *decimal.Decimal
	// gen is bumped whenever an in-flight balance result would become stale
	gen uint64

	sendMu sync.Mutex
}

// Snapshot is a consistent copy of the session state
type Snapshot struct {
	Wallets  []model.WalletRecord
	ActiveID string
	Balance  *decimal.Decimal
}

// Open builds a Store and loads its state from storage.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Storage == nil || opts.Balances == nil || opts.Sender == nil || opts.Sealer == nil {
		return nil, errors.New("wallet store requires storage, balance source, sender and sealer")
	}
	if opts.MinPasswordLen <= 0 {
		opts.MinPasswordLen = DefaultMinPasswordLen
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Store{
		kv:             opts.Storage,
		balances:       opts.Balances,
		sender:         opts.Sender,
		sealer:         opts.Sealer,
		minPasswordLen: opts.MinPasswordLen,
		log:            opts.Logger.Named("wallet"),
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the session state with what is in storage.
// A missing or malformed record set, or a corrupt storage document, loads as
// empty. When the stored active id
// is missing or unknown the first record becomes active.
func (s *Store) Load(ctx context.Context) error {
	records, activeID, err := s.readStorage(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.activeID = activeID
	s.balance = nil
	s.gen++
	s.mu.Unlock()

	s.log.Info("wallets loaded", zap.Int("count", len(records)), zap.String("active", activeID))
	return nil
}

func (s *Store) readStorage(ctx context.Context) ([]model.WalletRecord, string, error) {
	raw, ok, err := s.kv.Get(ctx, storage.SlotWallets)
	if errors.Is(err, storage.ErrCorrupt) {
		s.log.Warn("storage is corrupt, starting empty", zap.Error(err))
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to read wallets: %v", ErrStorage, err)
	}
	if !ok || raw == "" {
		return nil, "", nil
	}

	var records []model.WalletRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn("stored wallets are malformed, starting empty", zap.Error(err))
		return nil, "", nil
	}
	if len(records) == 0 {
		return nil, "", nil
	}

	activeID, ok, err := s.kv.Get(ctx, storage.SlotActiveWallet)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to read active wallet: %v", ErrStorage, err)
	}
	if !ok || indexOf(records, activeID) < 0 {
		activeID = records[0].ID
	}
	return records, activeID, nil
}

// Create generates a new wallet, protects its secret with password, stores it
// and makes it active.
func (s *Store) Create(ctx context.Context, name, password string) (model.WalletRecord, error) {
	name, err := s.validateNew(name, password)
	if err != nil {
		return model.WalletRecord{}, err
	}

	kp := solana.GenerateKeypair()
	defer clear(kp.Secret)

	return s.add(ctx, name, kp.Address, kp.Secret, password)
}

// Import stores a wallet for existing secret material and makes it active.
// Any non-empty material is accepted; see solana.DeriveAddress.
func (s *Store) Import(ctx context.Context, name, secret, password string) (model.WalletRecord, error) {
	name, err := s.validateNew(name, password)
	if err != nil {
		return model.WalletRecord{}, err
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return model.WalletRecord{}, fmt.Errorf("%w: please enter a private key", ErrValidation)
	}

	return s.add(ctx, name, solana.DeriveAddress(secret), []byte(secret), password)
}

func (s *Store) validateNew(name, password string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: please enter a wallet name", ErrValidation)
	}
	if len(password) < s.minPasswordLen {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, s.minPasswordLen)
	}
	return name, nil
}

func (s *Store) add(ctx context.Context, name, address string, secret []byte, password string) (model.WalletRecord, error) {
	pw := []byte(password)
	defer clear(pw)

	sealed, err := s.sealer.Seal(secret, pw)
	if err != nil {
		return model.WalletRecord{}, fmt.Errorf("failed to protect secret: %w", err)
	}

	s.mu.Lock()
	rec := model.WalletRecord{
		ID:              s.newIDLocked(),
		Name:            name,
		PublicAddress:   address,
		EncryptedSecret: sealed,
	}
	next := append(slices.Clone(s.records), rec)

	// nothing is committed in memory until both slots are durable
	if err := s.persistLocked(ctx, next, rec.ID); err != nil {
		s.mu.Unlock()
		return model.WalletRecord{}, err
	}
	s.records = next
	s.activeID = rec.ID
	s.balance = nil
	s.gen++
	s.mu.Unlock()

	s.log.Info("wallet added", zap.String("id", rec.ID), zap.String("name", rec.Name), zap.String("address", rec.PublicAddress))
	s.refreshQuietly(ctx)
	return rec, nil
}

func (s *Store) newIDLocked() string {
	for {
		id := uuid.NewString()
		if indexOf(s.records, id) < 0 {
			return id
		}
	}
}

func (s *Store) persistLocked(ctx context.Context, records []model.WalletRecord, activeID string) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal wallets: %v", ErrStorage, err)
	}
	err = s.kv.Put(ctx, map[string]string{
		storage.SlotWallets:      string(data),
		storage.SlotActiveWallet: activeID,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to write wallets: %v", ErrStorage, err)
	}
	return nil
}

// Activate makes the wallet with id active and refreshes its balance.
// An unknown id is ignored: it returns false and the active wallet is unchanged.
func (s *Store) Activate(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	if indexOf(s.records, id) < 0 {
		s.mu.Unlock()
		s.log.Debug("ignoring activation of unknown wallet", zap.String("id", id))
		return false, nil
	}
	if err := s.kv.Put(ctx, map[string]string{storage.SlotActiveWallet: id}); err != nil {
		s.mu.Unlock()
		return false, fmt.Errorf("%w: failed to write active wallet: %v", ErrStorage, err)
	}
	s.activeID = id
	s.balance = nil
	s.gen++
	s.mu.Unlock()

	s.log.Info("wallet activated", zap.String("id", id))
	s.refreshQuietly(ctx)
	return true, nil
}

// RefreshBalance fetches the balance of the active wallet.
// On failure the balance becomes unknown. A result that was overtaken while
// in flight is discarded and the current balance is returned instead.
func (s *Store) RefreshBalance(ctx context.Context) (*decimal.Decimal, error) {
	s.mu.Lock()
	rec, ok := s.activeLocked()
	if !ok {
		s.balance = nil
		s.mu.Unlock()
		return nil, ErrNoActiveWallet
	}
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	bal, err := s.balances.Balance(ctx, rec.PublicAddress)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.log.Debug("discarding stale balance result", zap.String("address", rec.PublicAddress))
		return copyDecimal(s.balance), nil
	}
	if err != nil {
		s.balance = nil
		return nil, fmt.Errorf("%w: failed to fetch balance: %v", ErrNetwork, err)
	}
	s.balance = &bal
	return copyDecimal(s.balance), nil
}

// refreshQuietly runs RefreshBalance for operations whose success does not
// depend on the balance
func (s *Store) refreshQuietly(ctx context.Context) {
	if _, err := s.RefreshBalance(ctx); err != nil {
		s.log.Warn("balance fetch failed", zap.Error(err))
	}
}

// SendTransaction sends amount from the active wallet to recipient.
// The amount is checked against the last known balance. The send is attempted
// once; on success the balance drops by amount, on failure it is unchanged.
func (s *Store) SendTransaction(ctx context.Context, recipient string, amount decimal.Decimal) (string, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return "", fmt.Errorf("%w: please enter a recipient address", ErrValidation)
	}
	if !amount.IsPositive() {
		return "", fmt.Errorf("%w: please enter a valid amount", ErrValidation)
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	s.mu.Lock()
	rec, ok := s.activeLocked()
	if !ok {
		s.mu.Unlock()
		return "", ErrNoActiveWallet
	}
	if s.balance == nil {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: balance is unknown", ErrValidation)
	}
	if amount.GreaterThan(*s.balance) {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: insufficient balance", ErrValidation)
	}
	s.mu.Unlock()

	txID, err := s.sender.Send(ctx, rec.PublicAddress, recipient, amount)
	if err != nil {
		s.log.Warn("transaction failed", zap.String("from", rec.PublicAddress), zap.String("to", recipient), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrTransaction, err)
	}

	s.mu.Lock()
	if s.activeID == rec.ID && s.balance != nil {
		next := s.balance.Sub(amount)
		if next.IsNegative() {
			next = decimal.Zero
		}
		s.balance = &next
		s.gen++
	}
	s.mu.Unlock()

	s.log.Info("transaction sent", zap.String("txId", txID), zap.String("from", rec.PublicAddress),
		zap.String("to", recipient), zap.String("amount", amount.String()))
	return txID, nil
}

// RevealSecret opens the protected secret of wallet id with password.
// Caller should clear the result after use.
func (s *Store) RevealSecret(id, password string) ([]byte, error) {
	s.mu.Lock()
	i := indexOf(s.records, id)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sealed := s.records[i].EncryptedSecret
	s.mu.Unlock()

	pw := []byte(password)
	defer clear(pw)

	secret, err := s.sealer.Open(sealed, pw)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPassword) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("failed to open secret: %w", err)
	}
	return secret, nil
}

// Wallets returns the records in creation order
func (s *Store) Wallets() []model.WalletRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

// Active returns the active record, if any
func (s *Store) Active() (model.WalletRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked()
}

// Balance returns the last known balance of the active wallet, nil when unknown
func (s *Store) Balance() *decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDecimal(s.balance)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Wallets:  slices.Clone(s.records),
		ActiveID: s.activeID,
		Balance:  copyDecimal(s.balance),
	}
}

func (s *Store) activeLocked() (model.WalletRecord, bool) {
	if s.activeID == "" {
		return model.WalletRecord{}, false
	}
	i := indexOf(s.records, s.activeID)
	if i < 0 {
		return model.WalletRecord{}, false
	}
	return s.records[i], true
}

func indexOf(records []model.WalletRecord, id string) int {
	return slices.IndexFunc(records, func(r model.WalletRecord) bool { return r.ID == id })
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
