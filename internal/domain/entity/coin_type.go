package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CoinKind distinguishes the platform currency from artist-issued coins
type CoinKind string

// Coin kinds
const (
	KindPlatform     CoinKind = "platform"
	KindArtistIssued CoinKind = "artist_issued"
)

// IsValid reports whether k is a known coin kind
func (k CoinKind) IsValid() bool {
	return k == KindPlatform || k == KindArtistIssued
}

var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}$`)

// CoinType describes one virtual currency and its supply rules
type CoinType struct {
	ID                uint64
	Name              string
	Symbol            string
	Kind              CoinKind
	ArtistID          *uuid.UUID
	InitialValue      decimal.Decimal
	CurrentValue      decimal.Decimal
	ValuePerFan       decimal.Decimal
	TotalSupply       int64 // lifetime minted, minor units
	CirculatingSupply int64 // currently held, minor units
	MaxSupply         *int64
	IsActive          bool
	IsTradeable       bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewCoinTypeParams holds the attributes accepted when creating a coin type
type NewCoinTypeParams struct {
	Name         string
	Symbol       string
	Kind         CoinKind
	ArtistID     *uuid.UUID
	InitialValue decimal.Decimal
	ValuePerFan  decimal.Decimal
	MaxSupply    *int64
	IsTradeable  bool
}

// NewCoinType validates params and builds an active coin type
func NewCoinType(p NewCoinTypeParams, now time.Time) (*CoinType, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrInvalidCoinType)
	}

	symbol := strings.ToUpper(strings.TrimSpace(p.Symbol))
	if !symbolPattern.MatchString(symbol) {
		return nil, fmt.Errorf("%w: symbol %q must be 2-10 upper-case letters or digits", errs.ErrInvalidCoinType, p.Symbol)
	}

	if !p.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown kind %q", errs.ErrInvalidCoinType, p.Kind)
	}
	if p.Kind == KindArtistIssued && (p.ArtistID == nil || *p.ArtistID == uuid.Nil) {
		return nil, fmt.Errorf("%w: artist-issued coins need an owning artist", errs.ErrInvalidCoinType)
	}
	if p.Kind == KindPlatform && p.ArtistID != nil {
		return nil, fmt.Errorf("%w: platform coins cannot have an owning artist", errs.ErrInvalidCoinType)
	}

	if !p.InitialValue.IsPositive() {
		return nil, fmt.Errorf("%w: initial value must be positive", errs.ErrInvalidCoinType)
	}
	if p.ValuePerFan.IsNegative() {
		return nil, fmt.Errorf("%w: value per fan cannot be negative", errs.ErrInvalidCoinType)
	}
	if p.MaxSupply != nil && *p.MaxSupply <= 0 {
		return nil, fmt.Errorf("%w: max supply must be positive when set", errs.ErrInvalidCoinType)
	}

	return &CoinType{
		Name:         name,
		Symbol:       symbol,
		Kind:         p.Kind,
		ArtistID:     p.ArtistID,
		InitialValue: p.InitialValue,
		CurrentValue: p.InitialValue,
		ValuePerFan:  p.ValuePerFan,
		MaxSupply:    p.MaxSupply,
		IsActive:     true,
		IsTradeable:  p.IsTradeable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// EnsureActive fails with ErrCoinTypeInactive for deactivated coin types
func (c *CoinType) EnsureActive() error {
	if !c.IsActive {
		return fmt.Errorf("%w: %s", errs.ErrCoinTypeInactive, c.Symbol)
	}
	return nil
}

// EnsureTradeable fails with ErrCoinTypeNotTradeable when peer transfers are disabled
func (c *CoinType) EnsureTradeable() error {
	if !c.IsTradeable {
		return fmt.Errorf("%w: %s", errs.ErrCoinTypeNotTradeable, c.Symbol)
	}
	return nil
}

// EnsureCreditableWithoutMint fails for artist-issued coins, which enter circulation only
// through a mint so that circulating supply counts every coin held
func (c *CoinType) EnsureCreditableWithoutMint() error {
	if c.Kind == KindArtistIssued {
		return fmt.Errorf("%w: %s coins are issued only by mint", errs.ErrInvalidOperation, c.Symbol)
	}
	return nil
}

// CanMint checks that minting amount keeps circulating supply within the cap
func (c *CoinType) CanMint(amount int64) error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	if c.MaxSupply == nil {
		return nil
	}
	next, err := AddAmounts(c.CirculatingSupply, amount)
	if err != nil || next > *c.MaxSupply {
		return errs.NewSupplyCapExceededError(c.ID,
			FormatCoinAmount(amount),
			FormatCoinAmount(c.CirculatingSupply),
			FormatCoinAmount(*c.MaxSupply))
	}
	return nil
}

// RegisterMint applies a mint to the supply counters after CanMint succeeded
func (c *CoinType) RegisterMint(amount int64, now time.Time) error {
	if err := c.CanMint(amount); err != nil {
		return err
	}
	c.CirculatingSupply += amount
	c.TotalSupply += amount
	c.UpdatedAt = now
	return nil
}

// RemainingSupply returns how much can still be minted; ok is false for uncapped coins
func (c *CoinType) RemainingSupply() (remaining int64, ok bool) {
	if c.MaxSupply == nil {
		return 0, false
	}
	return *c.MaxSupply - c.CirculatingSupply, true
}

// ValueForFans computes initial value plus the per-fan coefficient times fanCount
func (c *CoinType) ValueForFans(fanCount int64) decimal.Decimal {
	return c.InitialValue.Add(c.ValuePerFan.Mul(decimal.NewFromInt(fanCount)))
}

// SetCurrentValue updates the unit value; it must stay positive
func (c *CoinType) SetCurrentValue(value decimal.Decimal, now time.Time) error {
	if !value.IsPositive() {
		return fmt.Errorf("%w: current value must be positive", errs.ErrInvalidCoinType)
	}
	c.CurrentValue = value
	c.UpdatedAt = now
	return nil
}

// Deactivate blocks all new mutating operations on this coin type
func (c *CoinType) Deactivate(now time.Time) {
	c.IsActive = false
	c.UpdatedAt = now
}
