package dto

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCoinTypeRequest is the body of POST /admin/coin-types
type CreateCoinTypeRequest struct {
	Name         string `json:"name" binding:"required"`
	Symbol       string `json:"symbol" binding:"required"`
	Kind         string `json:"kind" binding:"required,oneof=platform artist_issued"`
	ArtistID     string `json:"artistId"`
	InitialValue string `json:"initialValue" binding:"required"`
	ValuePerFan  string `json:"valuePerFan"`
	MaxSupply    string `json:"maxSupply"`
	IsTradeable  *bool  `json:"isTradeable"`
}

// Params validates the request's formats and converts it; business rules are checked by the registry
func (r CreateCoinTypeRequest) Params() (entity.NewCoinTypeParams, error) {
	initial, err := entity.ParseUnitValue(r.InitialValue)
	if err != nil {
		return entity.NewCoinTypeParams{}, err
	}

	p := entity.NewCoinTypeParams{
		Name:         r.Name,
		Symbol:       r.Symbol,
		Kind:         entity.CoinKind(r.Kind),
		InitialValue: initial,
		ValuePerFan:  decimal.Zero,
		IsTradeable:  r.IsTradeable == nil || *r.IsTradeable,
	}

	if r.ArtistID != "" {
		artistID, err := uuid.Parse(r.ArtistID)
		if err != nil {
			return entity.NewCoinTypeParams{}, fmt.Errorf("%w: artistId is not a UUID", errs.ErrInvalidCoinType)
		}
		p.ArtistID = &artistID
	}
	if r.ValuePerFan != "" {
		perFan, err := decimal.NewFromString(r.ValuePerFan)
		if err != nil {
			return entity.NewCoinTypeParams{}, fmt.Errorf("%w: valuePerFan is not a number", errs.ErrInvalidCoinType)
		}
		p.ValuePerFan = perFan
	}
	if r.MaxSupply != "" {
		maxSupply, err := entity.ParseCoinAmount(r.MaxSupply)
		if err != nil {
			return entity.NewCoinTypeParams{}, err
		}
		p.MaxSupply = &maxSupply
	}
	return p, nil
}

// SetValueRequest is the body of PUT /admin/coin-types/:id/value
type SetValueRequest struct {
	Value string `json:"value" binding:"required"`
}

// FansRequest is the body of PUT /admin/coin-types/:id/fans
type FansRequest struct {
	FanCount int64 `json:"fanCount" binding:"min=0"`
}

// CoinTypeResponse is one coin type; supplies are formatted minor units
type CoinTypeResponse struct {
	ID                uint64     `json:"id"`
	Name              string     `json:"name"`
	Symbol            string     `json:"symbol"`
	Kind              string     `json:"kind"`
	ArtistID          *uuid.UUID `json:"artistId,omitempty"`
	InitialValue      string     `json:"initialValue"`
	CurrentValue      string     `json:"currentValue"`
	ValuePerFan       string     `json:"valuePerFan"`
	TotalSupply       string     `json:"totalSupply"`
	CirculatingSupply string     `json:"circulatingSupply"`
	MaxSupply         string     `json:"maxSupply,omitempty"`
	IsActive          bool       `json:"isActive"`
	IsTradeable       bool       `json:"isTradeable"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// NewCoinTypeResponse maps a coin type
func NewCoinTypeResponse(c *entity.CoinType) CoinTypeResponse {
	resp := CoinTypeResponse{
		ID:                c.ID,
		Name:              c.Name,
		Symbol:            c.Symbol,
		Kind:              string(c.Kind),
		ArtistID:          c.ArtistID,
		InitialValue:      c.InitialValue.String(),
		CurrentValue:      c.CurrentValue.String(),
		ValuePerFan:       c.ValuePerFan.String(),
		TotalSupply:       entity.FormatCoinAmount(c.TotalSupply),
		CirculatingSupply: entity.FormatCoinAmount(c.CirculatingSupply),
		IsActive:          c.IsActive,
		IsTradeable:       c.IsTradeable,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.MaxSupply != nil {
		resp.MaxSupply = entity.FormatCoinAmount(*c.MaxSupply)
	}
	return resp
}

// NewCoinTypeListResponse maps a list of coin types
func NewCoinTypeListResponse(coins []*entity.CoinType) []CoinTypeResponse {
	out := make([]CoinTypeResponse, 0, len(coins))
	for _, c := range coins {
		out = append(out, NewCoinTypeResponse(c))
	}
	return out
}

// ValueSampleResponse is one point of a coin type's value history
type ValueSampleResponse struct {
	Value      string    `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

// NewValueHistoryResponse maps value samples
func NewValueHistoryResponse(samples []*entity.ValueSample) []ValueSampleResponse {
	out := make([]ValueSampleResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, ValueSampleResponse{Value: s.Value.String(), RecordedAt: s.RecordedAt})
	}
	return out
}
