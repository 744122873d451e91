package migration

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
)

// SeedPlatformCoin ensures the platform currency exists after the schema is in place
func SeedPlatformCoin(ctx context.Context, coins usecase.CoinTypeUseCase, coin usecase.PlatformCoin) (*entity.CoinType, error) {
	coinType, err := coins.EnsurePlatformCoin(ctx, coin)
	if err != nil {
		return nil, fmt.Errorf("failed to seed platform coin %s: %w", coin.Symbol, err)
	}
	return coinType, nil
}
