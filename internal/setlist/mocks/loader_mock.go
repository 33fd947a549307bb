package mocks

import (
	"context"

	"github.com/shiroemons/go-setlist/internal/setlist/models"
)

// MockLoader はテスト用のLoaderモック
type MockLoader struct {
	LoadFunc func(ctx context.Context, savePath, cachePath string) (*models.LoadResult, error)
}

// Load はモック化された読み込み処理を実行します
func (m *MockLoader) Load(ctx context.Context, savePath, cachePath string) (*models.LoadResult, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, savePath, cachePath)
	}
	return &models.LoadResult{}, nil
}
