// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shiroemons/go-setlist/internal/setlist/config"
	setlisterrors "github.com/shiroemons/go-setlist/internal/setlist/errors"
	"github.com/shiroemons/go-setlist/internal/setlist/fileutil"
	"github.com/shiroemons/go-setlist/internal/setlist/interfaces"
	"github.com/shiroemons/go-setlist/internal/setlist/loader"
	"github.com/shiroemons/go-setlist/internal/setlist/models"
	"github.com/shiroemons/go-setlist/internal/setlist/report"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger interfaces.Logger
	loader interfaces.Loader
	fs     interfaces.FileSystem
	stdout io.Writer
	stderr io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Loader     interfaces.Loader
	Stdout     io.Writer
	Stderr     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := config.NewDebugLogger(cfg.DebugMode)

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// デフォルトのLoaderを設定
	var l interfaces.Loader
	if opts.Loader != nil {
		l = opts.Loader
	} else {
		l = loader.New(fs, logger, loader.Options{WiiProfile: cfg.WiiProfile, DiscCatalogPath: cfg.DiscDTAPath})
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &App{
		config: cfg,
		logger: logger,
		loader: l,
		fs:     fs,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	result, err := a.loader.Load(ctx, a.config.SavePath, a.config.CachePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	// ファイルごとの読み込み結果
	fmt.Fprint(a.stdout, report.RenderSummary(result.Files))
	for _, f := range result.Files {
		if f.Error != "" {
			fmt.Fprintf(a.stderr, "警告: %s\n", f.Error)
		}
	}

	if len(result.SaveRows) == 0 && len(result.CacheRows) == 0 {
		return setlisterrors.ErrNoSongs
	}

	if len(result.SaveRows) > 0 {
		if err := a.output(ctx, a.config.SavePath, result.SaveRows, report.SaveView); err != nil {
			return err
		}
	}
	if len(result.CacheRows) > 0 {
		if err := a.output(ctx, a.config.CachePath, result.CacheRows, report.CacheView); err != nil {
			return err
		}
	}
	return nil
}

// output は一覧を生成してファイルに保存します
func (a *App) output(ctx context.Context, inputPath string, rows []models.SongRow, view report.View) error {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	content := report.Render(rows, view)
	outputPath := filepath.Join(a.config.OutputDir, fileutil.GenerateOutputFilename(inputPath, view.String()))

	if a.config.DryRun {
		a.logger.Printf("ドライラン: %s (%d 曲) は保存しません\n", outputPath, len(rows))
		fmt.Fprint(a.stdout, content)
		return nil
	}

	if err := fileutil.WriteWithBOM(a.fs, outputPath, content); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}
	a.logger.Printf("%d 曲を %s に保存しました\n", len(rows), outputPath)
	return nil
}
