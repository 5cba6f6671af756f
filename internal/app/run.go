package app

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/deansher/morphics-v0.1/internal/charter"
	"github.com/deansher/morphics-v0.1/internal/ctxlog"
	"github.com/deansher/morphics-v0.1/internal/loader"
)

// Run resolves every charter file at the configured path against the
// configured face. Each charter gets its own resolution pass; defects from
// one file never mask another file's result. Run returns an error if any
// file failed to load or resolve.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := loader.Discover(a.config.CharterPath)
	if err != nil {
		return fmt.Errorf("failed to resolve charter path %q: %w", a.config.CharterPath, err)
	}
	if len(files) == 0 {
		a.logger.Warn("No charter files found at the specified path.", "path", a.config.CharterPath)
		return nil
	}
	a.logger.Info("Found charter files to resolve.", "count", len(files), "face", a.config.Face)

	failed := 0
	for _, file := range files {
		ch, err := loader.LoadFile(file)
		if err != nil {
			return fmt.Errorf("failed to load charter file %q: %w", file, err)
		}

		clan, errs := a.engine.Resolve(ctx, a.config.Face, ch)
		if len(errs) > 0 {
			failed++
			fmt.Fprintf(a.outW, "%s: %d defect(s)\n", file, len(errs))
			for _, e := range errs {
				fmt.Fprintf(a.outW, "  - %s\n", e)
			}
			continue
		}

		fmt.Fprintf(a.outW, "%s: %s (imp %s) = %s\n", file, clan.Face, clan.Imp, renderValue(clan.Value))
	}

	a.logger.Debug("App.Run method finished.", "resolved", len(files)-failed, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d charter(s) failed to resolve", failed, len(files))
	}
	return nil
}

// renderValue prints a resolved component instance. Values still in cty
// space render as their JSON wire form; everything else falls back to Go
// formatting.
func renderValue(v any) string {
	if cv, ok := v.(cty.Value); ok {
		if b, err := charter.MarshalData(cv); err == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("%v", v)
}
