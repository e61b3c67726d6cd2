package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/do"

	"wallpaper-studio/internal/catalog"
	"wallpaper-studio/internal/config"
	"wallpaper-studio/internal/export"
	"wallpaper-studio/internal/log"
	"wallpaper-studio/internal/session"
	"wallpaper-studio/internal/share"
	"wallpaper-studio/internal/wallpaper"
)

// Setup wires the studio session. Capability selection (native share vs
// clipboard) happens here, once, not at call time.
func Setup(ctx context.Context, cfg *config.Config) *do.Injector {
	logger := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		},
	})

	do.ProvideValue[*config.Config](injector, cfg)
	do.ProvideValue[*http.Client](injector, http.DefaultClient)

	do.Provide[*catalog.Randomizer](injector, func(i *do.Injector) (*catalog.Randomizer, error) {
		return catalog.NewRandomizer(), nil
	})
	do.Provide[wallpaper.Generator](injector, func(i *do.Injector) (wallpaper.Generator, error) {
		return &wallpaper.HTTPGenerator{
			Client:  do.MustInvoke[*http.Client](i),
			BaseURL: do.MustInvoke[*config.Config](i).APIBaseURL,
		}, nil
	})
	do.Provide[*session.Controller](injector, func(i *do.Injector) (*session.Controller, error) {
		return session.NewController(do.MustInvoke[wallpaper.Generator](i)), nil
	})
	do.Provide[*export.Exporter](injector, func(i *do.Injector) (*export.Exporter, error) {
		return &export.Exporter{
			Client: do.MustInvoke[*http.Client](i),
			Saver:  &export.DirSaver{Dir: do.MustInvoke[*config.Config](i).OutDir},
		}, nil
	})
	do.Provide[share.Sharer](injector, func(i *do.Injector) (share.Sharer, error) {
		return share.Detect(do.MustInvoke[*config.Config](i).ShareCommand), nil
	})

	return injector
}
