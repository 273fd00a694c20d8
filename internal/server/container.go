package server

import (
	"github.com/nfrund/landing/internal/config"
	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/handlers"
	"github.com/nfrund/landing/internal/hub"
	"github.com/nfrund/landing/internal/inquiry"
	"github.com/nfrund/landing/internal/pubsub"
	"github.com/nfrund/landing/internal/rendering"
	"github.com/nfrund/landing/internal/storage"
	"github.com/nfrund/landing/web"
	"github.com/samber/do/v2"
)

// NewInjector registers every service the server needs. Services are built
// lazily on first Invoke; the injector's Shutdown closes those that need it.
func NewInjector(cfg *config.Config) do.Injector {
	i := do.New()

	do.ProvideValue[config.Provider](i, cfg)

	do.Provide(i, func(i do.Injector) (*content.Store, error) {
		fsys := content.NewFS(web.ContentFS(), cfg.GetContentDir())
		return content.NewStore(content.NewLoader(fsys))
	})

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})

	do.Provide(i, func(i do.Injector) (*hub.Hub, error) {
		return hub.NewHub(), nil
	})

	do.Provide(i, func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	do.Provide(i, func(i do.Injector) (*inquiry.Store, error) {
		files, err := storage.NewDirStore(cfg.GetInquiryDir())
		if err != nil {
			return nil, err
		}
		return inquiry.NewStore(files), nil
	})

	do.Provide(i, func(i do.Injector) (*handlers.PageHandler, error) {
		return handlers.NewPageHandler(
			do.MustInvoke[*content.Store](i),
			do.MustInvoke[rendering.Renderer](i),
			do.MustInvoke[config.Provider](i),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*handlers.NavHandler, error) {
		return handlers.NewNavHandler(do.MustInvoke[rendering.Renderer](i)), nil
	})

	do.Provide(i, func(i do.Injector) (*handlers.ConsultationHandler, error) {
		return handlers.NewConsultationHandler(
			do.MustInvoke[*inquiry.Store](i),
			do.MustInvoke[rendering.Renderer](i),
		), nil
	})

	return i
}
