package impl

import "go.uber.org/fx"

// Module provides the use case implementations.
var Module = fx.Module("usecase",
	fx.Provide(
		NewAccountService,
		NewSpotifyLinkService,
		NewListService,
		NewRatingService,
		NewHealthService,
	),
)
