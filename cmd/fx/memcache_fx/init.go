package memcache_fx

import (
	"go.uber.org/fx"

	mem "alphagym/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokens)

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}
