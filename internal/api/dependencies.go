package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"openskies/airfield/internal/auth"
	"openskies/airfield/internal/common"
	"openskies/airfield/internal/db/repositories"
	"openskies/airfield/internal/metrics"
	"openskies/airfield/internal/store"
)

// Dependencies carries everything the route handlers need. Handlers
// receive their collaborators explicitly; there is no package-level
// state behind them.
type Dependencies struct {
	Airports    *store.Store
	Users       *repositories.UserRepository
	LoginEvents *repositories.LoginEventRepo
	Sessions    common.SessionStore
	Signer      *common.TokenSigner
	Authorizer  *auth.Authorizer
	Metrics     *metrics.MetricsRegistry

	SqlxDB *sqlx.DB
	Redis  *redis.Client

	UpSince time.Time
}
