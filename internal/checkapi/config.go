package checkapi

import (
	"time"

	"github.com/dmitrymomot/mailaddr"
	"github.com/dmitrymomot/mailaddr/internal/httpserver"
	"github.com/dmitrymomot/mailaddr/internal/logger"
)

// Config aggregates every environment-tunable setting of the service.
// The Contact field is parsed straight into a validated address, so a typo
// in the variable stops the process at startup instead of surfacing later.
type Config struct {
	HTTP httpserver.Config

	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"text"`

	Contact        mailaddr.Email `env:"CHECKAPI_CONTACT_EMAIL" envDefault:"support@example.com"`
	RequestTimeout time.Duration  `env:"CHECKAPI_REQUEST_TIMEOUT" envDefault:"15s"`
	MaxBatchSize   int            `env:"CHECKAPI_MAX_BATCH_SIZE" envDefault:"1000"`
}
