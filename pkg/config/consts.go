package config

// EnvPrefix is intentionally empty: every variable carries the explicit
// DREVMART_ prefix in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "DREVMART_DB_DSN"
	EnvDBHost = "DREVMART_DB_HOST"
	EnvDBUser = "DREVMART_DB_USER"
	EnvDBName = "DREVMART_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
