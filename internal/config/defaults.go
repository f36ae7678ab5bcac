package config

const (
	defaultDeltaMin        = -5
	defaultDeltaMax        = 5
	defaultAdmissionPolicy = "strict"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults. The log
// format is intentionally empty so the logger can auto-detect a terminal.
func Default() Config {
	return Config{
		Matching: Matching{
			DeltaMin:        defaultDeltaMin,
			DeltaMax:        defaultDeltaMax,
			AdmissionPolicy: defaultAdmissionPolicy,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
