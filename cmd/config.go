package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	PartnerBaseURL string

	DispatchSweepSeconds       int
	DispatchMaxAttempts        int
	DispatchAttemptSeconds     int
	DeliverySuccessProbability float64
	DeliverySimulationSeed     int64
}
