package installer

// EnvFile mirrors the variables the app reads at startup; tags line up
// with the config package so MarshalEnv renders a loadable .env.
type EnvFile struct {
	LLMProvider      string `env:"LLM_PROVIDER"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`
	CustomLLMBaseURL string `env:"CUSTOM_LLM_BASE_URL"`
	CustomLLMModel   string `env:"CUSTOM_LLM_MODEL"`
	LinearAPIKey     string `env:"LINEAR_API_KEY"`
	LinearTeamName   string `env:"LINEAR_TEAM_NAME"`
	TelegramToken    string `env:"TELEGRAM_TOKEN"`
	TelegramOwnerID  string `env:"TELEGRAM_OWNER_ID"`
	EnableTelegram   bool   `env:"ENABLE_TELEGRAM"`
	EnableCLI        bool   `env:"ENABLE_CLI"`
	Debug            string `env:"TRACKMATE_DEBUG"`
}

type InstallState struct {
	Env EnvFile

	// Channel is wizard-internal; FinalizationStep folds it into the
	// Enable* flags.
	Channel string
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
