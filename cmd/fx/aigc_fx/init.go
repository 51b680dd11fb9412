package aigc_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripgen/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	ProvideWeatherClient)

// ChatConfig holds configuration for the generative backend.
type ChatConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// ProvideChatClient creates a chat client based on environment variables.
func ProvideChatClient() (utils.ChatClientInterface, error) {
	config := getChatConfig()

	log.Printf("Initializing %s chat client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "dashscope":
		return utils.NewQwenChatClient(config.APIKey, config.BaseURL, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiChatClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'dashscope' or 'gemini'", config.Provider)
	}
}

func ProvideWeatherClient() utils.WeatherClientInterface {
	apiKey := os.Getenv("AMAP_API_KEY")
	if apiKey == "" {
		log.Fatal("AMAP_API_KEY is required for the weather gateway")
	}
	return utils.NewAmapWeatherClient(apiKey)
}

func getChatConfig() ChatConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "dashscope")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "dashscope":
		apiKey = os.Getenv("DASHSCOPE_API_KEY")
		model = getEnvWithDefault("DASHSCOPE_MODEL", "qwen-max")
		if apiKey == "" {
			log.Fatal("DASHSCOPE_API_KEY is required when using the DashScope provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the Gemini provider")
		}
	}

	return ChatConfig{
		Provider: provider,
		APIKey:   apiKey,
		BaseURL:  os.Getenv("DASHSCOPE_BASE_URL"),
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
