package config

const (
	KeyOpenAIBaseURL = "openai_base_url"
	KeyOpenAIAPIKey  = "openai_api_key"
	KeyOpenAIModel   = "openai_model"
	KeyChatClient    = "chat_client"
	KeyAskTimeout    = "ask_timeout"
	KeyLogLevel      = "log_level"
	KeyTransport     = "mcp_transport"
	KeyHost          = "mcp_host"
	KeyPort          = "mcp_port"
	KeyEndpointPath  = "mcp_endpoint_path"
)
