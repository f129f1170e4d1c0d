package gatewayapp

type Config struct {
	Server         ServerConfig         `yaml:"server"`
	UnifiedStorage UnifiedStorageConfig `yaml:"unified_storage"`
}

type ServerConfig struct {
	Grpc GrpcConfig `yaml:"grpc"`
	HTTP HTTPConfig `yaml:"http"`
}

type GrpcConfig struct {
	Address string `yaml:"address" env:"NIMBUS_GRPC_ADDRESS" env-default:"127.0.0.1:55055"`
}

type HTTPConfig struct {
	Address string `yaml:"address" env:"NIMBUS_HTTP_ADDRESS" env-default:"127.0.0.1:8080"`
}

type UnifiedStorageConfig struct {
	URL string `yaml:"url" env:"NIMBUS_STORAGE_URL" env-required:"true"`
}
