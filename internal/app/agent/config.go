package agentapp

import "time"

type Config struct {
	UnifiedStorage UnifiedStorageConfig `yaml:"unified_storage"`
	ObjectStorage  ObjectStorageConfig  `yaml:"object_storage"`
	Work           WorkConfig           `yaml:"work"`
	Metrics        MetricsConfig        `yaml:"metrics"`
}

type UnifiedStorageConfig struct {
	URL string `yaml:"url" env:"NIMBUS_STORAGE_URL" env-required:"true"`
}

type ObjectStorageConfig struct {
	Endpoint            string `yaml:"endpoint" env:"NIMBUS_OBJECT_STORAGE_ENDPOINT" env-required:"true"`
	SnapshotsBucketName string `yaml:"snapshots_bucket_name" env-default:"snapshots"`
	User                string `yaml:"user" env:"NIMBUS_OBJECT_STORAGE_USER" env-required:"true"`
	Password            string `yaml:"password" env:"NIMBUS_OBJECT_STORAGE_PASSWORD" env-required:"true"`
	UseSSL              bool   `yaml:"use_ssl" env-default:"false"`
}

type WorkConfig struct {
	Slots          int           `yaml:"slots" env-default:"4"`
	ProvisionDelay time.Duration `yaml:"provision_delay" env-default:"10s"`
}

type MetricsConfig struct {
	Address string `yaml:"address" env:"NIMBUS_METRICS_ADDRESS" env-default:"127.0.0.1:9090"`
}
