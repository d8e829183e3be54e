package eventbus

import (
	"os"
)

// GetBrokers returns Kafka bootstrap servers from env KAFKA_BOOTSTRAP_SERVERS.
// An empty value means no bus is configured and the caller should fall
// back to NoopBus.
func GetBrokers() string {
	return os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
}

// FromEnv returns a Kafka bus when brokers are configured, NoopBus otherwise.
func FromEnv() (EventBus, error) {
	brokers := GetBrokers()
	if brokers == "" {
		return NoopBus{}, nil
	}
	return NewKafkaEventBus(brokers)
}
