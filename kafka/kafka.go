package kafka

import (
	"encoding/json"
	"os"

	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/SujayCh07/codelinc10-sub000/worker"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"
)

var (
	EnrichmentProducer *kafka.Producer
	RequestTopic       string = "insight_enrich_request"
	ResponseTopic      string = "insight_enrich_response"
	GroupID            string = "enrichment-response-consumer"
)

func InitProducer() error {
	config := &kafka.ConfigMap{
		"bootstrap.servers": os.Getenv("KAFKA_BOOTSTRAP_SERVERS"),
		"sasl.username":     os.Getenv("KAFKA_API_KEY"),
		"sasl.password":     os.Getenv("KAFKA_API_SECRET"),
		"security.protocol": "SASL_SSL",
		"sasl.mechanism":    "PLAIN",
	}

	var err error
	EnrichmentProducer, err = kafka.NewProducer(config)
	if err != nil {
		logger.Get().Error("failed to initialize Kafka producer",
			zap.String("bootstrap_servers", os.Getenv("KAFKA_BOOTSTRAP_SERVERS")),
			zap.Error(err))
		return err
	}

	logger.Get().Info("Kafka producer initialized successfully",
		zap.String("bootstrap_servers", os.Getenv("KAFKA_BOOTSTRAP_SERVERS")))
	return nil
}

// ProduceEnrichmentRequest publishes a profile snapshot for the external
// enrichment service. Best effort: a failed publish is logged and the
// locally computed insight stands.
func ProduceEnrichmentRequest(req *models.EnrichmentRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &RequestTopic, Partition: kafka.PartitionAny},
		Value:          payload,
	}

	err = EnrichmentProducer.Produce(msg, nil)
	if err != nil {
		logger.Get().Error("failed to produce enrichment request",
			zap.String("topic", RequestTopic),
			zap.String("request_id", req.RequestID),
			zap.Error(err))
		return err
	}

	logger.Get().Debug("enrichment request produced",
		zap.String("topic", RequestTopic),
		zap.String("request_id", req.RequestID))
	return nil
}

// StartKafkaConsumer subscribes to the enrichment response topic and hands
// each payload to the worker pool, partitioned so responses for one user
// are processed in order.
func StartKafkaConsumer(pool *worker.WorkerPool) error {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  os.Getenv("KAFKA_BOOTSTRAP_SERVERS"),
		"security.protocol":  "SASL_SSL",
		"sasl.mechanisms":    "PLAIN",
		"sasl.username":      os.Getenv("KAFKA_API_KEY"),
		"sasl.password":      os.Getenv("KAFKA_API_SECRET"),
		"session.timeout.ms": "45000",
		"group.id":           GroupID,
		"auto.offset.reset":  "latest",
	})
	if err != nil {
		logger.Get().Error("failed to create consumer",
			zap.String("bootstrap_servers", os.Getenv("KAFKA_BOOTSTRAP_SERVERS")),
			zap.Error(err))
		return err
	}

	err = consumer.Subscribe(ResponseTopic, nil)
	if err != nil {
		logger.Get().Error("failed to subscribe to topic",
			zap.String("topic", ResponseTopic),
			zap.Error(err))
		return err
	}

	logger.Get().Info("Kafka consumer started successfully",
		zap.String("topic", ResponseTopic),
		zap.String("group_id", GroupID))

	go func() {
		for {
			msg, err := consumer.ReadMessage(-1)
			if err != nil {
				logger.Get().Error("consumer error",
					zap.String("topic", ResponseTopic),
					zap.Error(err))
				continue
			}

			logger.Get().Debug("received enrichment response",
				zap.String("topic", ResponseTopic))
			pool.Submit(msg.Value, msg.TopicPartition.Partition)
		}
	}()
	return nil
}
