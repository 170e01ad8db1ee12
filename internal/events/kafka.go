package events

import (
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/sirupsen/logrus"
)

var _ Publisher = (*KafkaPublisher)(nil)

type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaPublisher(brokers, topic string) (*KafkaPublisher, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
	})
	if err != nil {
		return nil, err
	}

	p := &KafkaPublisher{producer: producer, topic: topic}

	// Delivery reports are only logged. A lost change event is not worth
	// failing the save that produced it.
	go func() {
		for e := range producer.Events() {
			if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
				logrus.Errorf("error delivering record event: %v", m.TopicPartition.Error)
			}
		}
	}()

	return p, nil
}

func (k *KafkaPublisher) PublishRecordChange(ctx context.Context, event *RecordEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &k.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.Kind),
		Value:          value,
	}, nil)
}

func (k *KafkaPublisher) Close() {
	k.producer.Flush(1000)
	k.producer.Close()
}
