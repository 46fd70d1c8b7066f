package kafka

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"

	"github.com/Exela-Tech/Propeerty-Management/service"
)

const (
	TopicPaymentPaid      = "payment.paid"
	TopicRoundingAdjusted = "payment.rounding.adjusted"
)

type Producer struct {
	producer sarama.SyncProducer
}

func NewProducer(broker string) *Producer {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	var producer sarama.SyncProducer
	var err error

	for i := 1; i <= 10; i++ {
		producer, err = sarama.NewSyncProducer([]string{broker}, config)
		if err == nil {
			log.Println("Kafka producer initialized")
			return &Producer{producer: producer}
		}

		log.Printf("Waiting for Kafka... (%d/10) Error: %v", i, err)
		time.Sleep(5 * time.Second)
	}

	log.Fatalf("Failed to start Kafka producer after retries: %v", err)
	return nil
}

func (p *Producer) PublishPaymentPaid(event service.PaymentPaidEvent) {
	p.publish(TopicPaymentPaid, event)
}

func (p *Producer) PublishRoundingAdjusted(event service.RoundingAdjustedEvent) {
	p.publish(TopicRoundingAdjusted, event)
}

func (p *Producer) publish(topic string, data any) {
	payload, err := json.Marshal(map[string]any{
		"event_type": topic,
		"data":       data,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", topic, err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Printf("Failed to send %s Kafka message: %v", topic, err)
		return
	}

	log.Printf("Published %s event: %s", topic, string(payload))
}
