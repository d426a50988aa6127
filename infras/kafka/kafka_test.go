package kafka_test

import (
	"testing"

	"hotelsphere/config"
	"hotelsphere/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomChange struct {
	Table string `json:"table"`
	ID    string `json:"id"`
}

func TestMessageEncode(t *testing.T) {
	message := kafka.Message{
		Key:     "rooms:101",
		Value:   roomChange{Table: "rooms", ID: "101"},
		Headers: map[string]string{"origin": "desk-1"},
	}

	record, err := message.Encode()
	require.NoError(t, err)

	assert.Equal(t, []byte("rooms:101"), record.Key)
	assert.JSONEq(t, `{"table":"rooms","id":"101"}`, string(record.Value))
	assert.Equal(t, "application/json", kafka.Header(record, kafka.HeaderContentType))
	assert.Equal(t, "desk-1", kafka.Header(record, "origin"))
	assert.Empty(t, kafka.Header(record, "missing"))
}

func TestMessageEncodeUnsupportedValue(t *testing.T) {
	message := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := message.Encode()
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	change, err := kafka.Decode[roomChange](kafkaGo.Message{Value: []byte(`{"table":"guests","id":"g-1"}`)})
	require.NoError(t, err)
	assert.Equal(t, roomChange{Table: "guests", ID: "g-1"}, change)

	_, err = kafka.Decode[roomChange](kafkaGo.Message{Key: []byte("k"), Value: []byte("not json")})
	assert.ErrorContains(t, err, `"k"`)
}

func TestReaderNeedsTopic(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"127.0.0.1:9092"}

	client := kafka.New(cfg)
	t.Cleanup(func() { _ = client.Close() })

	assert.Nil(t, client.Reader("group", ""))
}

func TestCloseWithoutWriters(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"127.0.0.1:9092"}

	assert.NoError(t, kafka.New(cfg).Close())
}
