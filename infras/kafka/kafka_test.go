package kafka_test

import (
	"testing"
	"todoboard/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "todo-1", Value: payload{Name: "alice", Count: 2}}

	out, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("todo-1"), out.Key)
	assert.JSONEq(t, `{"name":"alice","count":2}`, string(out.Value))
}

func TestMessage_ToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDecodeKafkaMessage(t *testing.T) {
	decoded, err := kafka.DecodeKafkaMessage[payload](kafkaGo.Message{
		Key:   []byte("todo-1"),
		Value: []byte(`{"name":"bob","count":5}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "todo-1", decoded.Key)
	assert.Equal(t, payload{Name: "bob", Count: 5}, decoded.Value)

	_, err = kafka.DecodeKafkaMessage[payload](kafkaGo.Message{Value: []byte("not json")})
	assert.Error(t, err)
}
