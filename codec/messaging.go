package codec

// CapIDMessaging is the capability ID for message broker providers.
const CapIDMessaging = "wascc:messaging"

// Messaging operation names.
const (
	OpPublish        = "Publish"
	OpRequest        = "Request"
	OpDeliverMessage = "DeliverMessage"
)

// BrokerMessage is a message published to, or delivered from, the broker.
type BrokerMessage struct {
	Subject string `msgpack:"subject"`
	ReplyTo string `msgpack:"reply_to"`
	Body    []byte `msgpack:"body"`
}

// PublishMessage wraps a broker message for the publish operation.
type PublishMessage struct {
	Message BrokerMessage `msgpack:"message"`
}

// RequestMessage is a request expecting a reply within the timeout.
type RequestMessage struct {
	Subject   string `msgpack:"subject"`
	Body      []byte `msgpack:"body"`
	TimeoutMs int64  `msgpack:"timeout_ms"`
}
