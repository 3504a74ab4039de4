package codec

// CapIDLogging is the reserved capability ID for host logging.
const CapIDLogging = "wascc:logging"

// OpLog is the single logging operation.
const OpLog = "WriteLog"

// Log severity levels, mapped to small integers on the wire.
const (
	LogError uint32 = 1
	LogWarn  uint32 = 2
	LogInfo  uint32 = 3
	LogDebug uint32 = 4
	LogTrace uint32 = 5
)

// WriteLogRequest sends one log record to the host.
type WriteLogRequest struct {
	Level uint32 `msgpack:"level"`
	Body  string `msgpack:"body"`
}
