package native

// Option identifies a key of the per-call options array accepted by the
// binding. These are defined by the binding's own headers, not by the C
// client, but they are versioned together with it.
type Option int64

const (
	OptConnectTimeout       Option = iota + 1 // OPT_CONNECT_TIMEOUT
	OptReadTimeout                            // OPT_READ_TIMEOUT
	OptWriteTimeout                           // OPT_WRITE_TIMEOUT
	OptPolicyRetry                            // OPT_POLICY_RETRY
	OptPolicyExists                           // OPT_POLICY_EXISTS
	OptSerializer                             // OPT_SERIALIZER
	OptScanPriority                           // OPT_SCAN_PRIORITY
	OptScanPercentage                         // OPT_SCAN_PERCENTAGE
	OptScanConcurrently                       // OPT_SCAN_CONCURRENTLY
	OptScanNoBins                             // OPT_SCAN_NOBINS
	OptPolicyKey                              // OPT_POLICY_KEY
	OptPolicyGen                              // OPT_POLICY_GEN
	OptPolicyReplica                          // OPT_POLICY_REPLICA
	OptPolicyConsistency                      // OPT_POLICY_CONSISTENCY
	OptPolicyCommitLevel                      // OPT_POLICY_COMMIT_LEVEL
	OptTTL                                    // OPT_TTL
	UseBatchDirect                            // USE_BATCH_DIRECT
	CompressionThreshold                      // COMPRESSION_THRESHOLD
	OptScanIncludeLDT                         // OPT_SCAN_INCLUDELDT
	OptPolicyDurableDelete                    // OPT_POLICY_DURABLE_DELETE
	OptSocketTimeout                          // OPT_SOCKET_TIMEOUT
	OptMapOrder                               // OPT_MAP_ORDER
	OptMapWriteMode                           // OPT_MAP_WRITE_MODE
)

// Serializer selects how values without a native server type are stored.
type Serializer int64

const (
	SerializerNone Serializer = iota // SERIALIZER_NONE
	SerializerPHP                    // SERIALIZER_PHP
	SerializerUser                   // SERIALIZER_USER
)

// Textual option keys. Their values are fixed by the binding.
const (
	PolicyOptDeserialize         = "deserialize"           // PHP_POLICY_OPT_DESERIALIZE
	PolicyOptSleepBetweenRetries = "sleep_between_retries" // PHP_POLICY_OPT_SLEEP_BETWEEN_RETRIES
)
