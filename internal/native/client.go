package native

// LibraryVersion is the version of the C client the values below were taken from.
const LibraryVersion = "4.3.1"

// PolicyRetry mirrors as_policy_retry.
type PolicyRetry int64

const (
	PolicyRetryNone PolicyRetry = iota // AS_POLICY_RETRY_NONE
	PolicyRetryOnce                    // AS_POLICY_RETRY_ONCE
)

// PolicyExists mirrors as_policy_exists.
type PolicyExists int64

const (
	PolicyExistsIgnore          PolicyExists = iota // AS_POLICY_EXISTS_IGNORE
	PolicyExistsCreate                              // AS_POLICY_EXISTS_CREATE
	PolicyExistsUpdate                              // AS_POLICY_EXISTS_UPDATE
	PolicyExistsReplace                             // AS_POLICY_EXISTS_REPLACE
	PolicyExistsCreateOrReplace                     // AS_POLICY_EXISTS_CREATE_OR_REPLACE
)

// UDFType mirrors as_udf_type.
type UDFType int64

const (
	UDFTypeLua UDFType = iota // AS_UDF_TYPE_LUA
)

// ScanPriority mirrors as_scan_priority.
type ScanPriority int64

const (
	ScanPriorityAuto   ScanPriority = iota // AS_SCAN_PRIORITY_AUTO
	ScanPriorityLow                        // AS_SCAN_PRIORITY_LOW
	ScanPriorityMedium                     // AS_SCAN_PRIORITY_MEDIUM
	ScanPriorityHigh                       // AS_SCAN_PRIORITY_HIGH
)

// ScanStatus mirrors as_scan_status.
type ScanStatus int64

const (
	ScanStatusUndef      ScanStatus = iota // AS_SCAN_STATUS_UNDEF
	ScanStatusInProgress                   // AS_SCAN_STATUS_INPROGRESS
	ScanStatusAborted                      // AS_SCAN_STATUS_ABORTED
	ScanStatusCompleted                    // AS_SCAN_STATUS_COMPLETED
)

// JobStatus mirrors as_job_status.
type JobStatus int64

const (
	JobStatusUndef      JobStatus = iota // AS_JOB_STATUS_UNDEF
	JobStatusInProgress                  // AS_JOB_STATUS_INPROGRESS
	JobStatusCompleted                   // AS_JOB_STATUS_COMPLETED
)

// PolicyKey mirrors as_policy_key.
type PolicyKey int64

const (
	PolicyKeyDigest PolicyKey = iota // AS_POLICY_KEY_DIGEST
	PolicyKeySend                    // AS_POLICY_KEY_SEND
)

// PolicyGen mirrors as_policy_gen.
type PolicyGen int64

const (
	PolicyGenIgnore PolicyGen = iota // AS_POLICY_GEN_IGNORE
	PolicyGenEQ                      // AS_POLICY_GEN_EQ
	PolicyGenGT                      // AS_POLICY_GEN_GT
)

// PolicyReplica mirrors as_policy_replica.
type PolicyReplica int64

const (
	PolicyReplicaMaster   PolicyReplica = iota // AS_POLICY_REPLICA_MASTER
	PolicyReplicaAny                           // AS_POLICY_REPLICA_ANY
	PolicyReplicaSequence                      // AS_POLICY_REPLICA_SEQUENCE
)

// PolicyConsistencyLevel mirrors as_policy_consistency_level.
type PolicyConsistencyLevel int64

const (
	PolicyConsistencyLevelOne PolicyConsistencyLevel = iota // AS_POLICY_CONSISTENCY_LEVEL_ONE
	PolicyConsistencyLevelAll                               // AS_POLICY_CONSISTENCY_LEVEL_ALL
)

// PolicyCommitLevel mirrors as_policy_commit_level.
type PolicyCommitLevel int64

const (
	PolicyCommitLevelAll    PolicyCommitLevel = iota // AS_POLICY_COMMIT_LEVEL_ALL
	PolicyCommitLevelMaster                          // AS_POLICY_COMMIT_LEVEL_MASTER
)

// PrivilegeCode mirrors as_privilege_code. The data privileges start at 10
// in the server protocol, so the values are not contiguous.
type PrivilegeCode int64

const (
	PrivilegeUserAdmin    PrivilegeCode = 0  // AS_PRIVILEGE_USER_ADMIN
	PrivilegeSysAdmin     PrivilegeCode = 1  // AS_PRIVILEGE_SYS_ADMIN
	PrivilegeDataAdmin    PrivilegeCode = 2  // AS_PRIVILEGE_DATA_ADMIN
	PrivilegeRead         PrivilegeCode = 10 // AS_PRIVILEGE_READ
	PrivilegeReadWrite    PrivilegeCode = 11 // AS_PRIVILEGE_READ_WRITE
	PrivilegeReadWriteUDF PrivilegeCode = 12 // AS_PRIVILEGE_READ_WRITE_UDF
)

// MapOrder mirrors as_map_order. Value 2 is reserved by the server.
type MapOrder int64

const (
	MapUnordered       MapOrder = 0 // AS_MAP_UNORDERED
	MapKeyOrdered      MapOrder = 1 // AS_MAP_KEY_ORDERED
	MapKeyValueOrdered MapOrder = 3 // AS_MAP_KEY_VALUE_ORDERED
)

// MapWriteMode mirrors as_map_write_mode.
type MapWriteMode int64

const (
	MapUpdate     MapWriteMode = iota // AS_MAP_UPDATE
	MapUpdateOnly                     // AS_MAP_UPDATE_ONLY
	MapCreateOnly                     // AS_MAP_CREATE_ONLY
)

// MapReturnType mirrors as_map_return_type.
type MapReturnType int64

const (
	MapReturnNone         MapReturnType = iota // AS_MAP_RETURN_NONE
	MapReturnIndex                             // AS_MAP_RETURN_INDEX
	MapReturnReverseIndex                      // AS_MAP_RETURN_REVERSE_INDEX
	MapReturnRank                              // AS_MAP_RETURN_RANK
	MapReturnReverseRank                       // AS_MAP_RETURN_REVERSE_RANK
	MapReturnCount                             // AS_MAP_RETURN_COUNT
	MapReturnKey                               // AS_MAP_RETURN_KEY
	MapReturnValue                             // AS_MAP_RETURN_VALUE
	MapReturnKeyValue                          // AS_MAP_RETURN_KEY_VALUE
)
