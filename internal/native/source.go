package native

import "sort"

// Source resolves a native symbol name (for example "AS_POLICY_RETRY_NONE")
// to its integer value.
type Source interface {
	Lookup(symbol string) (int64, bool)
}

// Table is a Source backed by a map of symbol names to values.
type Table map[string]int64

// Lookup implements Source.
func (t Table) Lookup(symbol string) (int64, bool) {
	v, ok := t[symbol]
	return v, ok
}

// Symbols returns all symbol names in the table, sorted.
func (t Table) Symbols() []string {
	symbols := make([]string, 0, len(t))
	for s := range t {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Linked is the symbol table of the library version this module is built against.
var Linked = Table{
	"OPT_CONNECT_TIMEOUT":       int64(OptConnectTimeout),
	"OPT_READ_TIMEOUT":          int64(OptReadTimeout),
	"OPT_WRITE_TIMEOUT":         int64(OptWriteTimeout),
	"OPT_POLICY_RETRY":          int64(OptPolicyRetry),
	"OPT_POLICY_EXISTS":         int64(OptPolicyExists),
	"OPT_POLICY_KEY":            int64(OptPolicyKey),
	"OPT_SERIALIZER":            int64(OptSerializer),
	"OPT_SCAN_PRIORITY":         int64(OptScanPriority),
	"OPT_SCAN_PERCENTAGE":       int64(OptScanPercentage),
	"OPT_SCAN_CONCURRENTLY":     int64(OptScanConcurrently),
	"OPT_SCAN_NOBINS":           int64(OptScanNoBins),
	"OPT_SCAN_INCLUDELDT":       int64(OptScanIncludeLDT),
	"OPT_POLICY_GEN":            int64(OptPolicyGen),
	"OPT_POLICY_REPLICA":        int64(OptPolicyReplica),
	"OPT_POLICY_CONSISTENCY":    int64(OptPolicyConsistency),
	"OPT_POLICY_COMMIT_LEVEL":   int64(OptPolicyCommitLevel),
	"OPT_TTL":                   int64(OptTTL),
	"USE_BATCH_DIRECT":          int64(UseBatchDirect),
	"COMPRESSION_THRESHOLD":     int64(CompressionThreshold),
	"OPT_POLICY_DURABLE_DELETE": int64(OptPolicyDurableDelete),
	"OPT_SOCKET_TIMEOUT":        int64(OptSocketTimeout),
	"OPT_MAP_ORDER":             int64(OptMapOrder),
	"OPT_MAP_WRITE_MODE":        int64(OptMapWriteMode),

	"SERIALIZER_NONE": int64(SerializerNone),
	"SERIALIZER_PHP":  int64(SerializerPHP),
	"SERIALIZER_USER": int64(SerializerUser),

	"AS_POLICY_RETRY_NONE": int64(PolicyRetryNone),
	"AS_POLICY_RETRY_ONCE": int64(PolicyRetryOnce),

	"AS_POLICY_EXISTS_IGNORE":            int64(PolicyExistsIgnore),
	"AS_POLICY_EXISTS_CREATE":            int64(PolicyExistsCreate),
	"AS_POLICY_EXISTS_UPDATE":            int64(PolicyExistsUpdate),
	"AS_POLICY_EXISTS_REPLACE":           int64(PolicyExistsReplace),
	"AS_POLICY_EXISTS_CREATE_OR_REPLACE": int64(PolicyExistsCreateOrReplace),

	"AS_UDF_TYPE_LUA": int64(UDFTypeLua),

	"AS_SCAN_PRIORITY_AUTO":   int64(ScanPriorityAuto),
	"AS_SCAN_PRIORITY_LOW":    int64(ScanPriorityLow),
	"AS_SCAN_PRIORITY_MEDIUM": int64(ScanPriorityMedium),
	"AS_SCAN_PRIORITY_HIGH":   int64(ScanPriorityHigh),

	"AS_SCAN_STATUS_UNDEF":      int64(ScanStatusUndef),
	"AS_SCAN_STATUS_INPROGRESS": int64(ScanStatusInProgress),
	"AS_SCAN_STATUS_ABORTED":    int64(ScanStatusAborted),
	"AS_SCAN_STATUS_COMPLETED":  int64(ScanStatusCompleted),

	"AS_JOB_STATUS_UNDEF":      int64(JobStatusUndef),
	"AS_JOB_STATUS_INPROGRESS": int64(JobStatusInProgress),
	"AS_JOB_STATUS_COMPLETED":  int64(JobStatusCompleted),

	"AS_POLICY_KEY_DIGEST": int64(PolicyKeyDigest),
	"AS_POLICY_KEY_SEND":   int64(PolicyKeySend),

	"AS_POLICY_GEN_IGNORE": int64(PolicyGenIgnore),
	"AS_POLICY_GEN_EQ":     int64(PolicyGenEQ),
	"AS_POLICY_GEN_GT":     int64(PolicyGenGT),

	"AS_POLICY_REPLICA_MASTER":   int64(PolicyReplicaMaster),
	"AS_POLICY_REPLICA_ANY":      int64(PolicyReplicaAny),
	"AS_POLICY_REPLICA_SEQUENCE": int64(PolicyReplicaSequence),

	"AS_POLICY_CONSISTENCY_LEVEL_ONE": int64(PolicyConsistencyLevelOne),
	"AS_POLICY_CONSISTENCY_LEVEL_ALL": int64(PolicyConsistencyLevelAll),

	"AS_POLICY_COMMIT_LEVEL_ALL":    int64(PolicyCommitLevelAll),
	"AS_POLICY_COMMIT_LEVEL_MASTER": int64(PolicyCommitLevelMaster),

	"AS_PRIVILEGE_USER_ADMIN":     int64(PrivilegeUserAdmin),
	"AS_PRIVILEGE_SYS_ADMIN":      int64(PrivilegeSysAdmin),
	"AS_PRIVILEGE_DATA_ADMIN":     int64(PrivilegeDataAdmin),
	"AS_PRIVILEGE_READ":           int64(PrivilegeRead),
	"AS_PRIVILEGE_READ_WRITE":     int64(PrivilegeReadWrite),
	"AS_PRIVILEGE_READ_WRITE_UDF": int64(PrivilegeReadWriteUDF),

	"AS_MAP_UNORDERED":         int64(MapUnordered),
	"AS_MAP_KEY_ORDERED":       int64(MapKeyOrdered),
	"AS_MAP_KEY_VALUE_ORDERED": int64(MapKeyValueOrdered),

	"AS_MAP_UPDATE":      int64(MapUpdate),
	"AS_MAP_UPDATE_ONLY": int64(MapUpdateOnly),
	"AS_MAP_CREATE_ONLY": int64(MapCreateOnly),

	"AS_MAP_RETURN_NONE":          int64(MapReturnNone),
	"AS_MAP_RETURN_INDEX":         int64(MapReturnIndex),
	"AS_MAP_RETURN_REVERSE_INDEX": int64(MapReturnReverseIndex),
	"AS_MAP_RETURN_RANK":          int64(MapReturnRank),
	"AS_MAP_RETURN_REVERSE_RANK":  int64(MapReturnReverseRank),
	"AS_MAP_RETURN_COUNT":         int64(MapReturnCount),
	"AS_MAP_RETURN_KEY":           int64(MapReturnKey),
	"AS_MAP_RETURN_VALUE":         int64(MapReturnValue),
	"AS_MAP_RETURN_KEY_VALUE":     int64(MapReturnKeyValue),
}
