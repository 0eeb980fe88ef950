package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/aeroconst/internal/catalog"
	"github.com/specialistvlad/aeroconst/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// safeBuffer is a thread-safe buffer for capturing log output in tests.
type safeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// setupAppTest builds an app with debug logging and returns its output and log buffers.
func setupAppTest(t *testing.T, cfg Config, cat *catalog.Catalog) (*App, *bytes.Buffer, *safeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	conf, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &safeBuffer{}
	testApp := NewApp(out, logs, conf, cat)

	t.Cleanup(func() {
		if os.Getenv("AEROCONST_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return testApp, out, logs
}

func TestNewApp_PublishesAndSeals(t *testing.T) {
	t.Parallel()

	a, _, logs := setupAppTest(t, Config{Command: CommandList}, nil)

	class := a.Class()
	assert.True(t, class.Sealed())
	assert.Equal(t, catalog.Default().Len(), class.Len())
	assert.Equal(t, DefaultClassName, class.Name())
	require.ErrorIs(t, class.DeclareInt("LATE", 1), host.ErrSealed)

	assert.Contains(t, logs.String(), "Registering option constants.")
	assert.Contains(t, logs.String(), "class=Aerospike")
}

func TestNewApp_CustomClassName(t *testing.T) {
	t.Parallel()

	a, out, _ := setupAppTest(t, Config{Command: CommandEval, Args: []string{"AS.OPT_TTL"}, ClassName: "AS"}, nil)
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "16\n", out.String())
}

func TestNewApp_PanicsOnInvalidClass(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(catalog.Entry{Name: "ok", Value: catalog.Int(1)})
	require.NoError(t, err)

	conf, err := NewConfig(Config{Command: CommandList})
	require.NoError(t, err)
	conf.ClassName = "not valid"

	assert.Panics(t, func() { NewApp(&bytes.Buffer{}, &bytes.Buffer{}, conf, cat) })
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	t.Run("all", func(t *testing.T) {
		a, out, _ := setupAppTest(t, Config{Command: CommandList}, nil)
		require.NoError(t, a.Run(context.Background()))
		assert.Contains(t, out.String(), "AEROSPIKE\n")
		assert.Regexp(t, `OPT_CONNECT_TIMEOUT\s+integer\s+OPT_CONNECT_TIMEOUT\s+1\n`, out.String())
		assert.Regexp(t, `OPT_DESERIALIZE\s+text\s+-\s+"deserialize"`, out.String())
	})

	t.Run("selected names as json", func(t *testing.T) {
		a, out, _ := setupAppTest(t, Config{Command: CommandList, Args: []string{"PRIV_READ", "OPT_SLEEP_BETWEEN_RETRIES"}, Format: "json"}, nil)
		require.NoError(t, a.Run(context.Background()))
		assert.JSONEq(t, `{"Aerospike":{"PRIV_READ":10,"OPT_SLEEP_BETWEEN_RETRIES":"sleep_between_retries"}}`, out.String())
	})

	t.Run("unknown name", func(t *testing.T) {
		a, _, _ := setupAppTest(t, Config{Command: CommandList, Args: []string{"NOPE"}}, nil)
		err := a.Run(context.Background())
		require.ErrorIs(t, err, ErrUnknownConstant)
	})
}

func TestRun_Eval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"integer", []string{"Aerospike.POLICY_KEY_SEND"}, "1\n"},
		{"string", []string{"Aerospike.OPT_DESERIALIZE"}, "deserialize\n"},
		{"split arguments", []string{"Aerospike.PRIV_READ", "+", "Aerospike.PRIV_SYS_ADMIN"}, "11\n"},
		{"object", []string{`{ (Aerospike.OPT_POLICY_EXISTS) = Aerospike.POLICY_EXISTS_CREATE }`}, `{"5":1}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out, _ := setupAppTest(t, Config{Command: CommandEval, Args: tt.args}, nil)
			require.NoError(t, a.Run(context.Background()))
			assert.Equal(t, tt.want, out.String())
		})
	}

	t.Run("yaml format", func(t *testing.T) {
		a, out, _ := setupAppTest(t, Config{Command: CommandEval, Args: []string{"Aerospike.OPT_DESERIALIZE"}, Format: "yaml"}, nil)
		require.NoError(t, a.Run(context.Background()))
		assert.Equal(t, "deserialize\n", out.String())
	})

	t.Run("hcl format", func(t *testing.T) {
		a, out, _ := setupAppTest(t, Config{Command: CommandEval, Args: []string{"Aerospike.OPT_DESERIALIZE"}, Format: "hcl"}, nil)
		require.NoError(t, a.Run(context.Background()))
		assert.Equal(t, "\"deserialize\"\n", out.String())
	})

	t.Run("unknown attribute", func(t *testing.T) {
		a, _, _ := setupAppTest(t, Config{Command: CommandEval, Args: []string{"Aerospike.NOPE"}}, nil)
		require.Error(t, a.Run(context.Background()))
	})
}

func TestRun_Verify(t *testing.T) {
	t.Parallel()

	t.Run("matching oracle", func(t *testing.T) {
		a, out, _ := setupAppTest(t, Config{Command: CommandVerify, Args: []string{filepath.Join("..", "oracle", "testdata")}}, nil)
		require.NoError(t, a.Run(context.Background()))
		assert.Equal(t, "OK: 78 integer constants match aerospike-c-client 4.3.1\n", out.String())
	})

	t.Run("drifted oracle", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`
symbol "AS_POLICY_GEN_GT" {
  value = 7
}
`), 0o600))

		cat, err := catalog.New(catalog.Entry{Name: "POLICY_GEN_GT", Symbol: "AS_POLICY_GEN_GT", Value: catalog.Int(2)})
		require.NoError(t, err)

		a, out, logs := setupAppTest(t, Config{Command: CommandVerify, Args: []string{dir}}, cat)
		err = a.Run(context.Background())
		require.ErrorIs(t, err, ErrDriftDetected)
		assert.Equal(t, "DRIFT POLICY_GEN_GT: AS_POLICY_GEN_GT is 2, oracle has 7\n", out.String())
		assert.Contains(t, logs.String(), "Constant drifted.")
	})

	t.Run("missing oracle", func(t *testing.T) {
		a, _, _ := setupAppTest(t, Config{Command: CommandVerify, Args: []string{t.TempDir()}}, nil)
		err := a.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load oracle")
	})
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	a, out, _ := setupAppTest(t, Config{Command: CommandVersion}, nil)
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "aeroconst v"+Version+" (aerospike-c-client 4.3.1)\n", out.String())
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		c, err := NewConfig(Config{Command: CommandList})
		require.NoError(t, err)
		assert.Equal(t, DefaultClassName, c.ClassName)
		assert.Equal(t, "text", c.Format)
	})

	t.Run("normalises format", func(t *testing.T) {
		c, err := NewConfig(Config{Command: CommandList, Format: "YAML"})
		require.NoError(t, err)
		assert.Equal(t, "yaml", c.Format)
	})

	errorCases := []struct {
		name string
		cfg  Config
		msg  string
	}{
		{"no command", Config{}, "a command is required"},
		{"unknown command", Config{Command: "drop"}, `unknown command "drop"`},
		{"bad class", Config{Command: CommandList, ClassName: "1x"}, "invalid class name"},
		{"bad format", Config{Command: CommandList, Format: "xml"}, "unknown output format"},
		{"eval without expression", Config{Command: CommandEval}, "eval requires an expression"},
		{"eval blank expression", Config{Command: CommandEval, Args: []string{" "}}, "eval requires an expression"},
		{"verify without path", Config{Command: CommandVerify}, "verify requires"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
