package bloomtesting

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/joho/godotenv"
)

const (
	// EnvWordList names a newline separated word list to use instead of
	// generated words.
	EnvWordList = "BLOOM_TEST_WORDLIST"

	DefaultEnvFile = ".env"
	DefaultSeed    = int64(1698342521)
)

type TestContext struct {
	Log logger.Logger
	Cfg TestConfig
	T   *testing.T
}

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to leave it at the default so
	// that the generated words are the same from run to run.
	Seed            int64
	TestLabelPrefix string
	WordListPath    string // can be "", then EnvWordList is consulted
	EnvFile         string // can be "", defaults to DefaultEnvFile
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)

	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = DefaultEnvFile
	}
	// Note: a missing env file is normal, only a malformed one is an error.
	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("failed to load %s: %v", cfg.EnvFile, err)
	}
	if cfg.WordListPath == "" {
		cfg.WordListPath = os.Getenv(EnvWordList)
	}
	c.Cfg = cfg

	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
