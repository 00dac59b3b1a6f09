package bloomtesting

import (
	"bufio"
	"math/rand"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	minWordLen = 3
	maxWordLen = 12
)

// Words returns count distinct words. They are read from the configured word
// list when there is one, otherwise generated from the configured seed.
func (c *TestContext) Words(count int) []string {
	if c.Cfg.WordListPath != "" {
		return c.readWords(count)
	}
	return GenerateWords(c.Cfg.Seed, count)
}

// GenerateWords returns count distinct lower case words, a-z only. The same
// seed always produces the same words in the same order.
func GenerateWords(seed int64, count int) []string {
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[string]struct{}, count)
	words := make([]string, 0, count)

	buf := make([]byte, maxWordLen)
	for len(words) < count {
		n := minWordLen + rng.Intn(maxWordLen-minWordLen+1)
		for i := 0; i < n; i++ {
			buf[i] = byte('a' + rng.Intn(26))
		}
		w := string(buf[:n])
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

func (c *TestContext) readWords(count int) []string {
	f, err := os.Open(c.Cfg.WordListPath)
	require.NoError(c.T, err)
	defer f.Close()

	seen := make(map[string]struct{}, count)
	words := make([]string, 0, count)

	scanner := bufio.NewScanner(f)
	for len(words) < count && scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	require.NoError(c.T, scanner.Err())
	require.Len(c.T, words, count, "word list %s has too few distinct words", c.Cfg.WordListPath)
	return words
}

// ProbeSuffix is appended to words to make probes that were never inserted.
// It is derived from the test label so that it is stable between runs.
func (c *TestContext) ProbeSuffix() string {
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(c.Cfg.TestLabelPrefix))
	return "-" + id.String()[:8]
}

// DisjointWords returns a probe per word, none of which is in words. A probe
// that happens to equal one of the words is dropped.
func (c *TestContext) DisjointWords(words []string) []string {
	in := make(map[string]struct{}, len(words))
	for _, w := range words {
		in[w] = struct{}{}
	}

	suffix := c.ProbeSuffix()
	probes := make([]string, 0, len(words))
	for _, w := range words {
		probe := w + suffix
		if _, ok := in[probe]; ok {
			continue
		}
		probes = append(probes, probe)
	}
	return probes
}
