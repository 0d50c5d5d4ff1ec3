package hist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	gzip "github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	var path = filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSumsAndSkipsMalformed(t *testing.T) {
	var c = make(Counts)
	require.NoError(t, c.Load(strings.NewReader("foo\t60\n\nbar\t1\t2\nbaz\nfoo\t5\n  qux\t7  \n")))
	assert.Equal(t, Counts{"foo": 65, "qux": 7}, c)
}

func TestLoadBadCount(t *testing.T) {
	var c = make(Counts)
	err := c.Load(strings.NewReader("foo\t1\nbar\tmany\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestFilterThresholdAndOrder(t *testing.T) {
	var c = Counts{"b": 100, "a": 150, "c": 99, "B": 200}
	assert.Equal(t, []string{"B", "a", "b"}, c.Filter(100))
	assert.Equal(t, []string{"B", "a"}, c.Filter(101))
	assert.Empty(t, c.Filter(1000))
}

func TestFilterMonotonic(t *testing.T) {
	var c = Counts{"a": 1, "b": 5, "c": 5, "d": 10, "e": 0}
	var prev = len(c.Filter(-1))
	for threshold := int64(0); threshold <= 11; threshold++ {
		var keys = c.Filter(threshold)
		assert.LessOrEqual(t, len(keys), prev)
		for i := 1; i < len(keys); i++ {
			assert.Less(t, keys[i-1], keys[i])
		}
		prev = len(keys)
	}
}

func TestSumIndependentOfOrder(t *testing.T) {
	var inputs = []string{"x\t1\ny\t2\n", "x\t10\nz\t3\n", "y\t20\nx\t100\n"}
	var forward, backward = make(Counts), make(Counts)
	for i := range inputs {
		require.NoError(t, forward.Load(strings.NewReader(inputs[i])))
		require.NoError(t, backward.Load(strings.NewReader(inputs[len(inputs)-1-i])))
	}
	assert.Equal(t, forward, backward)
	assert.Equal(t, int64(111), forward["x"])
}

func TestFindFiles(t *testing.T) {
	var dir = t.TempDir()
	writeFile(t, dir, "b.hist", "")
	writeFile(t, dir, "a.hist", "")
	writeFile(t, dir, "c.hist.gz", "")
	writeFile(t, dir, "notes.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.hist"), 0755))
	writeFile(t, filepath.Join(dir, "sub.hist"), "d.hist", "")

	files, err := FindFiles(dir, DefaultExt)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hist"),
		filepath.Join(dir, "b.hist"),
		filepath.Join(dir, "c.hist.gz"),
	}, files)
}

func TestLoadFileGzip(t *testing.T) {
	var (
		dir  = t.TempDir()
		path = filepath.Join(dir, "a.hist.gz")
	)
	file, err := os.Create(path)
	require.NoError(t, err)
	var w = gzip.NewWriter(file)
	_, err = w.Write([]byte("foo\t7\nbar\t3\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, file.Close())

	var c = make(Counts)
	require.NoError(t, c.LoadFile(path))
	assert.Equal(t, Counts{"foo": 7, "bar": 3}, c)
}

func TestLoadFileMissing(t *testing.T) {
	var c = make(Counts)
	assert.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "none.hist")))
}

func TestFindFilesLiteralDir(t *testing.T) {
	for _, name := range []string{"run[1]", "plate[A", "well*?"} {
		var dir = filepath.Join(t.TempDir(), name)
		require.NoError(t, os.Mkdir(dir, 0755))
		writeFile(t, dir, "a.hist", "foo\t200\n")

		files, err := FindFiles(dir, DefaultExt)
		require.NoError(t, err, name)
		assert.Equal(t, []string{filepath.Join(dir, "a.hist")}, files, name)
	}
}

func TestFindFilesMissingDir(t *testing.T) {
	files, err := FindFiles(filepath.Join(t.TempDir(), "none"), DefaultExt)
	require.NoError(t, err)
	assert.Empty(t, files)
}
