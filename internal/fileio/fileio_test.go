package fileio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertClean fails when a demonstration leaves anything behind in the
// temp directory of a memory filesystem.
func assertClean(t *testing.T, fs afero.Fs) {
	t.Helper()
	entries, err := afero.ReadDir(fs, os.TempDir())
	if err != nil {
		return
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Empty(t, names)
}

func TestTextFile(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	r, err := TextFile(fs)
	require.NoError(t, err)

	assert.True(t, r.FileCreated)
	assert.Contains(t, r.FullContent, "Hello, World!")
	assert.Equal(t, []string{"Hello, World!", "Python is awesome!", "File operations are important."}, r.Lines)
	assert.Equal(t, r.Lines, r.AllLines)
	assert.Contains(t, r.AfterAppend, "Appended line 2")
	assert.Equal(t, "Hello", r.PositionOps.First5Chars)
	assert.EqualValues(t, 5, r.PositionOps.PositionAfter5)
	assert.EqualValues(t, len(r.AfterAppend), r.PositionOps.FileSize)
	assertClean(t, fs)
}

func TestFileModes(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	r, err := FileModes(fs)
	require.NoError(t, err)

	assert.Len(t, r.Modes, len(OpenModes))
	assert.Equal(t, "Append", r.Modes["a"])
	assert.Equal(t, "Initial content", r.AfterWrite)
	assert.Equal(t, "Initial content\nAppended content\nAdded with r+", r.FinalContent)
	assertClean(t, fs)
}

func TestFileModesExclusiveOnDisk(t *testing.T) {
	r, err := FileModes(afero.NewOsFs())
	require.NoError(t, err)
	assert.True(t, r.ExclusiveFails)
}

func TestBinary(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	r, err := Binary(fs)
	require.NoError(t, err)

	assert.Equal(t, []byte("Hello\nWorld"), r.BinaryContent)
	assert.Equal(t, "Hello\nWorld", r.Decoded)
	assert.Equal(t, []int{1, 2, 3}, r.PickledData.List)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, r.PickledData.Dict)
	assert.Equal(t, [3]int{4, 5, 6}, r.PickledData.Tuple)
	assertClean(t, fs)
}

func TestJSON(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	r, err := JSON(fs)
	require.NoError(t, err)

	assert.Equal(t, "Alice", r.LoadedData.Name)
	assert.Equal(t, 30, r.LoadedData.Age)
	assert.Nil(t, r.LoadedData.Nothing)
	assert.True(t, strings.HasSuffix(r.JSONString, "..."))
	assert.Len(t, r.JSONString, 103)
	assert.Equal(t, "Alice", r.ParsedFromString)
	assert.Equal(t, `{"items":[1,2,3],"data":"bytes"}`, r.CustomEncoded)
	assert.Equal(t, "10001", r.ZipByPath)
	assert.Equal(t, "coding", r.SecondHobby)
	assertClean(t, fs)
}

func TestCSV(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	r, err := CSV(fs)
	require.NoError(t, err)

	require.Len(t, r.BasicCSV, 4)
	assert.Equal(t, []string{"Name", "Age", "City"}, r.BasicCSV[0])
	assert.Equal(t, []string{"Alice", "30", "New York"}, r.BasicCSV[1])
	require.Len(t, r.DictCSV, 3)
	assert.Equal(t, map[string]string{"Name": "David", "Age": "28", "City": "Tokyo"}, r.DictCSV[0])
	assert.Len(t, r.TSVData, 2)
	assert.True(t, r.DialectRegistered)
	assert.Equal(t, []string{"Name", "Age", "City"}, r.PipeFirstRow)
	assertClean(t, fs)
}

func TestReadDictsShortRow(t *testing.T) {
	t.Parallel()
	rows, err := ReadDicts(strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{"a": "1", "b": "2"}}, rows)

	_, err = ReadDicts(strings.NewReader(""))
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	r, err := Paths(fs)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("folder", "subfolder", "file.txt"), r.ConstructedPath)
	assert.Equal(t, "file1.txt", r.PathProperties.Name)
	assert.Equal(t, "file1", r.PathProperties.Stem)
	assert.Equal(t, ".txt", r.PathProperties.Suffix)
	assert.True(t, r.PathProperties.Exists)
	assert.True(t, r.PathProperties.IsFile)
	assert.False(t, r.PathProperties.IsDir)
	assert.ElementsMatch(t, []string{"file1.txt", "file2.go", "subdir1", "subdir2"}, r.DirContents)
	assert.Equal(t, []string{"file1.txt", "file3.txt"}, r.TxtFiles)
	assert.Equal(t, "Content 1", r.ReadContent)
	assert.EqualValues(t, 9, r.FileStats.Size)
	assertClean(t, fs)
}

func TestUtilities(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	r, err := Utilities(fs)
	require.NoError(t, err)

	assert.True(t, r.FileCopied)
	assert.True(t, r.DirCopied)
	assert.True(t, r.FileMoved)
	assert.EqualValues(t, 14, r.FileSize)
	assert.Equal(t, ExistsCheck{SourceExists: true, IsFile: true, IsDir: true}, r.ExistsCheck)
	assert.True(t, r.NestedDirsCreated)
	assert.Equal(t, []string{"dest_dir", "moved.txt", "new_directory", "source.txt", "source_dir"}, r.DirectoryListing)

	require.Len(t, r.WalkTree, 3)
	assert.Equal(t, []string{"dest_dir", "new_directory"}, r.WalkTree[0].Dirs)
	assert.Equal(t, []string{"moved.txt", "source.txt"}, r.WalkTree[0].Files)
	assert.Equal(t, "dest_dir", r.WalkTree[1].Root)
	assert.Equal(t, []string{"file1.txt", "file2.txt"}, r.WalkTree[1].Files)
	assertClean(t, fs)
}

func TestCopyFileKeepsModTime(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("x"), 0o600))

	require.NoError(t, CopyFile(fs, "/a.txt", "/b.txt"))

	src, err := fs.Stat("/a.txt")
	require.NoError(t, err)
	dst, err := fs.Stat("/b.txt")
	require.NoError(t, err)
	assert.True(t, src.ModTime().Equal(dst.ModTime()))

	assert.Error(t, CopyFile(fs, "/missing", "/c.txt"))
}

func TestContextManagers(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	r, err := ContextManagers(fs)
	require.NoError(t, err)

	assert.False(t, r.FileClosedInWith)
	assert.True(t, r.FileClosedAfterWith)
	assert.True(t, r.MultipleFilesWritten)
	assert.Equal(t, "Content managed by c", r.CustomContextManager)
	assertClean(t, fs)
}

func TestWithFileClosesOnError(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/f.txt", []byte("data"), 0o644))

	var opened afero.File
	err := WithFile(fs, "/f.txt", os.O_RDONLY, func(f afero.File) error {
		opened = f
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = opened.Read(make([]byte, 1))
	assert.Error(t, err)
}

func TestInMemory(t *testing.T) {
	t.Parallel()
	r, err := InMemory()
	require.NoError(t, err)

	assert.Equal(t, "Hello, World!\nPython StringIO", r.StringIOContent)
	assert.Equal(t, []string{"Hello, World!\n", "Python StringIO"}, r.StringIOLines)
	assert.True(t, bytes.HasPrefix(r.BytesIOContent, []byte("Binary Data")))
	assert.Equal(t, []byte{0x00, 0xff, 0x42}, r.BytesIOContent[len(r.BytesIOContent)-3:])
	assert.Equal(t, "Name,Age\nAlice,30\nBob,25\n", r.CSVInMemory)
}

func TestEncoding(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	r, err := Encoding(fs)
	require.NoError(t, err)

	assert.Equal(t, "Hello, 世界! 🐍 Python", r.UTF8Content)
	assert.Equal(t, "Café", r.Latin1Content)
	assert.Equal(t, []byte{'C', 'a', 'f', 0xe9}, r.Latin1Bytes)
	assert.Equal(t, map[string]bool{"utf-8": true}, r.DecodedAs)
	assertClean(t, fs)
}

func TestDetectEncoding(t *testing.T) {
	t.Parallel()
	assert.Equal(t, map[string]bool{"utf-8": false, "latin-1": true}, DetectEncoding([]byte{0xff, 0xfe}))
	assert.Equal(t, map[string]bool{"utf-8": true}, DetectEncoding([]byte("plain")))
}
