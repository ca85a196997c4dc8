package fileshare

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/natheerjardien/cldvpoe/internal/model"
	"github.com/spf13/afero"
)

var (
	ErrFileNotFound = errors.New("file not found")
)

var (
	dirNameChars  = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)
	fileNameChars = regexp.MustCompile(`[^a-zA-Z0-9_\-.]`)
)

// Share 是階層式(directory+name)檔案儲存
// afero抽象讓測試可以跑在MemMapFs上
type Share struct {
	fs   afero.Fs
	root string
}

func NewShare(fs afero.Fs, root string) *Share {
	return &Share{fs: fs, root: root}
}

// directory與檔名需要先消毒, 遠端share對字元集有限制
func sanitizeDirectoryName(name string) string {
	name = dirNameChars.ReplaceAllString(name, "_")
	return strings.TrimRight(strings.TrimSpace(name), ". ")
}

func sanitizeFileName(name string) string {
	name = fileNameChars.ReplaceAllString(name, "_")
	return strings.TrimRight(strings.TrimSpace(name), ". ")
}

// Upload 上傳檔案, directory不存在會自動建立
func (s *Share) Upload(directoryName, fileName string, content io.Reader) error {
	directoryName = sanitizeDirectoryName(directoryName)
	fileName = sanitizeFileName(fileName)

	dir := filepath.Join(s.root, directoryName)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := s.fs.Create(filepath.Join(dir, fileName))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, content)
	return err
}

// Download 下載檔案, caller負責Close
func (s *Share) Download(directoryName, fileName string) (io.ReadCloser, error) {
	directoryName = sanitizeDirectoryName(directoryName)
	fileName = sanitizeFileName(fileName)

	f, err := s.fs.Open(filepath.Join(s.root, directoryName, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return f, nil
}

// List 列出directory下的檔案, directory不存在回傳空slice
func (s *Share) List(directoryName string) ([]model.FileInfo, error) {
	directoryName = sanitizeDirectoryName(directoryName)

	entries, err := afero.ReadDir(s.fs, filepath.Join(s.root, directoryName))
	if err != nil {
		if os.IsNotExist(err) {
			return []model.FileInfo{}, nil
		}
		return nil, err
	}

	files := make([]model.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, model.FileInfo{
			Name:         entry.Name(),
			Size:         entry.Size(),
			LastModified: entry.ModTime(),
		})
	}
	return files, nil
}
