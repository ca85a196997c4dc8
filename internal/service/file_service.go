package service

import (
	"fmt"
	"io"

	"github.com/natheerjardien/cldvpoe/internal/infra/fileshare"
	"github.com/natheerjardien/cldvpoe/internal/model"
)

type IFileService interface {
	UploadFile(directoryName, fileName string, content io.Reader) error
	DownloadFile(directoryName, fileName string) (io.ReadCloser, error)
	ListFiles(directoryName string) ([]model.FileInfo, error)
}

type FileService struct {
	share *fileshare.Share
}

func NewFileService(share *fileshare.Share) *FileService {
	return &FileService{share: share}
}

func (s *FileService) UploadFile(directoryName, fileName string, content io.Reader) error {
	if fileName == "" {
		return fmt.Errorf("%w: fileName", ErrMissingField)
	}
	if directoryName == "" {
		directoryName = "uploads"
	}
	return s.share.Upload(directoryName, fileName, content)
}

func (s *FileService) DownloadFile(directoryName, fileName string) (io.ReadCloser, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: fileName", ErrMissingField)
	}
	if directoryName == "" {
		directoryName = "uploads"
	}
	return s.share.Download(directoryName, fileName)
}

func (s *FileService) ListFiles(directoryName string) ([]model.FileInfo, error) {
	if directoryName == "" {
		directoryName = "uploads"
	}
	return s.share.List(directoryName)
}

var _ IFileService = (*FileService)(nil)
