package model

import (
	"fmt"
	"time"
)

// FileInfo 代表file share上的一個檔案
type FileInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// DisplaySize 顯示用的檔案大小
func (f FileInfo) DisplaySize() string {
	if f.Size >= 1024*1024 {
		return fmt.Sprintf("%d MB", f.Size/1024/1024)
	}
	if f.Size >= 1024 {
		return fmt.Sprintf("%d KB", f.Size/1024)
	}
	return fmt.Sprintf("%d Bytes", f.Size)
}
