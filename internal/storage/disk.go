package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore 本地磁盘存储，对象通过静态路由公开访问
type DiskStore struct {
	root      string
	urlPrefix string
}

func newDiskStore(root, urlPrefix string) *DiskStore {
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &DiskStore{root: root, urlPrefix: urlPrefix}
}

func (s *DiskStore) Save(key string, reader io.Reader, mimeType string) error {
	fileName := s.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return err
	}

	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, reader)
	closeErr := out.Close()
	if err != nil {
		return err
	}
	return closeErr
}

func (s *DiskStore) Delete(key string) error {
	if err := os.Remove(s.fullPath(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *DiskStore) PublicURL(key string) string {
	return s.urlPrefix + filepath.ToSlash(key)
}

func (s *DiskStore) Backend() string {
	return "disk"
}

func (s *DiskStore) fullPath(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}
