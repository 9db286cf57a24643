package service

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"sync"
	"testing"

	"forever-captured-server/internal/db"
	"forever-captured-server/internal/model"
	"forever-captured-server/internal/repository"
	"forever-captured-server/internal/storage"
	"forever-captured-server/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// memStore 测试用内存对象存储，可注入失败。
type memStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	urlPrefix string
	saveErr   error
	deleteErr error
}

func newMemStore(urlPrefix string) *memStore {
	return &memStore{objects: map[string][]byte{}, urlPrefix: urlPrefix}
}

func (m *memStore) Save(key string, reader io.Reader, mimeType string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *memStore) Delete(key string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memStore) PublicURL(key string) string {
	return m.urlPrefix + key
}

func (m *memStore) Backend() string {
	return "mem"
}

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

type testEnv struct {
	svc     *AppService
	gdb     *gorm.DB
	photos  *memStore
	avatars *memStore
}

func setupTestService(t *testing.T) *testEnv {
	t.Helper()

	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(
		repository.NewGuestRepository(gdb),
		repository.NewPhotoRepository(gdb),
		repository.NewEventRepository(gdb),
		repository.NewSettingRepository(gdb),
		repository.NewSystemRepository(gdb),
	)
	svc := NewAppService(repos)
	svc.ClearCache()

	photos := newMemStore("/photos/")
	avatars := newMemStore("/avatars/")
	prevPhotos, prevAvatars := storage.Photos(), storage.Avatars()
	storage.SetStoresForTest(photos, avatars)
	t.Cleanup(func() {
		storage.SetStoresForTest(prevPhotos, prevAvatars)
	})

	return &testEnv{svc: svc, gdb: gdb, photos: photos, avatars: avatars}
}

func createTestGuest(t *testing.T, displayName string, admin bool) *model.Guest {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("guest123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	guest := model.Guest{
		DisplayName: displayName,
		Password:    string(hashed),
		Admin:       admin,
		Status:      1,
	}
	if err := db.DB.Create(&guest).Error; err != nil {
		t.Fatalf("创建宾客失败: %v", err)
	}
	return &guest
}

func mustFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入分段失败: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 writer 失败: %v", err)
	}

	req := httptest.NewRequest("POST", "http://example/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(int64(len(content)) + 1024); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	fhs := req.MultipartForm.File["file"]
	if len(fhs) != 1 {
		t.Fatalf("期望 1 file header，实际为 %d", len(fhs))
	}
	return fhs[0]
}

func expectServiceError(t *testing.T, err error, code ErrorCode) {
	t.Helper()

	serviceErr, ok := AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为 %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %s，实际为 %s (%s)", code, serviceErr.Code, serviceErr.Message)
	}
}
