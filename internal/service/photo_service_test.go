package service

import (
	"errors"
	"testing"

	"forever-captured-server/internal/db"
	"forever-captured-server/internal/model"
	"forever-captured-server/internal/testutils"
)

// 测试内容：验证登记外部照片时空地址与非 http(s) 地址会被拒绝。
func TestCreatePhoto_RejectsInvalidURL(t *testing.T) {
	env := setupTestService(t)
	guest := createTestGuest(t, "Priya", false)

	if _, err := env.svc.CreatePhoto(guest.ID, "", ""); err == nil {
		t.Fatalf("期望空地址被拒绝")
	} else {
		expectServiceError(t, err, ErrorCodeValidation)
	}

	if _, err := env.svc.CreatePhoto(guest.ID, "   ", ""); err == nil {
		t.Fatalf("期望空白地址被拒绝")
	}

	if _, err := env.svc.CreatePhoto(guest.ID, "ftp://example.com/a.jpg", ""); err == nil {
		t.Fatalf("期望非 http(s) 地址被拒绝")
	}
}

// 测试内容：验证未知仪式标签被拒绝，合法标签与空标签被接受。
func TestCreatePhoto_EventTagValidation(t *testing.T) {
	env := setupTestService(t)
	guest := createTestGuest(t, "Priya", false)

	if _, err := env.svc.CreatePhoto(guest.ID, "https://cdn.example.com/a.jpg", "Prom"); err == nil {
		t.Fatalf("期望未知标签被拒绝")
	} else {
		expectServiceError(t, err, ErrorCodeValidation)
	}

	photo, err := env.svc.CreatePhoto(guest.ID, "https://cdn.example.com/a.jpg", "Haldi")
	if err != nil {
		t.Fatalf("CreatePhoto: %v", err)
	}
	if photo.EventTag != "Haldi" {
		t.Fatalf("期望标签 Haldi，实际为 %q", photo.EventTag)
	}

	if _, err := env.svc.CreatePhoto(guest.ID, "https://cdn.example.com/b.jpg", ""); err != nil {
		t.Fatalf("期望空标签（未分类）被接受: %v", err)
	}
}

// 测试内容：验证新登记的照片点赞为零、上传者取自会话身份。
func TestCreatePhoto_InitialState(t *testing.T) {
	env := setupTestService(t)
	guest := createTestGuest(t, "Priya", false)

	photo, err := env.svc.CreatePhoto(guest.ID, "https://cdn.example.com/a.jpg", "")
	if err != nil {
		t.Fatalf("CreatePhoto: %v", err)
	}

	if photo.Likes != 0 || len(photo.LikedBy) != 0 {
		t.Fatalf("期望初始无点赞，实际为 likes=%d liked_by=%v", photo.Likes, photo.LikedBy)
	}
	if photo.Uploader != "Priya" || !photo.Mine {
		t.Fatalf("期望上传者为 Priya 本人，实际为 %+v", photo)
	}
	if photo.UploadedAt == 0 {
		t.Fatalf("期望 uploaded_at 被填充")
	}
}

// 测试内容：验证照片列表按上传时间倒序返回。
func TestListPhotos_NewestFirst(t *testing.T) {
	env := setupTestService(t)
	guest := createTestGuest(t, "Priya", false)

	old := model.Photo{URL: "https://cdn.example.com/old.jpg", GuestID: guest.ID, UploadedAt: 100}
	mid := model.Photo{URL: "https://cdn.example.com/mid.jpg", GuestID: guest.ID, UploadedAt: 200}
	latest := model.Photo{URL: "https://cdn.example.com/new.jpg", GuestID: guest.ID, UploadedAt: 300}
	for _, p := range []*model.Photo{&old, &mid, &latest} {
		if err := db.DB.Create(p).Error; err != nil {
			t.Fatalf("创建照片失败: %v", err)
		}
	}

	photos, err := env.svc.ListPhotos(guest.ID)
	if err != nil {
		t.Fatalf("ListPhotos: %v", err)
	}
	if len(photos) != 3 {
		t.Fatalf("期望 3 张照片，实际为 %d", len(photos))
	}
	if photos[0].ID != latest.ID || photos[2].ID != old.ID {
		t.Fatalf("非预期排序: %d, %d, %d", photos[0].ID, photos[1].ID, photos[2].ID)
	}
}

// 测试内容：验证重复点赞互为逆操作，且计数始终等于点赞人集合大小。
func TestToggleLike_Involution(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)
	liker := createTestGuest(t, "Rahul", false)

	created, err := env.svc.CreatePhoto(uploader.ID, "https://cdn.example.com/a.jpg", "")
	if err != nil {
		t.Fatalf("CreatePhoto: %v", err)
	}

	liked, err := env.svc.ToggleLike(created.ID, liker.ID)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if liked.Likes != 1 || len(liked.LikedBy) != 1 || liked.LikedBy[0] != "Rahul" || !liked.LikedByMe {
		t.Fatalf("期望 Rahul 点赞生效，实际为 %+v", liked)
	}

	unliked, err := env.svc.ToggleLike(created.ID, liker.ID)
	if err != nil {
		t.Fatalf("ToggleLike(第二次): %v", err)
	}
	if unliked.Likes != 0 || len(unliked.LikedBy) != 0 || unliked.LikedByMe {
		t.Fatalf("期望第二次点击撤销点赞，实际为 %+v", unliked)
	}

	// 计数列与点赞行数保持一致
	var likeRows int64
	if err := db.DB.Model(&model.PhotoLike{}).Where("photo_id = ?", created.ID).Count(&likeRows).Error; err != nil {
		t.Fatalf("统计点赞行失败: %v", err)
	}
	if likeRows != 0 {
		t.Fatalf("期望点赞行为 0，实际为 %d", likeRows)
	}
}

// 测试内容：验证多名宾客点赞互不影响，计数与集合一致。
func TestToggleLike_MultipleGuests(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)
	rahul := createTestGuest(t, "Rahul", false)
	anita := createTestGuest(t, "Anita", false)

	created, err := env.svc.CreatePhoto(uploader.ID, "https://cdn.example.com/a.jpg", "")
	if err != nil {
		t.Fatalf("CreatePhoto: %v", err)
	}

	if _, err := env.svc.ToggleLike(created.ID, rahul.ID); err != nil {
		t.Fatalf("ToggleLike(rahul): %v", err)
	}
	photo, err := env.svc.ToggleLike(created.ID, anita.ID)
	if err != nil {
		t.Fatalf("ToggleLike(anita): %v", err)
	}

	if photo.Likes != 2 || int64(len(photo.LikedBy)) != photo.Likes {
		t.Fatalf("期望 likes == |likedBy| == 2，实际为 likes=%d liked_by=%v", photo.Likes, photo.LikedBy)
	}

	// Rahul 撤销后只剩 Anita
	photo, err = env.svc.ToggleLike(created.ID, rahul.ID)
	if err != nil {
		t.Fatalf("ToggleLike(rahul 撤销): %v", err)
	}
	if photo.Likes != 1 || len(photo.LikedBy) != 1 || photo.LikedBy[0] != "Anita" {
		t.Fatalf("期望只剩 Anita 的点赞，实际为 %+v", photo)
	}
}

// 测试内容：验证点赞不存在的照片返回 not_found。
func TestToggleLike_PhotoNotFound(t *testing.T) {
	env := setupTestService(t)
	guest := createTestGuest(t, "Priya", false)

	_, err := env.svc.ToggleLike(9999, guest.ID)
	expectServiceError(t, err, ErrorCodeNotFound)
}

// 测试内容：验证上传者本人可删除照片，存储对象与点赞一并清理。
func TestDeletePhoto_ByOwner(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)
	liker := createTestGuest(t, "Rahul", false)

	photo, err := env.svc.UploadPhoto(uploader.ID, mustFileHeader(t, "a.png", testutils.MinimalPNG()), "Wedding")
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	if env.photos.count() != 1 {
		t.Fatalf("期望存储中有 1 个对象，实际为 %d", env.photos.count())
	}
	if _, err := env.svc.ToggleLike(photo.ID, liker.ID); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	if err := env.svc.DeletePhoto(photo.ID, uploader.ID, false); err != nil {
		t.Fatalf("DeletePhoto: %v", err)
	}

	if env.photos.count() != 0 {
		t.Fatalf("期望存储对象被删除，实际为 %d", env.photos.count())
	}
	var photoRows, likeRows int64
	_ = db.DB.Model(&model.Photo{}).Count(&photoRows).Error
	_ = db.DB.Model(&model.PhotoLike{}).Count(&likeRows).Error
	if photoRows != 0 || likeRows != 0 {
		t.Fatalf("期望记录与点赞被清理，实际为 photos=%d likes=%d", photoRows, likeRows)
	}
}

// 测试内容：验证管理员可删除他人照片。
func TestDeletePhoto_ByAdmin(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)
	admin := createTestGuest(t, "Admin", true)

	photo, err := env.svc.CreatePhoto(uploader.ID, "https://cdn.example.com/a.jpg", "")
	if err != nil {
		t.Fatalf("CreatePhoto: %v", err)
	}

	if err := env.svc.DeletePhoto(photo.ID, admin.ID, true); err != nil {
		t.Fatalf("期望管理员删除成功: %v", err)
	}
}

// 测试内容：验证非上传者的普通宾客删除他人照片返回 forbidden，记录保留。
func TestDeletePhoto_ForbiddenForOthers(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)
	other := createTestGuest(t, "Rahul", false)

	photo, err := env.svc.CreatePhoto(uploader.ID, "https://cdn.example.com/a.jpg", "")
	if err != nil {
		t.Fatalf("CreatePhoto: %v", err)
	}

	err = env.svc.DeletePhoto(photo.ID, other.ID, false)
	expectServiceError(t, err, ErrorCodeForbidden)

	var count int64
	_ = db.DB.Model(&model.Photo{}).Count(&count).Error
	if count != 1 {
		t.Fatalf("期望照片记录保留，实际为 %d", count)
	}
}

// 测试内容：验证删除不存在的照片返回 not_found。
func TestDeletePhoto_NotFound(t *testing.T) {
	env := setupTestService(t)
	guest := createTestGuest(t, "Priya", false)

	err := env.svc.DeletePhoto(12345, guest.ID, false)
	expectServiceError(t, err, ErrorCodeNotFound)
}

// 测试内容：验证存储对象删除失败时操作中止，元数据保留。
func TestDeletePhoto_AbortsWhenStoreDeleteFails(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)

	photo, err := env.svc.UploadPhoto(uploader.ID, mustFileHeader(t, "a.png", testutils.MinimalPNG()), "")
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}

	env.photos.deleteErr = errors.New("s3 unavailable")
	err = env.svc.DeletePhoto(photo.ID, uploader.ID, false)
	expectServiceError(t, err, ErrorCodeInternal)

	var count int64
	_ = db.DB.Model(&model.Photo{}).Count(&count).Error
	if count != 1 {
		t.Fatalf("期望删除中止后记录保留，实际为 %d", count)
	}
}

// 测试内容：验证外链照片（无存储对象）删除时跳过外部清理。
func TestDeletePhoto_ExternalPhotoSkipsStore(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)

	photo, err := env.svc.CreatePhoto(uploader.ID, "https://cdn.example.com/a.jpg", "")
	if err != nil {
		t.Fatalf("CreatePhoto: %v", err)
	}

	// 即使存储不可用，外链照片也应能删除
	env.photos.deleteErr = errors.New("s3 unavailable")
	if err := env.svc.DeletePhoto(photo.ID, uploader.ID, false); err != nil {
		t.Fatalf("期望外链照片删除成功: %v", err)
	}
}

// 测试内容：验证两阶段上传成功时对象与记录都存在，URL 来自存储。
func TestUploadPhoto_SavesObjectAndRecord(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)

	photo, err := env.svc.UploadPhoto(uploader.ID, mustFileHeader(t, "a.png", testutils.MinimalPNG()), "Mehendi")
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}

	if env.photos.count() != 1 {
		t.Fatalf("期望存储中有 1 个对象，实际为 %d", env.photos.count())
	}
	if photo.URL == "" || photo.MimeType != "image/png" || photo.EventTag != "Mehendi" {
		t.Fatalf("非预期照片响应: %+v", photo)
	}

	var record model.Photo
	if err := db.DB.First(&record, photo.ID).Error; err != nil {
		t.Fatalf("加载照片记录失败: %v", err)
	}
	if record.ObjectKey == "" || !env.photos.has(record.ObjectKey) {
		t.Fatalf("期望 object_key 指向已存储对象，实际为 %q", record.ObjectKey)
	}
}

// 测试内容：验证元数据写入失败时补偿删除已存储对象，不留孤儿文件。
func TestUploadPhoto_CompensatesOnRecordFailure(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)

	// 删除照片表，强制元数据写入失败
	if err := env.gdb.Migrator().DropTable(&model.Photo{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := env.svc.UploadPhoto(uploader.ID, mustFileHeader(t, "a.png", testutils.MinimalPNG()), "")
	expectServiceError(t, err, ErrorCodeInternal)

	if env.photos.count() != 0 {
		t.Fatalf("期望补偿清理后无孤儿对象，实际为 %d", env.photos.count())
	}
}

// 测试内容：验证上传文件的扩展名与内容校验。
func TestUploadPhoto_RejectsInvalidFile(t *testing.T) {
	env := setupTestService(t)
	uploader := createTestGuest(t, "Priya", false)

	if _, err := env.svc.UploadPhoto(uploader.ID, mustFileHeader(t, "a.exe", testutils.MinimalPNG()), ""); err == nil {
		t.Fatalf("期望不支持的扩展名被拒绝")
	}

	if _, err := env.svc.UploadPhoto(uploader.ID, mustFileHeader(t, "a.png", []byte("not an image")), ""); err == nil {
		t.Fatalf("期望伪装图片被拒绝")
	}
}
