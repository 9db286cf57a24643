package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"forever-captured-server/internal/db"
	"forever-captured-server/internal/model"
	"forever-captured-server/internal/service"
	"forever-captured-server/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	// statusCache 缓存宾客状态，减少数据库查询
	// Key: guestID (uint), Value: cachedStatus
	statusCache sync.Map
)

const statusCacheTTL = 1 * time.Minute

type cachedStatus struct {
	Status    int
	ExpiresAt time.Time
}

// ClearGuestStatusCache 清除指定宾客的状态缓存
func ClearGuestStatusCache(guestID uint) {
	statusCache.Delete(guestID)

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		key := service.RedisKey("auth", "guest_status", strconv.FormatUint(uint64(guestID), 10))
		_ = redisClient.Del(ctx, key).Err()
	}
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 格式错误"})
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("display_name", claims.DisplayName)
		c.Set("admin", claims.Admin)
		c.Next()
	}
}

// GuestStatusCheck 检查宾客状态是否被封禁
func GuestStatusCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, exists := c.Get("id")
		if !exists {
			// 中间件顺序不对或 JWT 校验未执行
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到宾客信息"})
			c.Abort()
			return
		}

		gid, ok := guestID.(uint)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的宾客ID类型"})
			c.Abort()
			return
		}

		var (
			currentStatus int
			statusFound   bool
		)

		// 优先从 Redis 读取
		if redisClient := service.GetRedisClient(); redisClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			key := service.RedisKey("auth", "guest_status", strconv.FormatUint(uint64(gid), 10))
			cachedStatusStr, err := redisClient.Get(ctx, key).Result()
			if err == nil {
				if parsedStatus, parseErr := strconv.Atoi(cachedStatusStr); parseErr == nil {
					currentStatus = parsedStatus
					statusFound = true
					statusCache.Store(gid, cachedStatus{
						Status:    currentStatus,
						ExpiresAt: time.Now().Add(statusCacheTTL),
					})
				}
			}
		}

		// Redis 未命中或不可用时，回退本地内存缓存
		if !statusFound {
			if val, ok := statusCache.Load(gid); ok {
				cached, typeOk := val.(cachedStatus)
				if typeOk {
					if time.Now().Before(cached.ExpiresAt) {
						currentStatus = cached.Status
						statusFound = true
					} else {
						statusCache.Delete(gid)
					}
				}
			}
		}

		// 如果缓存未命中或过期，查询数据库
		if !statusFound {
			var guest model.Guest
			if err := db.DB.Select("status").First(&guest, gid).Error; err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "账号不存在"})
				c.Abort()
				return
			}
			currentStatus = guest.Status

			// 写入缓存
			statusCache.Store(gid, cachedStatus{
				Status:    currentStatus,
				ExpiresAt: time.Now().Add(statusCacheTTL),
			})

			if redisClient := service.GetRedisClient(); redisClient != nil {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()

				key := service.RedisKey("auth", "guest_status", strconv.FormatUint(uint64(gid), 10))
				_ = redisClient.Set(ctx, key, strconv.Itoa(currentStatus), statusCacheTTL).Err()
			}
		}

		if currentStatus == 2 {
			c.JSON(http.StatusForbidden, gin.H{"error": "账号已被封禁"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get("admin")
		isAdmin, ok := value.(bool)
		if !exist || !ok || !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "需要管理员权限才能访问"})
			c.Abort()
			return
		}
		c.Next()
	}
}
