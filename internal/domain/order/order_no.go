package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNo 生成订单号
// 格式:ORD + 时间(秒) + 8位随机串，如ORD20240601120000a1b2c3d4
func GenerateOrderNo() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "ORD" + time.Now().Format("20060102150405") + random
}
