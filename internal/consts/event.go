package consts

// 婚礼仪式标签，闭合枚举（与前端筛选项保持一致）
const (
	EventTagHaldi     = "Haldi"
	EventTagMehendi   = "Mehendi"
	EventTagWedding   = "Wedding"
	EventTagReception = "Reception"
)

// EventTags 全部合法的仪式标签
var EventTags = []string{
	EventTagHaldi,
	EventTagMehendi,
	EventTagWedding,
	EventTagReception,
}

// IsValidEventTag 校验仪式标签是否合法（空值表示未分类，合法）
func IsValidEventTag(tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range EventTags {
		if t == tag {
			return true
		}
	}
	return false
}

// 日程图标名称，闭合枚举，由前端图标表解析
// 未知历史值由前端回退为 CalendarDays
const (
	EventIconSun        = "Sun"
	EventIconMoon       = "Moon"
	EventIconSparkles   = "Sparkles"
	EventIconGlassWater = "GlassWater"
)

// EventIcons 全部合法的日程图标名称
var EventIcons = []string{
	EventIconSun,
	EventIconMoon,
	EventIconSparkles,
	EventIconGlassWater,
}

// IsValidEventIcon 校验图标名称是否合法
func IsValidEventIcon(icon string) bool {
	for _, i := range EventIcons {
		if i == icon {
			return true
		}
	}
	return false
}
