package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Expand 把模板里的 ${path.to.value} 占位符替换成 data 中的值，
// 用于标题、页眉等报表文案。路径支持点号取键与 [n] 取下标，
// 解析不到的占位符原样保留，方便在成品里一眼看出缺了什么数据。
func Expand(template string, data map[string]any) string {
	if len(data) == 0 {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		if val, ok := lookupPath(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

func lookupPath(data map[string]any, path string) (any, bool) {
	var current any = data
	for _, segment := range strings.Split(path, ".") {
		key, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if key != "" {
			m, isMap := current.(map[string]any)
			if !isMap {
				return nil, false
			}
			val, found := m[key]
			if !found {
				return nil, false
			}
			current = val
		}
		for _, idx := range indexes {
			list, isList := current.([]any)
			if !isList || idx < 0 || idx >= len(list) {
				return nil, false
			}
			current = list[idx]
		}
	}
	return current, true
}

// splitSegment 把 "items[2][0]" 拆成键名与下标序列。
func splitSegment(segment string) (string, []int, bool) {
	key := segment
	var indexes []int
	if i := strings.IndexByte(segment, '['); i != -1 {
		key = segment[:i]
		rest := segment[i:]
		for strings.HasPrefix(rest, "[") {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return "", nil, false
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return "", nil, false
			}
			indexes = append(indexes, idx)
			rest = rest[end+1:]
		}
		if rest != "" {
			return "", nil, false
		}
	}
	return key, indexes, true
}
