package recload

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260830-go-pkg-macroexp/pkg/macroexp"
)

// LoadFile 读取记录文件，展开其中的宏并返回摊平后的记录列表。
//
// 文件格式由扩展名决定：.json 用 JSON 解析器，其余用 YAML。
func LoadFile(path string, opts ...Option) ([]macroexp.Record, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
	if err != nil {
		return nil, fmt.Errorf("read record file %s: %w", path, err)
	}

	records, err := Parse(path, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse record file %s: %w", path, err)
	}

	slog.Debug("Loaded record file", "path", path, "records", len(records))

	return records, nil
}

// Parse 解析一段记录文件内容并逐条跑宏流水线。
//
// path 只用来选择解析器（见 [LoadFile]），不做任何 I/O。
func Parse(path string, content []byte, opts ...Option) ([]macroexp.Record, error) {
	// 解析选项
	options := &options{}
	for _, opt := range opts {
		opt(options)
	}

	raw, err := parseRecordBytes(path, content)
	if err != nil {
		return nil, err
	}
	if options.noExpansion {
		return raw, nil
	}

	eng := macroexp.New(options.engineOpts...)

	var out []macroexp.Record
	for i, record := range raw {
		expanded, err := eng.Process(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, expanded...)
	}

	return out, nil
}

// Decode 把一条已展开的记录映射到结构体。
//
// 属性 key 由 json tag 定义；单值属性按标量解码，多值属性按列表解码。
func Decode(record macroexp.Record, out any) error {
	flat := make(map[string]any, len(record))
	for prop, values := range record {
		if len(values) == 1 {
			flat[prop] = values[0]

			continue
		}
		flat[prop] = values
	}

	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Metadata:         nil,
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(flat)
}

func parseRecordBytes(path string, content []byte) ([]macroexp.Record, error) {
	var raw any
	var err error
	if isJSONPath(path) {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	root, ok := normalizeMapKeys(raw).(map[string]any)
	if !ok {
		return nil, errors.New("record file root must be an object")
	}
	list, ok := root["records"].([]any)
	if !ok {
		return nil, errors.New(`record file must carry a "records" list`)
	}

	records := make([]macroexp.Record, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d must be an object", i)
		}
		record := make(macroexp.Record, len(obj))
		for prop, value := range obj {
			values, err := coerceValues(value)
			if err != nil {
				return nil, fmt.Errorf("record %d property %q: %w", i, prop, err)
			}
			record[prop] = values
		}
		records = append(records, record)
	}

	return records, nil
}

// coerceValues 把解析出的属性值归一化为有序字符串列表。
func coerceValues(value any) ([]string, error) {
	switch typed := value.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{typed}, nil
	case []any:
		out := make([]string, 0, len(typed))
		for _, elem := range typed {
			if _, ok := elem.(map[string]any); ok {
				return nil, errors.New("nested objects are not allowed")
			}
			out = append(out, fmt.Sprintf("%v", elem))
		}

		return out, nil
	case map[string]any:
		return nil, errors.New("nested objects are not allowed")
	default:
		// 标量（数字、布尔等）按字面写法处理
		return []string{fmt.Sprintf("%v", typed)}, nil
	}
}

func isJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}
