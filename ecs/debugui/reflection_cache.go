package debugui

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	IsStruct  bool
	IsArray   bool
	IsSlice   bool
	IsMap     bool
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields lists the exported fields of a struct type. Pointer fields are
// described by the type they point to.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
				IsStruct:  fieldType.Kind() == reflect.Struct,
				IsArray:   fieldType.Kind() == reflect.Array,
				IsSlice:   fieldType.Kind() == reflect.Slice,
				IsMap:     fieldType.Kind() == reflect.Map,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// Summary renders the top-level exported fields of a struct on one line,
// e.g. "Kind=man HP=10 Active=true". Nested structs are skipped; types with a
// String method print through it.
func Summary(v any) string {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return "<nil>"
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Sprint(val.Interface())
	}

	var b strings.Builder
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		if field.IsStruct || field.IsSlice || field.IsMap {
			continue
		}

		fieldVal := val.Field(field.Index)
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(field.Name)
		b.WriteByte('=')

		if field.IsPointer {
			if fieldVal.IsNil() {
				b.WriteString("nil")
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		fmt.Fprint(&b, fieldVal.Interface())
	}
	return b.String()
}
