package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/woodland/ecs"
)

// Inspector shows the fields of one entity and lets numbers, booleans and
// strings be edited in place.
type Inspector[T any] struct {
	selectedEntityId ecs.EntityId
}

func NewInspector[T any]() *Inspector[T] {
	return &Inspector[T]{}
}

func (ci *Inspector[T]) Render(storage *ecs.Storage[T], selectedEntityId ecs.EntityId) {
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityId = selectedEntityId

	if !ci.selectedEntityId.Valid() {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	item := storage.Get(ci.selectedEntityId)
	if item == nil {
		imgui.Text(fmt.Sprintf("Entity %d no longer exists", ci.selectedEntityId))
		imgui.End()
		return
	}

	slot, _ := storage.Resolve(ci.selectedEntityId)
	imgui.Text(fmt.Sprintf("Entity ID: %d", ci.selectedEntityId))
	imgui.Text(fmt.Sprintf("Slot: %d", slot))
	imgui.Separator()

	val := reflect.ValueOf(item).Elem()
	if val.Kind() != reflect.Struct {
		renderField("Value", val, FieldInfo{Type: val.Type()})
		imgui.End()
		return
	}
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		renderField(field.Name, val.Field(field.Index), field)
	}

	imgui.End()
}

func renderField(name string, val reflect.Value, field FieldInfo) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	if field.IsPointer {
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) {
			setInt(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// handles and other ids are not edited
		imgui.Text(fmt.Sprintf("%s: %d", name, val.Uint()))

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) {
			setFloat(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			setBool(val, v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) {
			setString(val, v)
		}

	case reflect.Array:
		if imgui.TreeNodeStr(name) {
			for i := 0; i < val.Len(); i++ {
				elem := val.Index(i)
				renderField(fmt.Sprintf("%s[%d]", name, i), elem, FieldInfo{Type: elem.Type()})
			}
			imgui.TreePop()
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, nf := range globalReflectionCache.GetFields(val.Type()) {
				renderField(nf.Name, val.Field(nf.Index), nf)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func setInt(field reflect.Value, value int64) bool {
	if !field.CanSet() || field.OverflowInt(value) {
		return false
	}
	field.SetInt(value)
	return true
}

func setFloat(field reflect.Value, value float64) bool {
	if !field.CanSet() {
		return false
	}
	field.SetFloat(value)
	return true
}

func setBool(field reflect.Value, value bool) bool {
	if !field.CanSet() {
		return false
	}
	field.SetBool(value)
	return true
}

func setString(field reflect.Value, value string) bool {
	if !field.CanSet() {
		return false
	}
	field.SetString(value)
	return true
}
