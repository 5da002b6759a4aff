package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/starward/engine"
)

func NewPropertyInspector() PropertyInspector {
	return PropertyInspector{}
}

func (pi *PropertyInspector) Render(scene *engine.Scene, selectedHandle engine.Handle) {
	if !imgui.BeginV("Property Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pi.selectedHandle = selectedHandle

	if !pi.selectedHandle.Valid() {
		imgui.Text("No object selected")
		imgui.End()
		return
	}

	obj := scene.Object(pi.selectedHandle)
	if obj == nil {
		imgui.Text(fmt.Sprintf("Object %d not found (despawned)", pi.selectedHandle))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Name: %s", obj.Name()))
	imgui.Text(fmt.Sprintf("UID: %s", obj.UID()))
	enabled := obj.Enabled()
	if imgui.Checkbox("Enabled", &enabled) {
		if enabled {
			obj.Enable()
		} else {
			obj.Disable()
		}
	}
	imgui.Separator()

	for p := range obj.Properties() {
		val := reflect.ValueOf(p).Elem()
		if imgui.TreeNodeStr(val.Type().Name()) {
			pi.renderProperty(val)
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderProperty edits the fields of one property value in place.
// Properties are pointers to structs, so fields are addressable and writes
// land directly on the live property.
func (pi *PropertyInspector) renderProperty(val reflect.Value) {
	for _, field := range propertyFields.fields(val.Type()) {
		fieldVal, ok := field.value(val)
		if !ok {
			imgui.Text(fmt.Sprintf("%s: nil", field.name))
			continue
		}
		pi.renderField(field.name, fieldVal)
	}
}

func (pi *PropertyInspector) renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, nf := range propertyFields.fields(val.Type()) {
				nestedVal, ok := nf.value(val)
				if !ok {
					imgui.Text(fmt.Sprintf("%s: nil", nf.name))
					continue
				}
				pi.renderField(nf.name, nestedVal)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Func:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
		} else {
			imgui.Text(fmt.Sprintf("%s: func", name))
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
